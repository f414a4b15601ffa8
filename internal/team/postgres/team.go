package postgres

import (
	"context"
	"time"

	teamDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/team"
	"github.com/frahmantamala/hrms-backend/internal/team"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) team.RepositoryAPI {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetAllWithCounts(ctx context.Context, orgID int64) ([]*team.TeamWithCount, error) {
	var rows []struct {
		ID             int64
		OrganisationID int64
		Name           string
		Description    string
		CreatedAt      time.Time
		EmployeeCount  int64
	}
	err := r.db.WithContext(ctx).
		Model(&teamDatamodel.Team{}).
		Select("teams.*, (SELECT COUNT(*) FROM employee_teams et WHERE et.team_id = teams.id) AS employee_count").
		Where("teams.organisation_id = ?", orgID).
		Order("teams.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	teams := make([]*team.TeamWithCount, 0, len(rows))
	for i := range rows {
		teams = append(teams, &team.TeamWithCount{
			Team: team.Team{
				ID:             rows[i].ID,
				OrganisationID: rows[i].OrganisationID,
				Name:           rows[i].Name,
				Description:    rows[i].Description,
				CreatedAt:      rows[i].CreatedAt,
			},
			EmployeeCount: rows[i].EmployeeCount,
		})
	}
	return teams, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, orgID, id int64) (*teamDatamodel.Team, error) {
	var t teamDatamodel.Team
	err := r.db.WithContext(ctx).
		Where("id = ? AND organisation_id = ?", id, orgID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) GetMembers(ctx context.Context, orgID, teamID int64) ([]team.AssignedEmployee, error) {
	var members []team.AssignedEmployee
	err := r.db.WithContext(ctx).
		Table("employee_teams et").
		Select("e.id, e.first_name, e.last_name, e.email").
		Joins("JOIN employees e ON et.employee_id = e.id").
		Where("et.team_id = ? AND e.organisation_id = ?", teamID, orgID).
		Scan(&members).Error
	return members, err
}

func (r *TeamRepository) Create(ctx context.Context, t *teamDatamodel.Team) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TeamRepository) Update(ctx context.Context, orgID int64, t *teamDatamodel.Team) error {
	return r.db.WithContext(ctx).
		Model(&teamDatamodel.Team{}).
		Where("id = ? AND organisation_id = ?", t.ID, orgID).
		Updates(map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
		}).Error
}

// Delete removes the team and its assignment rows in one transaction so no
// orphaned membership rows survive. The cleanup is scoped through the teams
// table so a foreign organisation's assignment rows are never touched.
func (r *TeamRepository) Delete(ctx context.Context, orgID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id IN (?)",
			tx.Model(&teamDatamodel.Team{}).Select("id").Where("id = ? AND organisation_id = ?", id, orgID),
		).Delete(&teamDatamodel.EmployeeTeam{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND organisation_id = ?", id, orgID).
			Delete(&teamDatamodel.Team{}).Error
	})
}

func (r *TeamRepository) CountEmployeesInOrg(ctx context.Context, orgID int64, employeeIDs []int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id IN ? AND organisation_id = ?", employeeIDs, orgID).
		Count(&count).Error
	return count, err
}

// AssignEmployees inserts one row per employee, ignoring pairs that already
// exist. The operation is idempotent.
func (r *TeamRepository) AssignEmployees(ctx context.Context, teamID int64, employeeIDs []int64) error {
	rows := make([]teamDatamodel.EmployeeTeam, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		rows = append(rows, teamDatamodel.EmployeeTeam{
			EmployeeID: employeeID,
			TeamID:     teamID,
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *TeamRepository) UnassignEmployee(ctx context.Context, orgID, teamID, employeeID int64) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND employee_id = ? AND team_id IN (?)",
			teamID, employeeID,
			r.db.Model(&teamDatamodel.Team{}).Select("id").Where("organisation_id = ?", orgID),
		).
		Delete(&teamDatamodel.EmployeeTeam{}).Error
}
