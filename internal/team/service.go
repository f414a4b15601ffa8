package team

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	teamDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/team"
	"gorm.io/gorm"
)

// RepositoryAPI is the org-scoped storage contract for teams and the
// employee-team assignment relation. AssignEmployees is idempotent: an
// already-present pair is ignored, not an error.
type RepositoryAPI interface {
	GetAllWithCounts(ctx context.Context, orgID int64) ([]*TeamWithCount, error)
	GetByID(ctx context.Context, orgID, id int64) (*teamDatamodel.Team, error)
	GetMembers(ctx context.Context, orgID, teamID int64) ([]AssignedEmployee, error)
	Create(ctx context.Context, team *teamDatamodel.Team) error
	Update(ctx context.Context, orgID int64, team *teamDatamodel.Team) error
	Delete(ctx context.Context, orgID, id int64) error
	CountEmployeesInOrg(ctx context.Context, orgID int64, employeeIDs []int64) (int64, error)
	AssignEmployees(ctx context.Context, teamID int64, employeeIDs []int64) error
	UnassignEmployee(ctx context.Context, orgID, teamID, employeeID int64) error
}

type Service struct {
	repo   RepositoryAPI
	audit  auditlog.Recorder
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, audit auditlog.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context, orgID int64) ([]*TeamWithCount, error) {
	teams, err := s.repo.GetAllWithCounts(ctx, orgID)
	if err != nil {
		s.logger.Error("failed to list teams", "org_id", orgID, "error", err)
		return nil, internal.NewInternalError("failed to list teams", err)
	}
	return teams, nil
}

func (s *Service) Get(ctx context.Context, orgID, id int64) (*TeamDetail, error) {
	row, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrTeamNotFound
		}
		return nil, internal.NewInternalError("failed to get team", err)
	}

	members, err := s.repo.GetMembers(ctx, orgID, id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get team members", err)
	}

	return &TeamDetail{
		Team:      *FromDataModel(row),
		Employees: members,
	}, nil
}

func (s *Service) Create(ctx context.Context, identity internal.Identity, dto TeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error())
	}

	row := &teamDatamodel.Team{
		OrganisationID: identity.OrgID,
		Name:           dto.Name,
		Description:    dto.Description,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, internal.NewInternalError("failed to create team", err)
	}

	created := FromDataModel(row)
	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionTeamCreated, created)

	return created, nil
}

func (s *Service) Update(ctx context.Context, identity internal.Identity, id int64, dto TeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error())
	}

	existing, err := s.repo.GetByID(ctx, identity.OrgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrTeamNotFound
		}
		return nil, internal.NewInternalError("failed to get team", err)
	}

	existing.Name = dto.Name
	existing.Description = dto.Description

	if err := s.repo.Update(ctx, identity.OrgID, existing); err != nil {
		return nil, internal.NewInternalError("failed to update team", err)
	}

	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionTeamUpdated, map[string]any{
		"teamId":  id,
		"changes": dto,
	})

	return FromDataModel(existing), nil
}

// Delete removes the team and its assignment rows so no orphaned membership
// rows survive the team.
func (s *Service) Delete(ctx context.Context, identity internal.Identity, id int64) error {
	if _, err := s.repo.GetByID(ctx, identity.OrgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.ErrTeamNotFound
		}
		return internal.NewInternalError("failed to get team", err)
	}

	if err := s.repo.Delete(ctx, identity.OrgID, id); err != nil {
		return internal.NewInternalError("failed to delete team", err)
	}

	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionTeamDeleted, map[string]any{
		"teamId": id,
	})

	return nil
}

// Assign adds one or more employees to a team. Every supplied employee must
// exist within the caller's organisation: a count mismatch rejects the whole
// batch, which also blocks cross-tenant assignment by foreign ids.
func (s *Service) Assign(ctx context.Context, identity internal.Identity, teamID int64, dto AssignDTO) error {
	ids := dto.IDs()
	if len(ids) == 0 {
		return internal.NewValidationError("employee id(s) required")
	}

	if _, err := s.repo.GetByID(ctx, identity.OrgID, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.ErrTeamNotFound
		}
		return internal.NewInternalError("failed to get team", err)
	}

	count, err := s.repo.CountEmployeesInOrg(ctx, identity.OrgID, ids)
	if err != nil {
		return internal.NewInternalError("failed to check employees", err)
	}
	if count != int64(len(ids)) {
		return internal.NewValidationError("one or more employees not found")
	}

	if err := s.repo.AssignEmployees(ctx, teamID, ids); err != nil {
		return internal.NewInternalError("failed to create assignments", err)
	}

	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionEmployeeAssigned, map[string]any{
		"teamId":      teamID,
		"employeeIds": ids,
	})

	return nil
}

// Unassign deletes the assignment row unconditionally: removing a pair that
// does not exist is a no-op, not an error.
func (s *Service) Unassign(ctx context.Context, identity internal.Identity, teamID, employeeID int64) error {
	if err := s.repo.UnassignEmployee(ctx, identity.OrgID, teamID, employeeID); err != nil {
		return internal.NewInternalError("failed to remove assignment", err)
	}

	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionEmployeeUnassigned, map[string]any{
		"teamId":     teamID,
		"employeeId": employeeID,
	})

	return nil
}
