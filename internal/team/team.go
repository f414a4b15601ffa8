package team

import (
	"time"

	teamDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/team"
)

type Team struct {
	ID             int64     `json:"id"`
	OrganisationID int64     `json:"-"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

// TeamWithCount is the list view: each team annotated with the number of
// assignment rows referencing it.
type TeamWithCount struct {
	Team
	EmployeeCount int64 `json:"employee_count"`
}

// AssignedEmployee is the member view embedded in a team detail response.
type AssignedEmployee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// TeamDetail is the get-by-id view: the team plus its current members.
type TeamDetail struct {
	Team
	Employees []AssignedEmployee `json:"employees"`
}

func FromDataModel(t *teamDatamodel.Team) *Team {
	return &Team{
		ID:             t.ID,
		OrganisationID: t.OrganisationID,
		Name:           t.Name,
		Description:    t.Description,
		CreatedAt:      t.CreatedAt,
	}
}
