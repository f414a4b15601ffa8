package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
)

type Employee struct {
	ID             int64     `json:"id"`
	OrganisationID int64     `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:             e.ID,
		OrganisationID: e.OrganisationID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		CreatedAt:      e.CreatedAt,
	}
}
