package employee

import "errors"

// EmployeeDTO is the payload for both create and update: updates are full
// replacements, not partial patches.
type EmployeeDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (dto EmployeeDTO) Validate() error {
	if dto.FirstName == "" || dto.LastName == "" {
		return errors.New("first and last name required")
	}
	return nil
}

type DeleteResponse struct {
	Message string `json:"message"`
}
