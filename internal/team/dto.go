package team

import "errors"

type TeamDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (dto TeamDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("team name required")
	}
	return nil
}

// AssignDTO accepts either a single employee id or a batch.
type AssignDTO struct {
	EmployeeID  *int64  `json:"employeeId,omitempty"`
	EmployeeIDs []int64 `json:"employeeIds,omitempty"`
}

// IDs flattens the single/batch forms into one list.
func (dto AssignDTO) IDs() []int64 {
	if dto.EmployeeID != nil {
		return []int64{*dto.EmployeeID}
	}
	return dto.EmployeeIDs
}

type ConfirmationResponse struct {
	Message string `json:"message"`
}
