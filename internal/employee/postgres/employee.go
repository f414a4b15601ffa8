package postgres

import (
	"context"

	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-backend/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll(ctx context.Context, orgID int64) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.WithContext(ctx).
		Where("organisation_id = ?", orgID).
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(ctx context.Context, orgID, id int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.WithContext(ctx).
		Where("id = ? AND organisation_id = ?", id, orgID).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employeeDatamodel.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *EmployeeRepository) Update(ctx context.Context, orgID int64, emp *employeeDatamodel.Employee) error {
	return r.db.WithContext(ctx).
		Model(&employeeDatamodel.Employee{}).
		Where("id = ? AND organisation_id = ?", emp.ID, orgID).
		Updates(map[string]interface{}{
			"first_name": emp.FirstName,
			"last_name":  emp.LastName,
			"email":      emp.Email,
			"phone":      emp.Phone,
		}).Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, orgID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND organisation_id = ?", id, orgID).
		Delete(&employeeDatamodel.Employee{}).Error
}
