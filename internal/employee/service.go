package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	"gorm.io/gorm"
)

// RepositoryAPI is the org-scoped storage contract. Every method takes the
// caller's organisation id as its first argument so a query without the
// tenant filter cannot be written.
type RepositoryAPI interface {
	GetAll(ctx context.Context, orgID int64) ([]*employeeDatamodel.Employee, error)
	GetByID(ctx context.Context, orgID, id int64) (*employeeDatamodel.Employee, error)
	Create(ctx context.Context, emp *employeeDatamodel.Employee) error
	Update(ctx context.Context, orgID int64, emp *employeeDatamodel.Employee) error
	Delete(ctx context.Context, orgID, id int64) error
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

func (s *Service) List(ctx context.Context, orgID int64) ([]*Employee, error) {
	rows, err := s.repo.GetAll(ctx, orgID)
	if err != nil {
		s.logger.Error("failed to list employees", "org_id", orgID, "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}

	employees := make([]*Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, FromDataModel(row))
	}
	return employees, nil
}

func (s *Service) Get(ctx context.Context, orgID, id int64) (*Employee, error) {
	row, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(ctx context.Context, identity internal.Identity, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error())
	}

	row := &employeeDatamodel.Employee{
		OrganisationID: identity.OrgID,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Phone:          dto.Phone,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrEmailExists
		}
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	created := FromDataModel(row)
	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionEmployeeCreated, created)

	return created, nil
}

func (s *Service) Update(ctx context.Context, identity internal.Identity, id int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error())
	}

	// the existence check is itself org-scoped: a bare id lookup would let a
	// caller update another tenant's record
	existing, err := s.repo.GetByID(ctx, identity.OrgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewInternalError("failed to get employee", err)
	}

	existing.FirstName = dto.FirstName
	existing.LastName = dto.LastName
	existing.Email = dto.Email
	existing.Phone = dto.Phone

	if err := s.repo.Update(ctx, identity.OrgID, existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrEmailExists
		}
		return nil, internal.NewInternalError("failed to update employee", err)
	}

	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionEmployeeUpdated, map[string]any{
		"employeeId": id,
		"changes":    dto,
	})

	return FromDataModel(existing), nil
}

func (s *Service) Delete(ctx context.Context, identity internal.Identity, id int64) error {
	if _, err := s.repo.GetByID(ctx, identity.OrgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.ErrEmployeeNotFound
		}
		return internal.NewInternalError("failed to get employee", err)
	}

	if err := s.repo.Delete(ctx, identity.OrgID, id); err != nil {
		return internal.NewInternalError("failed to delete employee", err)
	}

	s.audit.Record(ctx, identity.OrgID, identity.UserID, auditlog.ActionEmployeeDeleted, map[string]any{
		"employeeId": id,
	})

	return nil
}
