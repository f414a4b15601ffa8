package postgres

import (
	"context"

	"github.com/frahmantamala/hrms-backend/internal/auth"
	organisationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/organisation"
	userDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) OrgOrEmailExists(ctx context.Context, orgName, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&organisationDatamodel.Organisation{}).
		Where("name = ?", orgName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).
		Model(&userDatamodel.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateOrganisationWithAdmin creates the tenant and its first user in one
// transaction so a half-registered organisation can never be observed.
func (r *AuthRepository) CreateOrganisationWithAdmin(ctx context.Context, orgName, adminName, email, passwordHash string) (*organisationDatamodel.Organisation, *userDatamodel.User, error) {
	org := &organisationDatamodel.Organisation{Name: orgName}
	user := &userDatamodel.User{
		Name:         adminName,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		user.OrganisationID = org.ID
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return org, user, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*auth.UserWithOrg, error) {
	var result auth.UserWithOrg
	err := r.db.WithContext(ctx).
		Model(&userDatamodel.User{}).
		Select("users.*, organisations.name AS org_name").
		Joins("JOIN organisations ON organisations.id = users.organisation_id").
		Where("users.email = ?", email).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
