package auth

import (
	"context"
	"errors"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	organisationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/organisation"
	userDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserWithOrg joins a user row with its organisation name for login.
type UserWithOrg struct {
	ID             int64
	OrganisationID int64
	Name           string
	Email          string
	PasswordHash   string
	OrgName        string
}

type RepositoryAPI interface {
	OrgOrEmailExists(ctx context.Context, orgName, email string) (bool, error)
	CreateOrganisationWithAdmin(ctx context.Context, orgName, adminName, email, passwordHash string) (*organisationDatamodel.Organisation, *userDatamodel.User, error)
	GetUserByEmail(ctx context.Context, email string) (*UserWithOrg, error)
}

// Service is the registrar and authenticator.
type Service struct {
	repo       RepositoryAPI
	tokens     TokenGenerator
	audit      auditlog.Recorder
	bcryptCost int
}

func NewService(repo RepositoryAPI, tokens TokenGenerator, audit auditlog.Recorder, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		audit:      audit,
		bcryptCost: bcryptCost,
	}
}

// Register creates a tenant plus its first admin user and issues a session.
// The existence check runs first so non-concurrent duplicates fail cleanly;
// the database uniqueness constraints remain the backstop for races.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error())
	}

	exists, err := s.repo.OrgOrEmailExists(ctx, dto.OrgName, dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check existing organisation", err)
	}
	if exists {
		return nil, internal.ErrOrgOrEmailExists
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	org, user, err := s.repo.CreateOrganisationWithAdmin(ctx, dto.OrgName, dto.AdminName, dto.Email, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrOrgOrEmailExists
		}
		return nil, internal.NewInternalError("failed to create organisation", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, org.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to issue token", err)
	}

	s.audit.Record(ctx, org.ID, user.ID, auditlog.ActionOrganisationCreated, map[string]any{
		"orgId":      org.ID,
		"adminEmail": user.Email,
		"adminName":  user.Name,
	})

	return &AuthResponse{
		Token:        token,
		Organisation: OrganisationSummary{ID: org.ID, Name: org.Name},
		User:         UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// Login verifies credentials and issues a session. An unknown email and a
// wrong password return the same error.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error())
	}

	user, err := s.repo.GetUserByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, internal.NewInternalError("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.OrganisationID)
	if err != nil {
		return nil, internal.NewInternalError("failed to issue token", err)
	}

	s.audit.Record(ctx, user.OrganisationID, user.ID, auditlog.ActionUserLogin, map[string]any{
		"email": user.Email,
	})

	return &AuthResponse{
		Token:        token,
		Organisation: OrganisationSummary{ID: user.OrganisationID, Name: user.OrgName},
		User:         UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// ValidateAccessToken validates a session token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
