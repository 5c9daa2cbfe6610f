package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pharmahub/pharma-backend/internal/directory"
	"github.com/pharmahub/pharma-backend/pkg/config"
	"github.com/pharmahub/pharma-backend/pkg/db/models"
	"github.com/pharmahub/pharma-backend/pkg/enums"
	pkgerrors "github.com/pharmahub/pharma-backend/pkg/errors"
	"github.com/pharmahub/pharma-backend/pkg/security"
)

const (
	invalidCredentialsMessage = "invalid credentials"
	missingFieldsMessage      = "email and password are required"
	signupSuccessMessage      = "user registered successfully"
	loginSuccessMessage       = "login successful"
)

// Service defines the account use cases exposed over HTTP.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*AccountSummary, error)
	Login(ctx context.Context, req LoginRequest) (*AccountSummary, error)
	GetStatus(ctx context.Context, email string) (*StatusResponse, error)
}

type service struct {
	directory   directory.Directory
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build the accounts service.
type ServiceParams struct {
	Directory      directory.Directory
	PasswordConfig config.PasswordConfig
}

// NewService constructs an accounts service bound to the directory selected
// at startup.
func NewService(params ServiceParams) (Service, error) {
	if params.Directory == nil {
		return nil, fmt.Errorf("user directory is required")
	}
	return &service{
		directory:   params.Directory,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*AccountSummary, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, missingFieldsMessage)
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = enums.RoleCustomer
	}

	user := &models.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    email,
		Role:     role,
		Status:   enums.UserStatusActive,
	}

	// The hash is computed before the insert so a stored record is never
	// visible without its credential material.
	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	user.PasswordHash = hash

	if err := s.directory.Insert(ctx, user); err != nil {
		if errors.Is(err, directory.ErrConflict) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "account already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "user directory unavailable")
	}

	return summary(signupSuccessMessage, user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AccountSummary, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, missingFieldsMessage)
	}

	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			// Same shape as a wrong password so callers cannot probe for
			// registered emails.
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "user directory unavailable")
	}

	if !security.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return summary(loginSuccessMessage, user), nil
}

// GetStatus passes the email through as provided; signup and login normalize
// theirs to lowercase first. The directory lookup itself compares
// case-insensitively either way.
func (s *service) GetStatus(ctx context.Context, email string) (*StatusResponse, error) {
	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "user directory unavailable")
	}
	return &StatusResponse{Status: user.Status, Role: user.Role}, nil
}

// summary issues a fresh opaque token per call; signup and login never reuse
// one.
func summary(message string, user *models.User) *AccountSummary {
	return &AccountSummary{
		Message:  message,
		FullName: user.FullName,
		Role:     user.Role,
		Token:    uuid.NewString(),
		Status:   user.Status,
		Email:    user.Email,
	}
}
