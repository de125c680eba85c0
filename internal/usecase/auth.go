package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	pkgAuth "github.com/nafru/exportdesk/internal/pkg/auth"
)

// AuthUseCase handles credential checks, token management and provisioning.
type AuthUseCase struct {
	users           repository.UserRepository
	hasher          pkgAuth.PasswordHasher
	tokens          pkgAuth.Strategy
	defaultLanguage string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, defaultLanguage string) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, defaultLanguage: defaultLanguage}
}

// Authenticate validates credentials and returns the user with a session
// token. Missing user and wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.Payload())
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Provision creates a user account with a hashed password. Used for
// administrative provisioning and the startup admin bootstrap.
func (u *AuthUseCase) Provision(ctx context.Context, email, name, password string, role model.Role, language string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || name == "" || password == "" {
		return nil, domainErrors.ErrValidation
	}
	if !model.ValidRole(role) {
		return nil, domainErrors.ErrValidation
	}
	if language == "" {
		language = u.defaultLanguage
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Language:     language,
	})
}

// ParseToken extracts identity claims from provided token.
func (u *AuthUseCase) ParseToken(token string) (*model.UserPayload, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
