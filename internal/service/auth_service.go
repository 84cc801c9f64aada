// Package service implements business logic between HTTP handlers and the
// repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/apperror"
	"app/internal/auth"
	"app/internal/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService issues tokens and manages account credentials.
type AuthService interface {
	// Register creates a student account and returns a signed token with
	// the public user fields.
	Register(ctx context.Context, name, email, password string) (string, *model.User, error)
	// Login verifies credentials and returns a signed token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	// EnsureAdmin creates the bootstrap admin account when absent.
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

type authService struct {
	users  repository.UserRepository
	signer *auth.Signer
}

func NewAuthService(users repository.UserRepository, signer *auth.Signer) AuthService {
	return &authService{users: users, signer: signer}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (string, *model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, apperror.Validation("Email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, apperror.Conflict("Email already registered")
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.signer.Sign(u)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same message as a wrong password so the response does not
			// reveal which of the two was wrong.
			return "", nil, apperror.Auth("Invalid credentials")
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, apperror.Auth("Invalid credentials")
	}

	token, err := s.signer.Sign(u)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
