package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"elective/internal/accounts"
	"elective/internal/auth"
	apperrors "elective/internal/errors"
)

const bcryptCost = 10

// DefaultRole is assigned when a registration omits the role. Defaulting an
// open registration endpoint to "admin" is questionable, but it is the
// documented behavior of this API and callers rely on it.
const DefaultRole = "admin"

// AuthService handles registration and login.
type AuthService interface {
	Register(username, password, role string) error
	Login(username, password string) (string, error)
}

type authService struct {
	store  accounts.Store
	tokens *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(store accounts.Store, tokens *auth.JWTService) AuthService {
	return &authService{store: store, tokens: tokens}
}

// Register stores a new account with a bcrypt hash of the password.
func (s *authService) Register(username, password, role string) error {
	if username == "" || password == "" {
		return apperrors.ErrMissingFields
	}
	if role == "" {
		role = DefaultRole
	}

	if _, exists := s.store.Get(username); exists {
		return apperrors.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.store.Set(username, accounts.Account{
		PasswordHash: string(hash),
		Role:         role,
	}); err != nil {
		return fmt.Errorf("persist account: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a bearer token embedding the
// account's username and role.
func (s *authService) Login(username, password string) (string, error) {
	acct, ok := s.store.Get(username)
	if !ok {
		return "", apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username, acct.Role)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
