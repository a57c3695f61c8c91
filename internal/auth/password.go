package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

// PasswordAuthenticator implements password-based registration and login
// using bcrypt hashes stored on the user document.
type PasswordAuthenticator struct {
	CreateUserRepository      usecase.CreateUserRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
}

func NewPasswordAuthenticator(
	createUser usecase.CreateUserRepository,
	findByEmail usecase.FindUserByEmailRepository,
) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		CreateUserRepository:      createUser,
		FindUserByEmailRepository: findByEmail,
	}
}

// ValidatePassword checks the minimum password requirements.
func (a *PasswordAuthenticator) ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new user account with a hashed password.
func (a *PasswordAuthenticator) Register(fullName, email, password string) (*models.User, error) {
	if err := a.ValidatePassword(password); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := a.FindUserByEmailRepository.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	created, err := a.CreateUserRepository.Create(user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// Authenticate verifies the email and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(email, password string) (*models.User, error) {
	user, err := a.FindUserByEmailRepository.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
