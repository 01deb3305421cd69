package services

import (
	"errors"
	"fmt"

	"bioskop/internal/models"
	"bioskop/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown-user and wrong-password
// sign-ins so callers cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles sign-up and sign-in.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterUser hashes the password and saves the user. The plaintext is
// overwritten with the bcrypt hash before the record leaves this function and
// is never logged. Duplicate usernames surface as apperrors.ErrDuplicate from
// the store's unique index.
func (s *AuthService) RegisterUser(user *models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	return s.userRepo.Create(user)
}

// LoginUser authenticates a user and returns a signed token on success.
// bcrypt re-derives the hash with the stored salt and compares in constant
// time.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
