package service

import (
	"context"
	"errors"

	"github.com/Alaebelamkaddame/content-management/internal/modules/repo"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService interface {
	// Login verifies credentials and returns a signed session token.
	// Unknown username and wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users  repo.UserRepo
	tokens *token.Manager
}

func NewAuthService(users repo.UserRepo, tokens *token.Manager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.IssueSession(u.ID, u.Role)
}

// HashPassword is shared by user creation and admin seeding.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
