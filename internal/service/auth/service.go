package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/courtside/pickleball-api/internal/config"
	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
	"github.com/courtside/pickleball-api/pkg/auth"
	"github.com/courtside/pickleball-api/pkg/errors"
)

type AuthServicer interface {
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ValidateToken(token string) (*auth.Claims, error)
}

type Service struct {
	users repository.UserRepository
	jwt   auth.JWTService
}

func NewService(users repository.UserRepository, cfg config.JWTConfig) *Service {
	return &Service{
		users: users,
		jwt:   auth.NewJWTService(cfg.Secret, time.Duration(cfg.ExpiryHours)*time.Hour),
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.Unauthorized(fmt.Errorf("unknown user: %w", err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.Unauthorized(fmt.Errorf("password mismatch"))
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

func (s *Service) ValidateToken(token string) (*auth.Claims, error) {
	return s.jwt.ValidateToken(token)
}
