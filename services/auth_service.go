package services

import (
	"context"
	"errors"
	"time"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/models"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/HifricAldar/cloud-computing/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Email, s.jwtExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token}, nil
}

// ValidateGoogleUser issues a token for a Google identity, provisioning
// the account on first login. OAuth accounts start out verified and get a
// throwaway password they never use.
func (s *AuthService) ValidateGoogleUser(ctx context.Context, email, name string) (*TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		hash, hashErr := utils.HashPassword(utils.GenerateRandomToken(32))
		if hashErr != nil {
			return nil, hashErr
		}
		user = &models.User{
			Email:    email,
			Password: hash,
			Name:     name,
			Verified: true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Email, s.jwtExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token}, nil
}
