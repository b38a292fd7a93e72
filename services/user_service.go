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

type UserService struct {
	users     repository.UserRepository
	otp       *OtpService
	jwtSecret string
	jwtExpiry time.Duration
}

func NewUserService(users repository.UserRepository, otp *OtpService, jwtSecret string, jwtExpiry time.Duration) *UserService {
	return &UserService{users: users, otp: otp, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates the user, issues a verification code and returns the
// access token. A duplicate email creates nothing.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*TokenResponse, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperrors.Conflict("Email already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    input.Email,
		Password: hash,
		Name:     input.Name,
		Phone:    input.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.otp.Generate(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Email, s.jwtExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token}, nil
}

// GetByEmail looks the user up; the password field never serializes
// (json:"-" on the model).
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}
