package services

import (
	"context"
	"time"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/models"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/HifricAldar/cloud-computing/utils"
	"go.uber.org/zap"
)

const otpTTL = 5 * time.Minute

type OtpMailer interface {
	SendOtpEmail(ctx context.Context, to, code string) error
}

// OtpService manages the one active verification code per user:
// generate replaces, verify consumes.
type OtpService struct {
	otps   repository.OtpRepository
	users  repository.UserRepository
	mailer OtpMailer
	log    *zap.Logger
	now    func() time.Time
}

func NewOtpService(otps repository.OtpRepository, users repository.UserRepository, mailer OtpMailer, log *zap.Logger) *OtpService {
	return &OtpService{otps: otps, users: users, mailer: mailer, log: log, now: time.Now}
}

func (s *OtpService) Generate(ctx context.Context, user *models.User) error {
	code := utils.GenerateOtpCode(6)
	otp := &models.Otp{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: s.now().Add(otpTTL),
	}
	if err := s.otps.Replace(ctx, otp); err != nil {
		return err
	}

	// A mail outage should not undo the registration; the user can resend.
	if err := s.mailer.SendOtpEmail(ctx, user.Email, code); err != nil {
		s.log.Warn("otp email delivery failed",
			zap.String("email", user.Email),
			zap.Error(err))
	}
	return nil
}

// Verify consumes the code and marks the user verified. Expired or wrong
// codes fail without touching any state.
func (s *OtpService) Verify(ctx context.Context, email, code string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.otps.FindByUserID(ctx, user.ID)
	if err != nil {
		return apperrors.Validation("invalid or expired code")
	}
	if otp.Expired(s.now()) || otp.Code != code {
		return apperrors.Validation("invalid or expired code")
	}

	if err := s.otps.Delete(ctx, otp.ID); err != nil {
		return err
	}

	user.Verified = true
	return s.users.Save(ctx, user)
}

func (s *OtpService) Resend(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.Generate(ctx, user)
}
