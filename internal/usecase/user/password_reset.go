package user

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

const passwordResetTTL = time.Hour

// RequestPasswordReset issues a reset token and mails it to the user. A
// missing account is not reported to the caller, so the endpoint cannot be
// used to discover which emails are registered.
func (uc *UserUseCase) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	uc.logger.Info("Password reset requested",
		zap.String("email", email))

	if email == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Email is required", 400, nil)
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to look up user by email",
			zap.String("email", email),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	if user == nil {
		uc.logger.Info("Password reset requested for unknown email",
			zap.String("email", email))
		return nil
	}

	rawToken, err := uc.newResetToken()
	if err != nil {
		uc.logger.Error("Failed to generate reset token",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeInternalError, "Failed to generate reset token", 500, err)
	}

	// Only the hash is persisted; the raw token travels in the email link.
	tokenHash := sha256.Sum256([]byte(rawToken))
	expires := time.Now().Add(passwordResetTTL)

	user.PasswordResetToken = hex.EncodeToString(tokenHash[:])
	user.PasswordResetExpires = &expires

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to store reset token",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to store reset token", 500, err)
	}

	if err := uc.mailerSvc.SendPasswordReset(user.Email, rawToken, user.DisplayName); err != nil {
		uc.logger.Error("Failed to send password reset email",
			zap.Int64("user_id", user.ID),
			zap.Error(err))

		// Invalidate the token so a mail that never arrived cannot be
		// redeemed later.
		user.PasswordResetToken = ""
		user.PasswordResetExpires = nil
		if clearErr := uc.userRepo.Update(user); clearErr != nil {
			uc.logger.Error("Failed to clear reset token after mail failure",
				zap.Int64("user_id", user.ID),
				zap.Error(clearErr))
		}

		return domain.NewAppError(domain.ErrCodeMailerServiceError, "Failed to send reset email", 500, err)
	}

	uc.logger.Info("Password reset email sent",
		zap.Int64("user_id", user.ID))

	return nil
}

// newResetToken generates a random token for the reset link
func (uc *UserUseCase) newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
