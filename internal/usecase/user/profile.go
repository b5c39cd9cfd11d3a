package user

import (
	"fmt"
	"strings"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

// GetUserInfo retrieves user information by user ID
func (uc *UserUseCase) GetUserInfo(userID int64) (*domain.User, error) {
	uc.logger.Debug("Retrieving user information",
		zap.Int64("user_id", userID))

	user, err := uc.getUser(userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUsername reports whether a username is available
func (uc *UserUseCase) CheckUsername(username string) (bool, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	if err := uc.validateUsername(username); err != nil {
		return false, err
	}

	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to check username availability",
			zap.String("username", username),
			zap.Error(err))
		return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check username", 500, err)
	}

	return existing == nil, nil
}

// CompleteProfile sets the final username and display name on an OAuth account
func (uc *UserUseCase) CompleteProfile(userID int64, username, displayName string) (*domain.User, error) {
	uc.logger.Info("Completing user profile",
		zap.Int64("user_id", userID),
		zap.String("username", username))

	username = strings.ToLower(strings.TrimSpace(username))

	if err := uc.validateUsername(username); err != nil {
		return nil, err
	}

	user, err := uc.getUser(userID)
	if err != nil {
		return nil, err
	}

	if user.Username != username {
		existing, err := uc.userRepo.GetByUsername(username)
		if err != nil {
			uc.logger.Error("Failed to check username availability",
				zap.String("username", username),
				zap.Error(err))
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check username", 500, err)
		}
		if existing != nil {
			uc.logger.Warn("Profile completion rejected - username taken",
				zap.Int64("user_id", userID),
				zap.String("username", username))
			return nil, domain.NewAppError(domain.ErrCodeUsernameTaken, "Username is already taken", 409, nil)
		}
	}

	user.Username = username
	if displayName != "" {
		user.DisplayName = displayName
	}
	user.IsProfileComplete = true

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to complete profile",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update user", 500, err)
	}

	uc.logger.Info("Profile completed successfully",
		zap.Int64("user_id", userID),
		zap.String("username", username))

	return user, nil
}

// UpdateProfile applies partial profile edits
func (uc *UserUseCase) UpdateProfile(userID int64, update domain.ProfileUpdate) (*domain.User, error) {
	uc.logger.Info("Updating user profile",
		zap.Int64("user_id", userID))

	user, err := uc.getUser(userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*update.Username))
		if username != user.Username {
			if err := uc.validateUsername(username); err != nil {
				return nil, err
			}
			existing, err := uc.userRepo.GetByUsername(username)
			if err != nil {
				uc.logger.Error("Failed to check username availability",
					zap.String("username", username),
					zap.Error(err))
				return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check username", 500, err)
			}
			if existing != nil {
				uc.logger.Warn("Profile update rejected - username taken",
					zap.Int64("user_id", userID),
					zap.String("username", username))
				return nil, domain.NewAppError(domain.ErrCodeUsernameTaken, "Username is already taken", 409, nil)
			}
			user.Username = username
		}
	}

	if update.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*update.DisplayName)
	}

	if update.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*update.Email))
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update profile",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update user", 500, err)
	}

	uc.logger.Info("Profile updated successfully",
		zap.Int64("user_id", userID))

	return user, nil
}

// ChangePassword verifies the current password and replaces it
func (uc *UserUseCase) ChangePassword(userID int64, currentPassword, newPassword string) error {
	uc.logger.Info("Changing user password",
		zap.Int64("user_id", userID))

	if len(newPassword) < minPasswordLength {
		uc.logger.Warn("Password change rejected - new password too short",
			zap.Int64("user_id", userID))
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Password must be at least 6 characters", 400, nil)
	}

	user, err := uc.getUser(userID)
	if err != nil {
		return err
	}

	if !uc.verifyPassword(currentPassword, user.Password) {
		uc.logger.Warn("Password change rejected - current password incorrect",
			zap.Int64("user_id", userID))
		return domain.NewAppError(domain.ErrCodePasswordIncorrect, "Current password is incorrect", 400, nil)
	}

	passwordHash, err := uc.hashPassword(newPassword)
	if err != nil {
		uc.logger.Error("Failed to hash new password",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeInternalError, "Failed to process password", 500, err)
	}

	user.Password = passwordHash
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update password",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update user", 500, err)
	}

	uc.logger.Info("Password changed successfully",
		zap.Int64("user_id", userID))

	return nil
}

// UpdateSettings applies partial settings edits
func (uc *UserUseCase) UpdateSettings(userID int64, update domain.SettingsUpdate) (*domain.User, error) {
	uc.logger.Info("Updating user settings",
		zap.Int64("user_id", userID))

	user, err := uc.getUser(userID)
	if err != nil {
		return nil, err
	}

	if update.SoundEnabled != nil {
		user.Settings.SoundEnabled = *update.SoundEnabled
	}
	if update.NotificationsEnabled != nil {
		user.Settings.NotificationsEnabled = *update.NotificationsEnabled
	}
	if update.DarkMode != nil {
		user.Settings.DarkMode = *update.DarkMode
	}
	if update.Language != nil {
		user.Settings.Language = *update.Language
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update settings",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update user", 500, err)
	}

	uc.logger.Info("Settings updated successfully",
		zap.Int64("user_id", userID))

	return user, nil
}

// GetStats builds the stats report with win rate and recent game history
func (uc *UserUseCase) GetStats(userID int64) (*domain.StatsReport, error) {
	uc.logger.Debug("Retrieving user stats",
		zap.Int64("user_id", userID))

	user, err := uc.getUser(userID)
	if err != nil {
		return nil, err
	}

	history, err := uc.userRepo.GetGameHistory(userID, 10)
	if err != nil {
		uc.logger.Error("Failed to get game history",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game history", 500, err)
	}

	winRate := "0%"
	if user.Stats.GamesPlayed > 0 {
		rate := float64(user.Stats.GamesWon) / float64(user.Stats.GamesPlayed) * 100
		winRate = fmt.Sprintf("%.0f%%", rate)
	}

	return &domain.StatsReport{
		Stats:       user.Stats,
		WinRate:     winRate,
		GameHistory: history,
	}, nil
}

// getUser loads a user or returns a not-found error
func (uc *UserUseCase) getUser(userID int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		uc.logger.Error("Failed to get user from database",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}
	if user == nil {
		uc.logger.Warn("User not found",
			zap.Int64("user_id", userID))
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}
	return user, nil
}
