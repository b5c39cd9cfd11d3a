package user

import (
	"fmt"
	"strings"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

// AuthenticateGoogle signs in or registers a user from a verified Google profile
func (uc *UserUseCase) AuthenticateGoogle(profile domain.GoogleProfile) (*domain.AuthResult, error) {
	uc.logger.Info("Starting Google authentication",
		zap.String("google_id", profile.GoogleID),
		zap.String("email", profile.Email))

	if profile.GoogleID == "" {
		return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Missing Google account ID", 401, nil)
	}

	user, err := uc.userRepo.GetByGoogleID(profile.GoogleID)
	if err != nil {
		uc.logger.Error("Failed to look up user by Google ID",
			zap.String("google_id", profile.GoogleID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	if user == nil && profile.Email != "" {
		user, err = uc.userRepo.GetByEmail(profile.Email)
		if err != nil {
			uc.logger.Error("Failed to look up user by email",
				zap.String("email", profile.Email),
				zap.Error(err))
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
		}
		if user != nil {
			// Link the Google identity to the existing account.
			user.GoogleID = profile.GoogleID
			if user.Avatar == "" {
				user.Avatar = profile.Picture
			}
			if err := uc.userRepo.Update(user); err != nil {
				uc.logger.Error("Failed to link Google account",
					zap.Int64("user_id", user.ID),
					zap.Error(err))
				return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to link account", 500, err)
			}
			uc.logger.Info("Linked Google account to existing user",
				zap.Int64("user_id", user.ID))
		}
	}

	if user != nil {
		token, err := uc.issueToken(user)
		if err != nil {
			return nil, err
		}
		uc.logger.Info("Google authentication successful",
			zap.Int64("user_id", user.ID),
			zap.String("username", user.Username))
		return &domain.AuthResult{User: user, Token: token}, nil
	}

	username, err := uc.reserveOAuthUsername("google", profile.GoogleID)
	if err != nil {
		return nil, err
	}

	user = &domain.User{
		UID:               domain.NewUID(),
		Username:          username,
		Email:             profile.Email,
		DisplayName:       profile.Name,
		Avatar:            profile.Picture,
		GoogleID:          profile.GoogleID,
		AuthProvider:      domain.AuthProviderGoogle,
		IsProfileComplete: false,
		Settings: domain.UserSettings{
			SoundEnabled:         true,
			NotificationsEnabled: true,
			DarkMode:             true,
			Language:             "en",
		},
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user from Google profile",
			zap.String("google_id", profile.GoogleID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create user", 500, err)
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("New user registered via Google",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return &domain.AuthResult{User: user, Token: token, IsNewUser: true}, nil
}

// AuthenticateApple signs in or registers a user from a verified Apple profile.
// Apple may withhold the email on repeat sign-ins, so the Apple ID is the only
// reliable lookup key.
func (uc *UserUseCase) AuthenticateApple(profile domain.AppleProfile) (*domain.AuthResult, error) {
	uc.logger.Info("Starting Apple authentication",
		zap.String("apple_id", profile.AppleID))

	if profile.AppleID == "" {
		return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Missing Apple account ID", 401, nil)
	}

	user, err := uc.userRepo.GetByAppleID(profile.AppleID)
	if err != nil {
		uc.logger.Error("Failed to look up user by Apple ID",
			zap.String("apple_id", profile.AppleID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	if user == nil && profile.Email != "" {
		user, err = uc.userRepo.GetByEmail(profile.Email)
		if err != nil {
			uc.logger.Error("Failed to look up user by email",
				zap.String("email", profile.Email),
				zap.Error(err))
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
		}
		if user != nil {
			user.AppleID = profile.AppleID
			if err := uc.userRepo.Update(user); err != nil {
				uc.logger.Error("Failed to link Apple account",
					zap.Int64("user_id", user.ID),
					zap.Error(err))
				return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to link account", 500, err)
			}
			uc.logger.Info("Linked Apple account to existing user",
				zap.Int64("user_id", user.ID))
		}
	}

	if user != nil {
		token, err := uc.issueToken(user)
		if err != nil {
			return nil, err
		}
		uc.logger.Info("Apple authentication successful",
			zap.Int64("user_id", user.ID),
			zap.String("username", user.Username))
		return &domain.AuthResult{User: user, Token: token}, nil
	}

	username, err := uc.reserveOAuthUsername("apple", profile.AppleID)
	if err != nil {
		return nil, err
	}

	user = &domain.User{
		UID:               domain.NewUID(),
		Username:          username,
		Email:             profile.Email,
		DisplayName:       profile.Name,
		AppleID:           profile.AppleID,
		AuthProvider:      domain.AuthProviderApple,
		IsProfileComplete: false,
		Settings: domain.UserSettings{
			SoundEnabled:         true,
			NotificationsEnabled: true,
			DarkMode:             true,
			Language:             "en",
		},
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user from Apple profile",
			zap.String("apple_id", profile.AppleID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create user", 500, err)
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("New user registered via Apple",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return &domain.AuthResult{User: user, Token: token, IsNewUser: true}, nil
}

// reserveOAuthUsername builds a placeholder username like "google_a1b2c3d4"
// for accounts that still need to complete their profile.
func (uc *UserUseCase) reserveOAuthUsername(provider, providerID string) (string, error) {
	suffix := strings.ToLower(providerID)
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	base := fmt.Sprintf("%s_%s", provider, suffix)

	candidate := base
	for i := 0; i < 5; i++ {
		existing, err := uc.userRepo.GetByUsername(candidate)
		if err != nil {
			uc.logger.Error("Failed to check placeholder username",
				zap.String("username", candidate),
				zap.Error(err))
			return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check username", 500, err)
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i+1)
	}

	uc.logger.Error("Could not reserve a placeholder username",
		zap.String("base", base))
	return "", domain.NewAppError(domain.ErrCodeInternalError, "Failed to allocate username", 500, nil)
}
