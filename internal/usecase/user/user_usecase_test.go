package user

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/monopay/monopay-api/internal/config"
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/domain/mocks"
	"github.com/monopay/monopay-api/internal/infrastructure/auth"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserUseCase(t *testing.T) (*UserUseCase, *mocks.MockUserRepository, *mocks.MockMailerService, auth.JWTService, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockMailerSvc := mocks.NewMockMailerService(ctrl)
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	uc := &UserUseCase{
		userRepo:  mockUserRepo,
		jwtSvc:    jwtSvc,
		mailerSvc: mockMailerSvc,
		logger:    logger.NewLogger("test", "debug"),
	}

	return uc, mockUserRepo, mockMailerSvc, jwtSvc, ctrl
}

func hashedPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	assert.NoError(t, err)
	return string(hash)
}

func createTestUser(t *testing.T) *domain.User {
	return &domain.User{
		ID:                123,
		UID:               "MP1A2B3C4D",
		Username:          "tophat",
		Password:          hashedPassword(t, "secret123"),
		Email:             "tophat@example.com",
		DisplayName:       "Top Hat",
		AuthProvider:      domain.AuthProviderLocal,
		IsProfileComplete: true,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantCode string
	}{
		{name: "UsernameTooShort", username: "ab", password: "secret123", wantCode: domain.ErrCodeInvalidRange},
		{name: "UsernameTooLong", username: strings.Repeat("a", 21), password: "secret123", wantCode: domain.ErrCodeInvalidRange},
		{name: "UsernameBadCharacters", username: "top hat!", password: "secret123", wantCode: domain.ErrCodeInvalidFormat},
		{name: "PasswordTooShort", username: "tophat", password: "short", wantCode: domain.ErrCodeInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, _, ctrl := newTestUserUseCase(t)
			defer ctrl.Finish()

			_, err := uc.SignUp(tt.username, tt.password)

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestSignUp_UsernameTaken(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByUsername("tophat").Return(createTestUser(t), nil)

	_, err := uc.SignUp("TopHat", "secret123")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeUsernameTaken, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestSignUp_Success(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByUsername("tophat").Return(nil, nil)
	mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Equal(t, "tophat", u.Username)
		assert.NotEmpty(t, u.UID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
		assert.Equal(t, domain.AuthProviderLocal, u.AuthProvider)
		assert.True(t, u.IsProfileComplete)
		assert.True(t, u.Settings.SoundEnabled)
		assert.Equal(t, "en", u.Settings.Language)
		u.ID = 123
		return nil
	})

	user, err := uc.SignUp("  TopHat  ", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, int64(123), user.ID)
}

func TestSignIn_Success(t *testing.T) {
	uc, mockUserRepo, _, jwtSvc, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	user := createTestUser(t)
	mockUserRepo.EXPECT().GetByUsername("tophat").Return(user, nil)

	result, err := uc.SignIn("TopHat", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.NotEmpty(t, result.Token)

	claims, err := jwtSvc.ValidateToken(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(user.ID, 10), claims.UserID)
	assert.Equal(t, "tophat", claims.Username)
}

func TestSignIn_Rejections(t *testing.T) {
	t.Run("EmptyCredentials", func(t *testing.T) {
		uc, _, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		_, err := uc.SignIn("", "")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		mockUserRepo.EXPECT().GetByUsername("nobody").Return(nil, nil)

		_, err := uc.SignIn("nobody", "secret123")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
		assert.Equal(t, 401, appErr.HTTPStatus)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		mockUserRepo.EXPECT().GetByUsername("tophat").Return(createTestUser(t), nil)

		_, err := uc.SignIn("tophat", "wrong-password")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	})
}

func TestCheckUsername(t *testing.T) {
	t.Run("Available", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		mockUserRepo.EXPECT().GetByUsername("racecar").Return(nil, nil)

		available, err := uc.CheckUsername("RaceCar")
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Taken", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		mockUserRepo.EXPECT().GetByUsername("tophat").Return(createTestUser(t), nil)

		available, err := uc.CheckUsername("tophat")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		uc, _, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		_, err := uc.CheckUsername("no spaces allowed")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidFormat, appErr.Code)
	})
}

func TestCompleteProfile_UsernameTaken(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	oauthUser := createTestUser(t)
	oauthUser.Username = "google_1a2b3c4d"
	oauthUser.IsProfileComplete = false

	mockUserRepo.EXPECT().GetByID(int64(123)).Return(oauthUser, nil)
	mockUserRepo.EXPECT().GetByUsername("thimble").Return(createTestUser(t), nil)

	_, err := uc.CompleteProfile(123, "thimble", "Thimble")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeUsernameTaken, appErr.Code)
}

func TestCompleteProfile_Success(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	oauthUser := createTestUser(t)
	oauthUser.Username = "google_1a2b3c4d"
	oauthUser.IsProfileComplete = false

	mockUserRepo.EXPECT().GetByID(int64(123)).Return(oauthUser, nil)
	mockUserRepo.EXPECT().GetByUsername("thimble").Return(nil, nil)
	mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Equal(t, "thimble", u.Username)
		assert.Equal(t, "Thimble", u.DisplayName)
		assert.True(t, u.IsProfileComplete)
		return nil
	})

	user, err := uc.CompleteProfile(123, "Thimble", "Thimble")

	assert.NoError(t, err)
	assert.Equal(t, "thimble", user.Username)
}

func TestChangePassword(t *testing.T) {
	t.Run("NewPasswordTooShort", func(t *testing.T) {
		uc, _, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		err := uc.ChangePassword(123, "secret123", "short")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidRange, appErr.Code)
	})

	t.Run("CurrentPasswordIncorrect", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		mockUserRepo.EXPECT().GetByID(int64(123)).Return(createTestUser(t), nil)

		err := uc.ChangePassword(123, "wrong-password", "newsecret")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodePasswordIncorrect, appErr.Code)
	})

	t.Run("Success", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		mockUserRepo.EXPECT().GetByID(int64(123)).Return(createTestUser(t), nil)
		mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newsecret")))
			return nil
		})

		err := uc.ChangePassword(123, "secret123", "newsecret")
		assert.NoError(t, err)
	})
}

func TestGetStats(t *testing.T) {
	t.Run("WinRate", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		user := createTestUser(t)
		user.Stats = domain.UserStats{GamesPlayed: 4, GamesWon: 3, TotalEarnings: 620}
		history := []*domain.GameHistoryEntry{
			{GameID: 42, GameCode: "ABCDEF", Result: domain.GameResultWon, Earnings: 250},
		}

		mockUserRepo.EXPECT().GetByID(int64(123)).Return(user, nil)
		mockUserRepo.EXPECT().GetGameHistory(int64(123), 10).Return(history, nil)

		report, err := uc.GetStats(123)

		assert.NoError(t, err)
		assert.Equal(t, "75%", report.WinRate)
		assert.Equal(t, user.Stats, report.Stats)
		assert.Len(t, report.GameHistory, 1)
	})

	t.Run("NoGamesPlayed", func(t *testing.T) {
		uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
		defer ctrl.Finish()

		mockUserRepo.EXPECT().GetByID(int64(123)).Return(createTestUser(t), nil)
		mockUserRepo.EXPECT().GetGameHistory(int64(123), 10).Return(nil, nil)

		report, err := uc.GetStats(123)

		assert.NoError(t, err)
		assert.Equal(t, "0%", report.WinRate)
	})
}

func TestRequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, nil)

	err := uc.RequestPasswordReset("Nobody@Example.com")
	assert.NoError(t, err)
}

func TestRequestPasswordReset_StoresHashAndMailsRawToken(t *testing.T) {
	uc, mockUserRepo, mockMailerSvc, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	user := createTestUser(t)
	var storedHash string

	mockUserRepo.EXPECT().GetByEmail("tophat@example.com").Return(user, nil)
	mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Len(t, u.PasswordResetToken, 64)
		assert.NotNil(t, u.PasswordResetExpires)
		assert.True(t, u.PasswordResetExpires.After(time.Now()))
		storedHash = u.PasswordResetToken
		return nil
	})
	mockMailerSvc.EXPECT().SendPasswordReset("tophat@example.com", gomock.Any(), "Top Hat").DoAndReturn(
		func(email, rawToken, displayName string) error {
			sum := sha256.Sum256([]byte(rawToken))
			assert.Equal(t, storedHash, hex.EncodeToString(sum[:]))
			return nil
		})

	err := uc.RequestPasswordReset("tophat@example.com")
	assert.NoError(t, err)
}

func TestRequestPasswordReset_MailFailureClearsToken(t *testing.T) {
	uc, mockUserRepo, mockMailerSvc, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	user := createTestUser(t)

	mockUserRepo.EXPECT().GetByEmail("tophat@example.com").Return(user, nil)
	mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil)
	mockMailerSvc.EXPECT().SendPasswordReset("tophat@example.com", gomock.Any(), "Top Hat").
		Return(errors.New("relay unreachable"))
	mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Empty(t, u.PasswordResetToken)
		assert.Nil(t, u.PasswordResetExpires)
		return nil
	})

	err := uc.RequestPasswordReset("tophat@example.com")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeMailerServiceError, appErr.Code)
}
