package user

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticateGoogle_ExistingUser(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	user := createTestUser(t)
	user.GoogleID = "google-oauth2|1234567890abcdef"

	mockUserRepo.EXPECT().GetByGoogleID("google-oauth2|1234567890abcdef").Return(user, nil)

	result, err := uc.AuthenticateGoogle(domain.GoogleProfile{
		GoogleID: "google-oauth2|1234567890abcdef",
		Email:    "tophat@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.False(t, result.IsNewUser)
	assert.NotEmpty(t, result.Token)
}

func TestAuthenticateGoogle_LinksExistingEmailAccount(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	user := createTestUser(t)
	user.Avatar = ""

	mockUserRepo.EXPECT().GetByGoogleID("g-12345678").Return(nil, nil)
	mockUserRepo.EXPECT().GetByEmail("tophat@example.com").Return(user, nil)
	mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Equal(t, "g-12345678", u.GoogleID)
		assert.Equal(t, "https://example.com/avatar.png", u.Avatar)
		return nil
	})

	result, err := uc.AuthenticateGoogle(domain.GoogleProfile{
		GoogleID: "g-12345678",
		Email:    "tophat@example.com",
		Picture:  "https://example.com/avatar.png",
	})

	assert.NoError(t, err)
	assert.False(t, result.IsNewUser)
}

func TestAuthenticateGoogle_NewUserGetsPlaceholderUsername(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByGoogleID("G-1234ABCD").Return(nil, nil)
	mockUserRepo.EXPECT().GetByEmail("new@example.com").Return(nil, nil)
	mockUserRepo.EXPECT().GetByUsername("google_1234abcd").Return(nil, nil)
	mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Equal(t, "google_1234abcd", u.Username)
		assert.Equal(t, domain.AuthProviderGoogle, u.AuthProvider)
		assert.False(t, u.IsProfileComplete)
		u.ID = 200
		return nil
	})

	result, err := uc.AuthenticateGoogle(domain.GoogleProfile{
		GoogleID: "G-1234ABCD",
		Email:    "new@example.com",
		Name:     "New Player",
	})

	assert.NoError(t, err)
	assert.True(t, result.IsNewUser)
	assert.NotEmpty(t, result.Token)
}

func TestAuthenticateGoogle_PlaceholderCollisionAddsSuffix(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	taken := createTestUser(t)

	mockUserRepo.EXPECT().GetByGoogleID("G-1234ABCD").Return(nil, nil)
	mockUserRepo.EXPECT().GetByUsername("google_1234abcd").Return(taken, nil)
	mockUserRepo.EXPECT().GetByUsername("google_1234abcd1").Return(nil, nil)
	mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Equal(t, "google_1234abcd1", u.Username)
		return nil
	})

	result, err := uc.AuthenticateGoogle(domain.GoogleProfile{GoogleID: "G-1234ABCD"})

	assert.NoError(t, err)
	assert.True(t, result.IsNewUser)
}

func TestAuthenticateApple_MissingID(t *testing.T) {
	uc, _, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	_, err := uc.AuthenticateApple(domain.AppleProfile{})

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestAuthenticateApple_RepeatSignInWithoutEmail(t *testing.T) {
	uc, mockUserRepo, _, _, ctrl := newTestUserUseCase(t)
	defer ctrl.Finish()

	user := createTestUser(t)
	user.AppleID = "001234.abcdef"
	user.AuthProvider = domain.AuthProviderApple

	mockUserRepo.EXPECT().GetByAppleID("001234.abcdef").Return(user, nil)

	result, err := uc.AuthenticateApple(domain.AppleProfile{AppleID: "001234.abcdef"})

	assert.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.False(t, result.IsNewUser)
}
