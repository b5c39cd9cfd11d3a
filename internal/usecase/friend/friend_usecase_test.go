package friend

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/domain/mocks"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestFriendUseCase(t *testing.T) (*FriendUseCase, *mocks.MockUserRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	uc := &FriendUseCase{
		userRepo: mockUserRepo,
		logger:   logger.NewLogger("test", "debug"),
	}

	return uc, mockUserRepo, ctrl
}

func createTestUser(id int64, username string) *domain.User {
	return &domain.User{
		ID:        id,
		UID:       "MP1A2B3C4D",
		Username:  username,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func pendingRequest(fromID, toID int64) *domain.FriendRequest {
	return &domain.FriendRequest{
		ID:         1,
		FromUserID: fromID,
		ToUserID:   toID,
		CreatedAt:  time.Now(),
	}
}

func TestList(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	friends := []*domain.User{createTestUser(2, "racecar")}
	sent := []*domain.FriendRequest{pendingRequest(1, 3)}
	received := []*domain.FriendRequest{pendingRequest(4, 1)}

	mockUserRepo.EXPECT().GetFriends(int64(1)).Return(friends, nil)
	mockUserRepo.EXPECT().GetSentRequests(int64(1)).Return(sent, nil)
	mockUserRepo.EXPECT().GetReceivedRequests(int64(1)).Return(received, nil)

	list, err := uc.List(1)

	assert.NoError(t, err)
	assert.Equal(t, friends, list.Friends)
	assert.Equal(t, sent, list.PendingSent)
	assert.Equal(t, received, list.PendingReceived)
}

func TestSearch_QueryTooShort(t *testing.T) {
	uc, _, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	_, err := uc.Search(1, " r ")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidRange, appErr.Code)
}

func TestSearch_AnnotatesStatus(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	hits := []*domain.User{
		createTestUser(2, "racecar"),
		createTestUser(3, "thimble"),
		createTestUser(4, "scottie"),
	}

	mockUserRepo.EXPECT().Search(int64(1), "car", 20).Return(hits, nil)

	// 2 is a friend, 3 has a pending request from us, 4 sent one to us.
	mockUserRepo.EXPECT().AreFriends(int64(1), int64(2)).Return(true, nil)
	mockUserRepo.EXPECT().AreFriends(int64(1), int64(3)).Return(false, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(1), int64(3)).Return(pendingRequest(1, 3), nil)
	mockUserRepo.EXPECT().AreFriends(int64(1), int64(4)).Return(false, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(1), int64(4)).Return(nil, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(4), int64(1)).Return(pendingRequest(4, 1), nil)

	results, err := uc.Search(1, "car")

	assert.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, domain.FriendStatusFriend, results[0].Status)
	assert.Equal(t, domain.FriendStatusPendingSent, results[1].Status)
	assert.Equal(t, domain.FriendStatusPendingReceived, results[2].Status)
}

func TestSendRequest_SelfTarget(t *testing.T) {
	uc, _, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	err := uc.SendRequest(1, 1)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeCannotFriendSelf, appErr.Code)
}

func TestSendRequest_TargetNotFound(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByID(int64(9)).Return(nil, nil)

	err := uc.SendRequest(1, 9)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
}

func TestSendRequest_AlreadyFriends(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByID(int64(2)).Return(createTestUser(2, "racecar"), nil)
	mockUserRepo.EXPECT().AreFriends(int64(1), int64(2)).Return(true, nil)

	err := uc.SendRequest(1, 2)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeAlreadyFriends, appErr.Code)
}

func TestSendRequest_AlreadySent(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByID(int64(2)).Return(createTestUser(2, "racecar"), nil)
	mockUserRepo.EXPECT().AreFriends(int64(1), int64(2)).Return(false, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(1), int64(2)).Return(pendingRequest(1, 2), nil)

	err := uc.SendRequest(1, 2)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequestAlreadySent, appErr.Code)
}

func TestSendRequest_MutualRequestAutoAccepts(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByID(int64(2)).Return(createTestUser(2, "racecar"), nil)
	mockUserRepo.EXPECT().AreFriends(int64(1), int64(2)).Return(false, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(1), int64(2)).Return(nil, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(2), int64(1)).Return(pendingRequest(2, 1), nil).Times(2)
	mockUserRepo.EXPECT().Transaction(gomock.Any()).DoAndReturn(func(fn func(domain.UserRepository) error) error {
		return fn(mockUserRepo)
	})
	mockUserRepo.EXPECT().DeleteFriendRequest(int64(2), int64(1)).Return(nil)
	mockUserRepo.EXPECT().AddFriend(int64(1), int64(2)).Return(nil)
	mockUserRepo.EXPECT().GetByID(int64(2)).Return(createTestUser(2, "racecar"), nil)

	err := uc.SendRequest(1, 2)
	assert.NoError(t, err)
}

func TestSendRequest_CreatesPendingRequest(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByID(int64(2)).Return(createTestUser(2, "racecar"), nil)
	mockUserRepo.EXPECT().AreFriends(int64(1), int64(2)).Return(false, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(1), int64(2)).Return(nil, nil)
	mockUserRepo.EXPECT().GetFriendRequest(int64(2), int64(1)).Return(nil, nil)
	mockUserRepo.EXPECT().CreateFriendRequest(int64(1), int64(2)).Return(nil)

	err := uc.SendRequest(1, 2)
	assert.NoError(t, err)
}

func TestAcceptRequest_NotFound(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetFriendRequest(int64(2), int64(1)).Return(nil, nil)

	_, err := uc.AcceptRequest(1, 2)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequestNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestAcceptRequest_Success(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	requester := createTestUser(2, "racecar")

	mockUserRepo.EXPECT().GetFriendRequest(int64(2), int64(1)).Return(pendingRequest(2, 1), nil)
	mockUserRepo.EXPECT().Transaction(gomock.Any()).DoAndReturn(func(fn func(domain.UserRepository) error) error {
		return fn(mockUserRepo)
	})
	mockUserRepo.EXPECT().DeleteFriendRequest(int64(2), int64(1)).Return(nil)
	mockUserRepo.EXPECT().AddFriend(int64(1), int64(2)).Return(nil)
	mockUserRepo.EXPECT().GetByID(int64(2)).Return(requester, nil)

	friend, err := uc.AcceptRequest(1, 2)

	assert.NoError(t, err)
	assert.Equal(t, requester, friend)
}

func TestRejectRequest(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetFriendRequest(int64(2), int64(1)).Return(pendingRequest(2, 1), nil)
	mockUserRepo.EXPECT().DeleteFriendRequest(int64(2), int64(1)).Return(nil)

	err := uc.RejectRequest(1, 2)
	assert.NoError(t, err)
}

func TestCancelRequest_NotFound(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetFriendRequest(int64(1), int64(2)).Return(nil, nil)

	err := uc.CancelRequest(1, 2)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequestNotFound, appErr.Code)
}

func TestRemoveFriend_NotFriends(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().AreFriends(int64(1), int64(2)).Return(false, nil)

	err := uc.RemoveFriend(1, 2)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
}

func TestRemoveFriend_Success(t *testing.T) {
	uc, mockUserRepo, ctrl := newTestFriendUseCase(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().AreFriends(int64(1), int64(2)).Return(true, nil)
	mockUserRepo.EXPECT().RemoveFriend(int64(1), int64(2)).Return(nil)

	err := uc.RemoveFriend(1, 2)
	assert.NoError(t, err)
}
