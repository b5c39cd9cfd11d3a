package friend

import (
	"strings"

	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const searchLimit = 20

// FriendUseCase implements domain.FriendUseCase
type FriendUseCase struct {
	userRepo domain.UserRepository
	logger   *logger.Logger
}

// NewFriendUseCase creates a new friend use case
func NewFriendUseCase(userRepo domain.UserRepository, logger *logger.Logger) domain.FriendUseCase {
	return &FriendUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns the user's friends and pending requests in both directions
func (uc *FriendUseCase) List(userID int64) (*domain.FriendList, error) {
	uc.logger.Debug("Listing friends",
		zap.Int64("user_id", userID))

	friends, err := uc.userRepo.GetFriends(userID)
	if err != nil {
		uc.logger.Error("Failed to get friends",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get friends", 500, err)
	}

	sent, err := uc.userRepo.GetSentRequests(userID)
	if err != nil {
		uc.logger.Error("Failed to get sent requests",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get friend requests", 500, err)
	}

	received, err := uc.userRepo.GetReceivedRequests(userID)
	if err != nil {
		uc.logger.Error("Failed to get received requests",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get friend requests", 500, err)
	}

	return &domain.FriendList{
		Friends:         friends,
		PendingSent:     sent,
		PendingReceived: received,
	}, nil
}

// Search finds users by uid, username or display name, annotated with the
// relationship status relative to the searching user
func (uc *FriendUseCase) Search(userID int64, query string) ([]*domain.UserSearchResult, error) {
	query = strings.TrimSpace(query)

	uc.logger.Debug("Searching users",
		zap.Int64("user_id", userID),
		zap.String("query", query))

	if len(query) < 2 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Search query must be at least 2 characters", 400, nil)
	}

	users, err := uc.userRepo.Search(userID, query, searchLimit)
	if err != nil {
		uc.logger.Error("Failed to search users",
			zap.Int64("user_id", userID),
			zap.String("query", query),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to search users", 500, err)
	}

	results := make([]*domain.UserSearchResult, 0, len(users))
	for _, u := range users {
		status, err := uc.statusBetween(userID, u.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, &domain.UserSearchResult{
			ID:          u.ID,
			UID:         u.UID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Avatar:      u.Avatar,
			Status:      status,
		})
	}

	return results, nil
}

// SendRequest creates a pending friend request toward another user
func (uc *FriendUseCase) SendRequest(userID, targetUserID int64) error {
	uc.logger.Info("Sending friend request",
		zap.Int64("user_id", userID),
		zap.Int64("target_user_id", targetUserID))

	if userID == targetUserID {
		uc.logger.Warn("Friend request rejected - self target",
			zap.Int64("user_id", userID))
		return domain.NewAppError(domain.ErrCodeCannotFriendSelf, "Cannot send a friend request to yourself", 400, nil)
	}

	target, err := uc.userRepo.GetByID(targetUserID)
	if err != nil {
		uc.logger.Error("Failed to get target user",
			zap.Int64("target_user_id", targetUserID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}
	if target == nil {
		uc.logger.Warn("Friend request rejected - target not found",
			zap.Int64("target_user_id", targetUserID))
		return domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}

	alreadyFriends, err := uc.userRepo.AreFriends(userID, targetUserID)
	if err != nil {
		uc.logger.Error("Failed to check friendship",
			zap.Int64("user_id", userID),
			zap.Int64("target_user_id", targetUserID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check friendship", 500, err)
	}
	if alreadyFriends {
		return domain.NewAppError(domain.ErrCodeAlreadyFriends, "You are already friends with this user", 400, nil)
	}

	outgoing, err := uc.getRequest(userID, targetUserID)
	if err != nil {
		return err
	}
	if outgoing != nil {
		return domain.NewAppError(domain.ErrCodeRequestAlreadySent, "Friend request already sent", 400, nil)
	}

	// A pending request in the other direction means both users want the
	// friendship, so accept it instead of stacking a second request.
	incoming, err := uc.getRequest(targetUserID, userID)
	if err != nil {
		return err
	}
	if incoming != nil {
		uc.logger.Info("Mutual friend request detected, accepting",
			zap.Int64("user_id", userID),
			zap.Int64("target_user_id", targetUserID))
		_, err := uc.AcceptRequest(userID, targetUserID)
		return err
	}

	if err := uc.userRepo.CreateFriendRequest(userID, targetUserID); err != nil {
		uc.logger.Error("Failed to create friend request",
			zap.Int64("user_id", userID),
			zap.Int64("target_user_id", targetUserID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create friend request", 500, err)
	}

	uc.logger.Info("Friend request sent",
		zap.Int64("user_id", userID),
		zap.Int64("target_user_id", targetUserID))

	return nil
}

// AcceptRequest turns a pending request from requesterID into a friendship
// and returns the new friend
func (uc *FriendUseCase) AcceptRequest(userID, requesterID int64) (*domain.User, error) {
	uc.logger.Info("Accepting friend request",
		zap.Int64("user_id", userID),
		zap.Int64("requester_id", requesterID))

	request, err := uc.getRequest(requesterID, userID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		uc.logger.Warn("Friend request not found",
			zap.Int64("user_id", userID),
			zap.Int64("requester_id", requesterID))
		return nil, domain.NewAppError(domain.ErrCodeRequestNotFound, "Friend request not found", 404, nil)
	}

	err = uc.userRepo.Transaction(func(repo domain.UserRepository) error {
		if err := repo.DeleteFriendRequest(requesterID, userID); err != nil {
			return err
		}
		return repo.AddFriend(userID, requesterID)
	})
	if err != nil {
		uc.logger.Error("Failed to accept friend request",
			zap.Int64("user_id", userID),
			zap.Int64("requester_id", requesterID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to accept friend request", 500, err)
	}

	friend, err := uc.userRepo.GetByID(requesterID)
	if err != nil {
		uc.logger.Error("Failed to get new friend",
			zap.Int64("requester_id", requesterID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	uc.logger.Info("Friend request accepted",
		zap.Int64("user_id", userID),
		zap.Int64("requester_id", requesterID))

	return friend, nil
}

// RejectRequest discards a pending request from requesterID
func (uc *FriendUseCase) RejectRequest(userID, requesterID int64) error {
	uc.logger.Info("Rejecting friend request",
		zap.Int64("user_id", userID),
		zap.Int64("requester_id", requesterID))

	return uc.deleteRequest(requesterID, userID)
}

// CancelRequest withdraws a pending request the user sent to targetUserID
func (uc *FriendUseCase) CancelRequest(userID, targetUserID int64) error {
	uc.logger.Info("Cancelling friend request",
		zap.Int64("user_id", userID),
		zap.Int64("target_user_id", targetUserID))

	return uc.deleteRequest(userID, targetUserID)
}

// RemoveFriend removes an existing friendship
func (uc *FriendUseCase) RemoveFriend(userID, friendID int64) error {
	uc.logger.Info("Removing friend",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID))

	areFriends, err := uc.userRepo.AreFriends(userID, friendID)
	if err != nil {
		uc.logger.Error("Failed to check friendship",
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check friendship", 500, err)
	}
	if !areFriends {
		uc.logger.Warn("Remove friend rejected - not friends",
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID))
		return domain.NewAppError(domain.ErrCodeUserNotFound, "Friend not found", 404, nil)
	}

	if err := uc.userRepo.RemoveFriend(userID, friendID); err != nil {
		uc.logger.Error("Failed to remove friend",
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to remove friend", 500, err)
	}

	uc.logger.Info("Friend removed",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID))

	return nil
}

// statusBetween classifies the relationship between two users
func (uc *FriendUseCase) statusBetween(userID, otherID int64) (domain.FriendStatus, error) {
	areFriends, err := uc.userRepo.AreFriends(userID, otherID)
	if err != nil {
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check friendship", 500, err)
	}
	if areFriends {
		return domain.FriendStatusFriend, nil
	}

	outgoing, err := uc.getRequest(userID, otherID)
	if err != nil {
		return "", err
	}
	if outgoing != nil {
		return domain.FriendStatusPendingSent, nil
	}

	incoming, err := uc.getRequest(otherID, userID)
	if err != nil {
		return "", err
	}
	if incoming != nil {
		return domain.FriendStatusPendingReceived, nil
	}

	return domain.FriendStatusNone, nil
}

func (uc *FriendUseCase) getRequest(fromUserID, toUserID int64) (*domain.FriendRequest, error) {
	request, err := uc.userRepo.GetFriendRequest(fromUserID, toUserID)
	if err != nil {
		uc.logger.Error("Failed to get friend request",
			zap.Int64("from_user_id", fromUserID),
			zap.Int64("to_user_id", toUserID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get friend request", 500, err)
	}
	return request, nil
}

func (uc *FriendUseCase) deleteRequest(fromUserID, toUserID int64) error {
	request, err := uc.getRequest(fromUserID, toUserID)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.NewAppError(domain.ErrCodeRequestNotFound, "Friend request not found", 404, nil)
	}

	if err := uc.userRepo.DeleteFriendRequest(fromUserID, toUserID); err != nil {
		uc.logger.Error("Failed to delete friend request",
			zap.Int64("from_user_id", fromUserID),
			zap.Int64("to_user_id", toUserID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete friend request", 500, err)
	}

	return nil
}
