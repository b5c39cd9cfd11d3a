package repository

import (
	"errors"
	"time"

	"github.com/monopay/monopay-api/internal/domain"

	"gorm.io/gorm"
)

// userFriend is one direction of a symmetric friendship; both directions are
// stored so either side's friend list is a single indexed lookup.
type userFriend struct {
	UserID   int64 `gorm:"primaryKey"`
	FriendID int64 `gorm:"primaryKey"`
}

func (userFriend) TableName() string {
	return "user_friends"
}

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int64) (*domain.User, error) {
	return r.getOne("id = ?", id)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*domain.User, error) {
	return r.getOne("username = ?", username)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getOne("email = ?", email)
}

// GetByGoogleID retrieves a user by Google account ID
func (r *UserRepository) GetByGoogleID(googleID string) (*domain.User, error) {
	return r.getOne("google_id = ?", googleID)
}

// GetByAppleID retrieves a user by Apple account ID
func (r *UserRepository) GetByAppleID(appleID string) (*domain.User, error) {
	return r.getOne("apple_id = ?", appleID)
}

func (r *UserRepository) getOne(query string, args ...interface{}) (*domain.User, error) {
	var user domain.User
	result := r.db.Where(query, args...).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(user *domain.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

// Update updates an existing user
func (r *UserRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// Search finds users matching the query by uid, username or display name
func (r *UserRepository) Search(excludeUserID int64, query string, limit int) ([]*domain.User, error) {
	var users []*domain.User
	pattern := "%" + query + "%"
	result := r.db.
		Where("id <> ?", excludeUserID).
		Where("uid ILIKE ? OR username ILIKE ? OR display_name ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// GetFriends retrieves the friend list for a user
func (r *UserRepository) GetFriends(userID int64) ([]*domain.User, error) {
	var users []*domain.User
	result := r.db.
		Joins("JOIN user_friends uf ON uf.friend_id = users.id").
		Where("uf.user_id = ?", userID).
		Order("users.username ASC").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// AreFriends reports whether two users are friends
func (r *UserRepository) AreFriends(userID, otherID int64) (bool, error) {
	var count int64
	result := r.db.Model(&userFriend{}).
		Where("user_id = ? AND friend_id = ?", userID, otherID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// AddFriend records a friendship in both directions
func (r *UserRepository) AddFriend(userID, friendID int64) error {
	rows := []userFriend{
		{UserID: userID, FriendID: friendID},
		{UserID: friendID, FriendID: userID},
	}
	return r.db.Create(&rows).Error
}

// RemoveFriend removes a friendship in both directions
func (r *UserRepository) RemoveFriend(userID, friendID int64) error {
	return r.db.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&userFriend{}).Error
}

// GetFriendRequest retrieves a pending request between two users
func (r *UserRepository) GetFriendRequest(fromUserID, toUserID int64) (*domain.FriendRequest, error) {
	var request domain.FriendRequest
	result := r.db.Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).First(&request)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &request, nil
}

// CreateFriendRequest records a pending request
func (r *UserRepository) CreateFriendRequest(fromUserID, toUserID int64) error {
	request := domain.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		CreatedAt:  time.Now(),
	}
	return r.db.Create(&request).Error
}

// DeleteFriendRequest removes a pending request if present
func (r *UserRepository) DeleteFriendRequest(fromUserID, toUserID int64) error {
	return r.db.
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Delete(&domain.FriendRequest{}).Error
}

// GetSentRequests retrieves requests sent by a user, recipient preloaded
func (r *UserRepository) GetSentRequests(userID int64) ([]*domain.FriendRequest, error) {
	var requests []*domain.FriendRequest
	result := r.db.Preload("To").
		Where("from_user_id = ?", userID).
		Order("created_at ASC").
		Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

// GetReceivedRequests retrieves requests received by a user, sender preloaded
func (r *UserRepository) GetReceivedRequests(userID int64) ([]*domain.FriendRequest, error) {
	var requests []*domain.FriendRequest
	result := r.db.Preload("From").
		Where("to_user_id = ?", userID).
		Order("created_at ASC").
		Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

// AppendGameHistory records a finished game for a user
func (r *UserRepository) AppendGameHistory(entry *domain.GameHistoryEntry) error {
	return r.db.Create(entry).Error
}

// GetGameHistory retrieves the most recent history entries for a user
func (r *UserRepository) GetGameHistory(userID int64, limit int) ([]*domain.GameHistoryEntry, error) {
	var entries []*domain.GameHistoryEntry
	result := r.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// Transaction runs fn inside a database transaction
func (r *UserRepository) Transaction(fn func(domain.UserRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&UserRepository{db: tx})
	})
}
