package domain

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
)

// AuthProvider identifies how an account was created
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
	AuthProviderApple  AuthProvider = "apple"
)

// UserStats holds aggregate game statistics for a user
type UserStats struct {
	GamesPlayed   int   `json:"gamesPlayed" gorm:"not null;default:0"`
	GamesWon      int   `json:"gamesWon" gorm:"not null;default:0"`
	TotalEarnings int64 `json:"totalEarnings" gorm:"not null;default:0"`
	LongestStreak int   `json:"longestStreak" gorm:"not null;default:0"`
	CurrentStreak int   `json:"currentStreak" gorm:"not null;default:0"`
}

// UserSettings holds per-user client preferences
type UserSettings struct {
	SoundEnabled         bool   `json:"soundEnabled" gorm:"not null;default:true"`
	NotificationsEnabled bool   `json:"notificationsEnabled" gorm:"not null;default:true"`
	DarkMode             bool   `json:"darkMode" gorm:"not null;default:true"`
	Language             string `json:"language" gorm:"type:varchar(8);not null;default:'en'"`
}

// User represents a player account
type User struct {
	ID                   int64          `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	UID                  string         `json:"uid" gorm:"uniqueIndex;type:varchar(16);not null"`
	Username             string         `json:"username" gorm:"uniqueIndex;type:varchar(20);not null"`
	Password             string         `json:"-" gorm:"type:varchar(128)"`
	Email                string         `json:"email,omitempty" gorm:"index;type:varchar(254)"`
	DisplayName          string         `json:"displayName,omitempty" gorm:"type:varchar(64)"`
	Avatar               string         `json:"avatar,omitempty" gorm:"type:varchar(512)"`
	GoogleID             string         `json:"-" gorm:"index;type:varchar(64)"`
	AppleID              string         `json:"-" gorm:"index;type:varchar(64)"`
	AuthProvider         AuthProvider   `json:"authProvider" gorm:"type:varchar(16);not null;default:'local'"`
	IsProfileComplete    bool           `json:"isProfileComplete" gorm:"not null;default:true"`
	Stats                UserStats      `json:"stats" gorm:"embedded;embeddedPrefix:stat_"`
	Settings             UserSettings   `json:"settings" gorm:"embedded;embeddedPrefix:setting_"`
	PasswordResetToken   string         `json:"-" gorm:"type:varchar(128)"`
	PasswordResetExpires *time.Time     `json:"-"`
	CreatedAt            time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt            time.Time      `json:"updated_at" gorm:"not null"`
	DeletedAt            gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// NewUID generates a public user identifier like "MP1A2B3C4D"
func NewUID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return "MP" + strings.ToUpper(hex.EncodeToString(buf))
}

// FriendRequest is a directed pending friendship between two users
type FriendRequest struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FromUserID int64     `json:"from_user_id" gorm:"uniqueIndex:idx_friend_request_pair;not null"`
	ToUserID   int64     `json:"to_user_id" gorm:"uniqueIndex:idx_friend_request_pair;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`

	From User `json:"from" gorm:"foreignKey:FromUserID"`
	To   User `json:"to" gorm:"foreignKey:ToUserID"`
}

// TableName specifies the table name for FriendRequest
func (r FriendRequest) TableName() string {
	return "friend_requests"
}

// GameHistoryEntry records the outcome of one finished game for a user
type GameHistoryEntry struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   int64     `json:"-" gorm:"index;not null"`
	GameID   int64     `json:"game_id" gorm:"not null"`
	GameCode string    `json:"game_code" gorm:"type:varchar(6);not null"`
	Date     time.Time `json:"date" gorm:"not null"`
	Players  int       `json:"players" gorm:"not null"`
	Result   string    `json:"result" gorm:"type:varchar(8);not null"`
	Earnings int64     `json:"earnings" gorm:"not null"`
}

// TableName specifies the table name for GameHistoryEntry
func (e GameHistoryEntry) TableName() string {
	return "game_history"
}

// Game history results
const (
	GameResultWon  = "Won"
	GameResultLost = "Lost"
)

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id int64) (*User, error)
	GetByUsername(username string) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByGoogleID(googleID string) (*User, error)
	GetByAppleID(appleID string) (*User, error)
	Create(user *User) error
	Update(user *User) error
	Search(excludeUserID int64, query string, limit int) ([]*User, error)

	GetFriends(userID int64) ([]*User, error)
	AreFriends(userID, otherID int64) (bool, error)
	AddFriend(userID, friendID int64) error
	RemoveFriend(userID, friendID int64) error
	GetFriendRequest(fromUserID, toUserID int64) (*FriendRequest, error)
	CreateFriendRequest(fromUserID, toUserID int64) error
	DeleteFriendRequest(fromUserID, toUserID int64) error
	GetSentRequests(userID int64) ([]*FriendRequest, error)
	GetReceivedRequests(userID int64) ([]*FriendRequest, error)

	AppendGameHistory(entry *GameHistoryEntry) error
	GetGameHistory(userID int64, limit int) ([]*GameHistoryEntry, error)

	Transaction(fn func(UserRepository) error) error
}

// GoogleProfile is the identity payload from a Google sign-in
type GoogleProfile struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// AppleProfile is the identity payload decoded from an Apple identity token
type AppleProfile struct {
	AppleID string
	Email   string
	Name    string
}

// AuthResult is the outcome of a successful authentication
type AuthResult struct {
	User      *User
	Token     string
	IsNewUser bool
}

// ProfileUpdate carries optional profile edits; nil fields are left unchanged
type ProfileUpdate struct {
	Username    *string
	DisplayName *string
	Email       *string
}

// SettingsUpdate carries optional settings edits; nil fields are left unchanged
type SettingsUpdate struct {
	SoundEnabled         *bool
	NotificationsEnabled *bool
	DarkMode             *bool
	Language             *string
}

// StatsReport is the stats payload returned to clients
type StatsReport struct {
	Stats       UserStats           `json:"stats"`
	WinRate     string              `json:"winRate"`
	GameHistory []*GameHistoryEntry `json:"gameHistory"`
}

// UserUseCase defines the interface for account business logic
type UserUseCase interface {
	SignUp(username, password string) (*User, error)
	SignIn(username, password string) (*AuthResult, error)
	AuthenticateGoogle(profile GoogleProfile) (*AuthResult, error)
	AuthenticateApple(profile AppleProfile) (*AuthResult, error)
	GetUserInfo(userID int64) (*User, error)
	CheckUsername(username string) (bool, error)
	CompleteProfile(userID int64, username, displayName string) (*User, error)
	UpdateProfile(userID int64, update ProfileUpdate) (*User, error)
	ChangePassword(userID int64, currentPassword, newPassword string) error
	UpdateSettings(userID int64, update SettingsUpdate) (*User, error)
	GetStats(userID int64) (*StatsReport, error)
	RequestPasswordReset(email string) error
}

// FriendStatus describes the relationship between two users in search results
type FriendStatus string

const (
	FriendStatusNone            FriendStatus = "none"
	FriendStatusFriend          FriendStatus = "friend"
	FriendStatusPendingSent     FriendStatus = "pending_sent"
	FriendStatusPendingReceived FriendStatus = "pending_received"
)

// FriendList is the full friend-graph view for one user
type FriendList struct {
	Friends         []*User          `json:"friends"`
	PendingSent     []*FriendRequest `json:"pendingSent"`
	PendingReceived []*FriendRequest `json:"pendingReceived"`
}

// UserSearchResult is a search hit annotated with friendship status
type UserSearchResult struct {
	ID          int64        `json:"id"`
	UID         string       `json:"uid"`
	Username    string       `json:"username"`
	DisplayName string       `json:"displayName,omitempty"`
	Avatar      string       `json:"avatar,omitempty"`
	Status      FriendStatus `json:"status"`
}

// FriendUseCase defines the interface for friend-graph business logic
type FriendUseCase interface {
	List(userID int64) (*FriendList, error)
	Search(userID int64, query string) ([]*UserSearchResult, error)
	SendRequest(userID, targetUserID int64) error
	AcceptRequest(userID, requesterID int64) (*User, error)
	RejectRequest(userID, requesterID int64) error
	CancelRequest(userID, targetUserID int64) error
	RemoveFriend(userID, friendID int64) error
}
