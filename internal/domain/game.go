package domain

import (
	"time"
)

// GameStatus represents the lifecycle status of a game
type GameStatus string

const (
	GameStatusWaiting    GameStatus = "waiting"
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusPaused is declared in the model but no operation transitions
	// into or out of it; it is reserved and still counts as non-finished.
	GameStatusPaused GameStatus = "paused"

	GameStatusFinished GameStatus = "finished"
)

// NonFinishedStatuses are the statuses that make a game "active": they hold the
// code-uniqueness constraint and the one-active-game-per-user constraint.
var NonFinishedStatuses = []GameStatus{GameStatusWaiting, GameStatusInProgress, GameStatusPaused}

// PlayerColor is a token color drawn from the fixed 8-color palette
type PlayerColor string

// PlayerColors is the palette in assignment order: a joining player receives
// the first color not already taken in the game.
var PlayerColors = []PlayerColor{"red", "blue", "green", "yellow", "purple", "orange", "pink", "cyan"}

// TransactionCategory tags a ledger entry and drives how balances move
type TransactionCategory string

const (
	CategoryTransfer    TransactionCategory = "transfer"
	CategoryBankPay     TransactionCategory = "bank_pay"
	CategoryBankReceive TransactionCategory = "bank_receive"
	CategoryGoSalary    TransactionCategory = "go_salary"
	CategoryTax         TransactionCategory = "tax"
	CategoryRent        TransactionCategory = "rent"
	CategoryPurchase    TransactionCategory = "purchase"
)

// CategoryBehavior describes how a transaction category moves money.
// Adding a category is a table change, not a new branch.
type CategoryBehavior struct {
	RequiresRecipient bool
	DebitsSender      bool
	CreditsSender     bool
	CreditsRecipient  bool
}

// CategoryTable maps every valid category to its balance behavior
var CategoryTable = map[TransactionCategory]CategoryBehavior{
	CategoryTransfer:    {RequiresRecipient: true, DebitsSender: true, CreditsRecipient: true},
	CategoryRent:        {RequiresRecipient: true, DebitsSender: true, CreditsRecipient: true},
	CategoryBankPay:     {DebitsSender: true},
	CategoryTax:         {DebitsSender: true},
	CategoryPurchase:    {DebitsSender: true},
	CategoryBankReceive: {CreditsSender: true},
	CategoryGoSalary:    {CreditsSender: true},
}

// GameSettings holds optional house rules. They are accepted as configuration
// but not enforced by any game logic.
type GameSettings struct {
	FreeParking    bool `json:"freeParking" gorm:"not null;default:false"`
	DoubleGoSalary bool `json:"doubleGoSalary" gorm:"not null;default:false"`
}

// Game bounds for room configuration
const (
	MinPlayers             = 2
	MaxPlayersLimit        = 8
	MaxGameNameLength      = 30
	DefaultStartingBalance = 1500
	DefaultGoSalary        = 200
	GameCodeLength         = 6
)

// Game represents one banking session
type Game struct {
	ID              int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Code            string       `json:"code" gorm:"index;type:varchar(6);not null"`
	Name            string       `json:"name" gorm:"type:varchar(30);not null"`
	HostID          int64        `json:"-" gorm:"index;not null"`
	Host            User         `json:"host" gorm:"foreignKey:HostID"`
	Players         []Player     `json:"players" gorm:"foreignKey:GameID"`
	MaxPlayers      int          `json:"maxPlayers" gorm:"not null;default:8"`
	StartingBalance int64        `json:"startingBalance" gorm:"not null;default:1500"`
	GoSalary        int64        `json:"goSalary" gorm:"not null;default:200"`
	Status          GameStatus   `json:"status" gorm:"index;type:varchar(16);not null;default:'waiting'"`
	Settings        GameSettings `json:"settings" gorm:"embedded;embeddedPrefix:setting_"`
	CreatedAt       time.Time    `json:"createdAt" gorm:"not null"`
	UpdatedAt       time.Time    `json:"updatedAt" gorm:"not null"`
	StartedAt       *time.Time   `json:"startedAt,omitempty"`
	FinishedAt      *time.Time   `json:"finishedAt,omitempty"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// PlayerFor returns the roster entry for a user, or nil if they are not in the game
func (g *Game) PlayerFor(userID int64) *Player {
	for i := range g.Players {
		if g.Players[i].UserID == userID {
			return &g.Players[i]
		}
	}
	return nil
}

// IsFull reports whether the roster has reached capacity
func (g *Game) IsFull() bool {
	return len(g.Players) >= g.MaxPlayers
}

// NextColor returns the first palette color not in use by the roster
func (g *Game) NextColor() PlayerColor {
	used := make(map[PlayerColor]bool, len(g.Players))
	for i := range g.Players {
		used[g.Players[i].Color] = true
	}
	for _, c := range PlayerColors {
		if !used[c] {
			return c
		}
	}
	return ""
}

// Player is a user's participation record inside a game. Player rows are owned
// by their Game and have no lifecycle outside it.
type Player struct {
	ID       int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID   int64       `json:"-" gorm:"uniqueIndex:idx_game_player;not null"`
	UserID   int64       `json:"-" gorm:"uniqueIndex:idx_game_player;not null"`
	User     User        `json:"user" gorm:"foreignKey:UserID"`
	Balance  int64       `json:"balance" gorm:"not null"`
	Color    PlayerColor `json:"color" gorm:"type:varchar(8)"`
	IsReady  bool        `json:"isReady" gorm:"not null;default:false"`
	IsHost   bool        `json:"isHost" gorm:"not null;default:false"`
	JoinedAt time.Time   `json:"joinedAt" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// GameTransaction is one append-only ledger entry. A nil FromUserID or
// ToUserID means "the bank". Entries are never mutated or deleted.
type GameTransaction struct {
	ID          int64               `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID      int64               `json:"-" gorm:"index;not null"`
	FromUserID  *int64              `json:"from"`
	ToUserID    *int64              `json:"to"`
	Amount      int64               `json:"amount" gorm:"not null"`
	Category    TransactionCategory `json:"type" gorm:"type:varchar(16);not null"`
	Description string              `json:"description" gorm:"type:varchar(256)"`
	CreatedAt   time.Time           `json:"timestamp" gorm:"not null"`
}

// TableName specifies the table name for GameTransaction
func (t GameTransaction) TableName() string {
	return "game_transactions"
}

// GameRepository defines the interface for game data
type GameRepository interface {
	GetByID(id int64) (*Game, error)
	GetByCode(code string) (*Game, error)
	GetWaitingByCode(code string) (*Game, error)
	CodeInUse(code string) (bool, error)
	GetActiveByUserID(userID int64, excludeGameID int64) (*Game, error)
	Create(game *Game) error
	Update(game *Game) error
	AddPlayer(player *Player) error
	UpdatePlayer(player *Player) error
	RemovePlayer(gameID, userID int64) error
	AppendTransaction(tx *GameTransaction) error
	GetTransactions(gameID int64) ([]*GameTransaction, error)
	Transaction(fn func(GameRepository) error) error
}

// CreateGameInput carries the configuration for a new game room
type CreateGameInput struct {
	Name            string
	MaxPlayers      int
	StartingBalance int64
	GoSalary        int64
	Settings        GameSettings
}

// GameUseCase defines the interface for game lifecycle business logic
type GameUseCase interface {
	Create(userID int64, input CreateGameInput) (*Game, error)
	Join(userID int64, code string) (*Game, error)
	Leave(userID, gameID int64) error
	ToggleReady(userID, gameID int64) (*Game, error)
	Start(userID, gameID int64) (*Game, error)
	End(userID, gameID int64) (*Game, error)
	GetByCode(code string) (*Game, []*GameTransaction, error)
	GetActiveForUser(userID int64) (*Game, error)
}

// TransferInput carries one balance-changing operation
type TransferInput struct {
	ToPlayerID  *int64
	Amount      int64
	Category    TransactionCategory
	Description string
}

// LedgerUseCase defines the interface for ledger business logic
type LedgerUseCase interface {
	Transfer(userID, gameID int64, input TransferInput) (*Game, *GameTransaction, error)
}
