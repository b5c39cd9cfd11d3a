package repository

import (
	"errors"
	"time"

	"github.com/monopay/monopay-api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) withRoster() *gorm.DB {
	return r.db.
		Preload("Host").
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("players.joined_at ASC, players.id ASC")
		}).
		Preload("Players.User")
}

// GetByID retrieves a game with its roster by ID
func (r *GameRepository) GetByID(id int64) (*domain.Game, error) {
	var game domain.Game
	result := r.withRoster().Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetByCode retrieves the most recent game with the given code.
// Finished games keep their code, so more than one row can match.
func (r *GameRepository) GetByCode(code string) (*domain.Game, error) {
	var game domain.Game
	result := r.withRoster().Where("code = ?", code).Order("created_at DESC").First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetWaitingByCode retrieves a joinable game by code
func (r *GameRepository) GetWaitingByCode(code string) (*domain.Game, error) {
	var game domain.Game
	result := r.withRoster().
		Where("code = ? AND status = ?", code, domain.GameStatusWaiting).
		First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// CodeInUse reports whether a code is held by any non-finished game
func (r *GameRepository) CodeInUse(code string) (bool, error) {
	var count int64
	result := r.db.Model(&domain.Game{}).
		Where("code = ? AND status IN ?", code, domain.NonFinishedStatuses).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// GetActiveByUserID finds the non-finished game a user belongs to, if any.
// excludeGameID may be zero to consider all games.
func (r *GameRepository) GetActiveByUserID(userID int64, excludeGameID int64) (*domain.Game, error) {
	query := r.withRoster().
		Joins("JOIN players p ON p.game_id = games.id").
		Where("p.user_id = ? AND games.status IN ?", userID, domain.NonFinishedStatuses)
	if excludeGameID != 0 {
		query = query.Where("games.id <> ?", excludeGameID)
	}

	var game domain.Game
	result := query.First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// Create creates a new game with its initial roster
func (r *GameRepository) Create(game *domain.Game) error {
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	return r.db.Create(game).Error
}

// Update updates game fields without touching the roster
func (r *GameRepository) Update(game *domain.Game) error {
	game.UpdatedAt = time.Now()
	return r.db.Omit(clause.Associations).Save(game).Error
}

// AddPlayer appends a player to a game's roster
func (r *GameRepository) AddPlayer(player *domain.Player) error {
	return r.db.Omit(clause.Associations).Create(player).Error
}

// UpdatePlayer updates a single roster entry
func (r *GameRepository) UpdatePlayer(player *domain.Player) error {
	return r.db.Omit(clause.Associations).Save(player).Error
}

// RemovePlayer removes a user from a game's roster
func (r *GameRepository) RemovePlayer(gameID, userID int64) error {
	return r.db.
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Delete(&domain.Player{}).Error
}

// AppendTransaction appends a ledger entry. Entries are never updated or deleted.
func (r *GameRepository) AppendTransaction(tx *domain.GameTransaction) error {
	tx.CreatedAt = time.Now()
	return r.db.Create(tx).Error
}

// GetTransactions retrieves the full ledger for a game in insertion order
func (r *GameRepository) GetTransactions(gameID int64) ([]*domain.GameTransaction, error) {
	var transactions []*domain.GameTransaction
	result := r.db.
		Where("game_id = ?", gameID).
		Order("created_at ASC, id ASC").
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactions, nil
}

// Transaction runs fn inside a database transaction
func (r *GameRepository) Transaction(fn func(domain.GameRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GameRepository{db: tx})
	})
}
