package game

import (
	"context"
	"time"

	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/lock"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const lockTimeout = 10 * time.Second

// GameUseCase implements domain.GameUseCase
type GameUseCase struct {
	gameRepo   domain.GameRepository
	outboxRepo domain.OutboxRepository
	lockMgr    *lock.GameLockManager
	logger     *logger.Logger
}

// NewGameUseCase creates a new game use case
func NewGameUseCase(
	gameRepo domain.GameRepository,
	outboxRepo domain.OutboxRepository,
	lockMgr *lock.GameLockManager,
	logger *logger.Logger,
) domain.GameUseCase {
	return &GameUseCase{
		gameRepo:   gameRepo,
		outboxRepo: outboxRepo,
		lockMgr:    lockMgr,
		logger:     logger,
	}
}

// acquireLock serializes roster and balance mutations for one game
func (uc *GameUseCase) acquireLock(gameID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := uc.lockMgr.Lock(ctx, gameID); err != nil {
		uc.logger.Error("Failed to acquire game lock",
			zap.Int64("game_id", gameID),
			zap.Error(err))
		return domain.NewInternalError("Game is busy, try again", err)
	}
	return nil
}

// loadGame loads a game with its roster or returns a not-found error
func (uc *GameUseCase) loadGame(gameID int64) (*domain.Game, error) {
	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		uc.logger.Error("Failed to get game from database",
			zap.Int64("game_id", gameID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game", 500, err)
	}
	if game == nil {
		uc.logger.Warn("Game not found",
			zap.Int64("game_id", gameID))
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	return game, nil
}

// requireActiveGameFree rejects the operation when the user already belongs to
// another non-finished game. The existing game's code is returned in the error
// details so the client can offer to rejoin it.
func (uc *GameUseCase) requireActiveGameFree(userID, excludeGameID int64) error {
	active, err := uc.gameRepo.GetActiveByUserID(userID, excludeGameID)
	if err != nil {
		uc.logger.Error("Failed to check active game",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check active game", 500, err)
	}
	if active != nil {
		uc.logger.Warn("User already in an active game",
			zap.Int64("user_id", userID),
			zap.Int64("active_game_id", active.ID),
			zap.String("active_game_code", active.Code))
		appErr := domain.NewAppError(domain.ErrCodeAlreadyInGame, "You are already in an active game", 400, nil)
		appErr.Details = active.Code
		return appErr
	}
	return nil
}
