package game

import (
	"strings"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

// GetByCode retrieves a game and its full ledger by code
func (uc *GameUseCase) GetByCode(code string) (*domain.Game, []*domain.GameTransaction, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	uc.logger.Debug("Retrieving game by code",
		zap.String("code", code))

	game, err := uc.gameRepo.GetByCode(code)
	if err != nil {
		uc.logger.Error("Failed to get game by code",
			zap.String("code", code),
			zap.Error(err))
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game", 500, err)
	}
	if game == nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}

	transactions, err := uc.gameRepo.GetTransactions(game.ID)
	if err != nil {
		uc.logger.Error("Failed to get game transactions",
			zap.Int64("game_id", game.ID),
			zap.Error(err))
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get transactions", 500, err)
	}

	return game, transactions, nil
}

// GetActiveForUser retrieves the non-finished game the user belongs to
func (uc *GameUseCase) GetActiveForUser(userID int64) (*domain.Game, error) {
	uc.logger.Debug("Retrieving active game",
		zap.Int64("user_id", userID))

	game, err := uc.gameRepo.GetActiveByUserID(userID, 0)
	if err != nil {
		uc.logger.Error("Failed to get active game",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get active game", 500, err)
	}

	// Having no active game is a normal answer, not an error.
	return game, nil
}
