package game

import (
	"strings"
	"time"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

// Join adds the caller to a waiting game by its code. Joining a game the
// caller is already in returns the game unchanged.
func (uc *GameUseCase) Join(userID int64, code string) (*domain.Game, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	uc.logger.Info("Joining game",
		zap.Int64("user_id", userID),
		zap.String("code", code))

	if len(code) != domain.GameCodeLength {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Game code must be 6 characters", 400, nil)
	}

	game, err := uc.gameRepo.GetWaitingByCode(code)
	if err != nil {
		uc.logger.Error("Failed to get game by code",
			zap.String("code", code),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game", 500, err)
	}
	if game == nil {
		uc.logger.Warn("Joinable game not found",
			zap.Int64("user_id", userID),
			zap.String("code", code))
		return nil, domain.NewAppError(domain.ErrCodeGameNotFoundOrStarted, "Game not found or already started", 404, nil)
	}

	if err := uc.acquireLock(game.ID); err != nil {
		return nil, err
	}
	defer uc.lockMgr.Unlock(game.ID)

	// Reload under the lock so the roster checks see the latest state.
	game, err = uc.loadGame(game.ID)
	if err != nil {
		return nil, err
	}
	if game.Status != domain.GameStatusWaiting {
		return nil, domain.NewAppError(domain.ErrCodeGameNotFoundOrStarted, "Game not found or already started", 404, nil)
	}

	if game.PlayerFor(userID) != nil {
		uc.logger.Info("User already in game, join is a no-op",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", game.ID))
		return game, nil
	}

	if err := uc.requireActiveGameFree(userID, game.ID); err != nil {
		return nil, err
	}

	if game.IsFull() {
		uc.logger.Warn("Join rejected - game full",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", game.ID),
			zap.Int("max_players", game.MaxPlayers))
		return nil, domain.NewAppError(domain.ErrCodeGameFull, "Game is full", 400, nil)
	}

	player := &domain.Player{
		GameID:   game.ID,
		UserID:   userID,
		Balance:  game.StartingBalance,
		Color:    game.NextColor(),
		IsReady:  false,
		IsHost:   false,
		JoinedAt: time.Now(),
	}

	if err := uc.gameRepo.AddPlayer(player); err != nil {
		uc.logger.Error("Failed to add player",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", game.ID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to join game", 500, err)
	}

	uc.logger.Info("User joined game",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", game.ID),
		zap.String("code", game.Code))

	return uc.loadGame(game.ID)
}

// Leave removes the caller from a game. When the host leaves, the earliest
// joined remaining player is promoted; when the last player leaves, the game
// is finished.
func (uc *GameUseCase) Leave(userID, gameID int64) error {
	uc.logger.Info("Leaving game",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID))

	if err := uc.acquireLock(gameID); err != nil {
		return err
	}
	defer uc.lockMgr.Unlock(gameID)

	game, err := uc.loadGame(gameID)
	if err != nil {
		return err
	}

	player := game.PlayerFor(userID)
	if player == nil {
		uc.logger.Warn("Leave rejected - user not in game",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", gameID))
		return domain.NewAppError(domain.ErrCodeNotInGame, "You are not in this game", 400, nil)
	}

	if game.Status == domain.GameStatusFinished {
		return domain.NewAppError(domain.ErrCodeNotInProgress, "Game is already finished", 400, nil)
	}

	err = uc.gameRepo.Transaction(func(repo domain.GameRepository) error {
		if err := repo.RemovePlayer(gameID, userID); err != nil {
			return err
		}

		remaining := make([]domain.Player, 0, len(game.Players))
		for i := range game.Players {
			if game.Players[i].UserID != userID {
				remaining = append(remaining, game.Players[i])
			}
		}

		if len(remaining) == 0 {
			now := time.Now()
			game.Status = domain.GameStatusFinished
			game.FinishedAt = &now
			return repo.Update(game)
		}

		if player.IsHost {
			// Roster is ordered by join time, so the first remaining
			// player is the longest-standing member.
			promoted := remaining[0]
			promoted.IsHost = true
			promoted.IsReady = true
			if err := repo.UpdatePlayer(&promoted); err != nil {
				return err
			}
			game.HostID = promoted.UserID
			return repo.Update(game)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("Failed to leave game",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", gameID),
			zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to leave game", 500, err)
	}

	uc.logger.Info("User left game",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID))

	return nil
}
