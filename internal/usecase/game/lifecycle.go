package game

import (
	"time"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

// ToggleReady flips the caller's ready flag. The flag only gates Start, so
// toggling is allowed regardless of status. The host is always ready, so
// toggling as host is a no-op.
func (uc *GameUseCase) ToggleReady(userID, gameID int64) (*domain.Game, error) {
	uc.logger.Info("Toggling ready state",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID))

	if err := uc.acquireLock(gameID); err != nil {
		return nil, err
	}
	defer uc.lockMgr.Unlock(gameID)

	game, err := uc.loadGame(gameID)
	if err != nil {
		return nil, err
	}

	player := game.PlayerFor(userID)
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodeNotInGame, "You are not in this game", 400, nil)
	}

	if player.IsHost {
		return game, nil
	}

	player.IsReady = !player.IsReady
	if err := uc.gameRepo.UpdatePlayer(player); err != nil {
		uc.logger.Error("Failed to update player ready state",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", gameID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update ready state", 500, err)
	}

	uc.logger.Info("Ready state toggled",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID),
		zap.Bool("is_ready", player.IsReady))

	return uc.loadGame(gameID)
}

// Start moves a waiting game to in_progress and resets every balance to the
// starting balance. Only the host may start, at least two players must be
// present and everyone must be ready.
func (uc *GameUseCase) Start(userID, gameID int64) (*domain.Game, error) {
	uc.logger.Info("Starting game",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID))

	if err := uc.acquireLock(gameID); err != nil {
		return nil, err
	}
	defer uc.lockMgr.Unlock(gameID)

	game, err := uc.loadGame(gameID)
	if err != nil {
		return nil, err
	}

	if game.HostID != userID {
		uc.logger.Warn("Start rejected - not the host",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", gameID),
			zap.Int64("host_id", game.HostID))
		return nil, domain.NewForbiddenError("Only the host can start the game")
	}

	if game.Status != domain.GameStatusWaiting {
		return nil, domain.NewAppError(domain.ErrCodeAlreadyStarted, "Game has already started", 400, nil)
	}

	if len(game.Players) < domain.MinPlayers {
		uc.logger.Warn("Start rejected - not enough players",
			zap.Int64("game_id", gameID),
			zap.Int("players", len(game.Players)))
		return nil, domain.NewAppError(domain.ErrCodeNeedMorePlayers, "At least 2 players are required to start", 400, nil)
	}

	for i := range game.Players {
		if !game.Players[i].IsReady {
			uc.logger.Warn("Start rejected - not all players ready",
				zap.Int64("game_id", gameID),
				zap.Int64("unready_user_id", game.Players[i].UserID))
			return nil, domain.NewAppError(domain.ErrCodeNotAllReady, "All players must be ready to start", 400, nil)
		}
	}

	err = uc.gameRepo.Transaction(func(repo domain.GameRepository) error {
		now := time.Now()
		game.Status = domain.GameStatusInProgress
		game.StartedAt = &now
		if err := repo.Update(game); err != nil {
			return err
		}

		for i := range game.Players {
			game.Players[i].Balance = game.StartingBalance
			if err := repo.UpdatePlayer(&game.Players[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("Failed to start game",
			zap.Int64("game_id", gameID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to start game", 500, err)
	}

	uc.logger.Info("Game started",
		zap.Int64("game_id", gameID),
		zap.String("code", game.Code),
		zap.Int("players", len(game.Players)))

	return uc.loadGame(gameID)
}

// End finishes a game regardless of its current status. Only the host may end
// a game. Stat updates for the roster are recorded as an outbox event and
// applied asynchronously; a failure to record the event does not undo the
// finish.
func (uc *GameUseCase) End(userID, gameID int64) (*domain.Game, error) {
	uc.logger.Info("Ending game",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID))

	if err := uc.acquireLock(gameID); err != nil {
		return nil, err
	}
	defer uc.lockMgr.Unlock(gameID)

	game, err := uc.loadGame(gameID)
	if err != nil {
		return nil, err
	}

	if game.HostID != userID {
		uc.logger.Warn("End rejected - not the host",
			zap.Int64("user_id", userID),
			zap.Int64("game_id", gameID),
			zap.Int64("host_id", game.HostID))
		return nil, domain.NewForbiddenError("Only the host can end the game")
	}

	if game.Status == domain.GameStatusFinished {
		return game, nil
	}

	wasInProgress := game.Status == domain.GameStatusInProgress

	now := time.Now()
	game.Status = domain.GameStatusFinished
	game.FinishedAt = &now

	if err := uc.gameRepo.Update(game); err != nil {
		uc.logger.Error("Failed to end game",
			zap.Int64("game_id", gameID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to end game", 500, err)
	}

	// Games ended before they started carry no results worth recording.
	if wasInProgress {
		event := &domain.OutboxEvent{
			Type: domain.EventTypeGameFinished,
			Data: map[string]interface{}{"game_id": gameID},
		}
		if err := uc.outboxRepo.Create(event); err != nil {
			uc.logger.Error("Failed to record game finished event",
				zap.Int64("game_id", gameID),
				zap.Error(err))
		}
	}

	uc.logger.Info("Game ended",
		zap.Int64("game_id", gameID),
		zap.String("code", game.Code))

	return uc.loadGame(gameID)
}
