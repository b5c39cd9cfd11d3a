package game

import (
	"strings"
	"time"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

// Create opens a new game room with the caller as host
func (uc *GameUseCase) Create(userID int64, input domain.CreateGameInput) (*domain.Game, error) {
	uc.logger.Info("Creating game",
		zap.Int64("user_id", userID),
		zap.String("name", input.Name))

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Game name is required", 400, nil)
	}
	if len(name) > domain.MaxGameNameLength {
		uc.logger.Warn("Game name too long",
			zap.Int64("user_id", userID),
			zap.Int("length", len(name)))
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Game name must be at most 30 characters", 400, nil)
	}

	if err := uc.requireActiveGameFree(userID, 0); err != nil {
		return nil, err
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = domain.MaxPlayersLimit
	}
	if maxPlayers < domain.MinPlayers {
		maxPlayers = domain.MinPlayers
	}
	if maxPlayers > domain.MaxPlayersLimit {
		maxPlayers = domain.MaxPlayersLimit
	}

	startingBalance := input.StartingBalance
	if startingBalance <= 0 {
		startingBalance = domain.DefaultStartingBalance
	}

	goSalary := input.GoSalary
	if goSalary <= 0 {
		goSalary = domain.DefaultGoSalary
	}

	code, err := uc.allocateCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	game := &domain.Game{
		Code:            code,
		Name:            name,
		HostID:          userID,
		MaxPlayers:      maxPlayers,
		StartingBalance: startingBalance,
		GoSalary:        goSalary,
		Status:          domain.GameStatusWaiting,
		Settings:        input.Settings,
		Players: []domain.Player{
			{
				UserID:   userID,
				Balance:  startingBalance,
				Color:    domain.PlayerColors[0],
				IsReady:  true,
				IsHost:   true,
				JoinedAt: now,
			},
		},
	}

	if err := uc.gameRepo.Create(game); err != nil {
		uc.logger.Error("Failed to create game",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create game", 500, err)
	}

	uc.logger.Info("Game created",
		zap.Int64("game_id", game.ID),
		zap.String("code", game.Code),
		zap.Int64("host_id", userID))

	return uc.loadGame(game.ID)
}
