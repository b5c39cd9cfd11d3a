package app

import (
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"github.com/monopay/monopay-api/internal/infrastructure/outbox"
)

func (a *application) InitOutboxProcessor(
	outboxRepo domain.OutboxRepository,
	gameRepo domain.GameRepository,
	userRepo domain.UserRepository,
	logger *logger.Logger,
) domain.OutboxProcessor {
	return outbox.NewProcessor(outboxRepo, gameRepo, userRepo, logger)
}
