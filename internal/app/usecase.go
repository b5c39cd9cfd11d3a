package app

import (
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/auth"
	"github.com/monopay/monopay-api/internal/infrastructure/lock"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"github.com/monopay/monopay-api/internal/usecase/friend"
	"github.com/monopay/monopay-api/internal/usecase/game"
	"github.com/monopay/monopay-api/internal/usecase/ledger"
	"github.com/monopay/monopay-api/internal/usecase/user"
)

func (a *application) InitUserUseCase(
	ur domain.UserRepository,
	jwt auth.JWTService,
	ms domain.MailerService,
	log *logger.Logger,
) domain.UserUseCase {
	return user.NewUserUseCase(ur, jwt, ms, log)
}

func (a *application) InitFriendUseCase(ur domain.UserRepository, log *logger.Logger) domain.FriendUseCase {
	return friend.NewFriendUseCase(ur, log)
}

func (a *application) InitGameUseCase(
	gr domain.GameRepository,
	or domain.OutboxRepository,
	lm *lock.GameLockManager,
	log *logger.Logger,
) domain.GameUseCase {
	return game.NewGameUseCase(gr, or, lm, log)
}

func (a *application) InitLedgerUseCase(
	gr domain.GameRepository,
	lm *lock.GameLockManager,
	log *logger.Logger,
) domain.LedgerUseCase {
	return ledger.NewLedgerUseCase(gr, lm, log)
}
