package ledger

import (
	"context"
	"time"

	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/lock"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const lockTimeout = 10 * time.Second

// LedgerUseCase implements domain.LedgerUseCase
type LedgerUseCase struct {
	gameRepo domain.GameRepository
	lockMgr  *lock.GameLockManager
	logger   *logger.Logger
}

// NewLedgerUseCase creates a new ledger use case
func NewLedgerUseCase(
	gameRepo domain.GameRepository,
	lockMgr *lock.GameLockManager,
	logger *logger.Logger,
) domain.LedgerUseCase {
	return &LedgerUseCase{
		gameRepo: gameRepo,
		lockMgr:  lockMgr,
		logger:   logger,
	}
}

// Transfer applies one balance-changing operation and appends it to the
// ledger. The category decides whether money moves between two players or
// between a player and the bank. Balance updates and the ledger entry commit
// atomically.
func (uc *LedgerUseCase) Transfer(userID, gameID int64, input domain.TransferInput) (*domain.Game, *domain.GameTransaction, error) {
	uc.logger.Info("Processing transfer",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID),
		zap.Int64("amount", input.Amount),
		zap.String("category", string(input.Category)))

	if input.Amount <= 0 {
		uc.logger.Warn("Transfer rejected - non-positive amount",
			zap.Int64("user_id", userID),
			zap.Int64("amount", input.Amount))
		return nil, nil, domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be positive", 400, nil)
	}

	behavior, ok := domain.CategoryTable[input.Category]
	if !ok {
		uc.logger.Warn("Transfer rejected - unknown category",
			zap.Int64("user_id", userID),
			zap.String("category", string(input.Category)))
		return nil, nil, domain.NewAppError(domain.ErrCodeInvalidCategory, "Unknown transaction category", 400, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	if err := uc.lockMgr.Lock(ctx, gameID); err != nil {
		uc.logger.Error("Failed to acquire game lock",
			zap.Int64("game_id", gameID),
			zap.Error(err))
		return nil, nil, domain.NewInternalError("Game is busy, try again", err)
	}
	defer uc.lockMgr.Unlock(gameID)

	var entry *domain.GameTransaction

	err := uc.gameRepo.Transaction(func(repo domain.GameRepository) error {
		game, err := repo.GetByID(gameID)
		if err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game", 500, err)
		}
		if game == nil {
			return domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
		}

		if game.Status != domain.GameStatusInProgress {
			uc.logger.Warn("Transfer rejected - game not in progress",
				zap.Int64("game_id", gameID),
				zap.String("status", string(game.Status)))
			return domain.NewAppError(domain.ErrCodeNotInProgress, "Game is not in progress", 400, nil)
		}

		sender := game.PlayerFor(userID)
		if sender == nil {
			uc.logger.Warn("Transfer rejected - sender not in game",
				zap.Int64("user_id", userID),
				zap.Int64("game_id", gameID))
			return domain.NewAppError(domain.ErrCodeNotInGame, "You are not in this game", 400, nil)
		}

		var recipient *domain.Player
		if behavior.RequiresRecipient {
			if input.ToPlayerID == nil {
				return domain.NewAppError(domain.ErrCodeInvalidRecipient, "Recipient is required for this category", 400, nil)
			}
			// A player may pick themselves; the debit and credit cancel out
			// and the ledger still records the entry.
			recipient = game.PlayerFor(*input.ToPlayerID)
			if recipient == nil {
				uc.logger.Warn("Transfer rejected - recipient not in game",
					zap.Int64("game_id", gameID),
					zap.Int64("recipient_user_id", *input.ToPlayerID))
				return domain.NewAppError(domain.ErrCodeRecipientNotFound, "Recipient is not in this game", 400, nil)
			}
		}

		if behavior.DebitsSender && sender.Balance < input.Amount {
			uc.logger.Warn("Transfer rejected - insufficient balance",
				zap.Int64("user_id", userID),
				zap.Int64("game_id", gameID),
				zap.Int64("balance", sender.Balance),
				zap.Int64("amount", input.Amount))
			return domain.NewAppError(domain.ErrCodeInsufficientBalance, "Insufficient balance", 400, nil)
		}

		if behavior.DebitsSender {
			sender.Balance -= input.Amount
		}
		if behavior.CreditsSender {
			sender.Balance += input.Amount
		}
		if err := repo.UpdatePlayer(sender); err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update balance", 500, err)
		}

		if recipient != nil && behavior.CreditsRecipient {
			recipient.Balance += input.Amount
			if err := repo.UpdatePlayer(recipient); err != nil {
				return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update balance", 500, err)
			}
		}

		description := input.Description
		if description == "" {
			description = defaultDescription(behavior, recipient)
		}

		entry = &domain.GameTransaction{
			GameID:      gameID,
			FromUserID:  &userID,
			Amount:      input.Amount,
			Category:    input.Category,
			Description: description,
		}
		if recipient != nil {
			toID := recipient.UserID
			entry.ToUserID = &toID
		}

		if err := repo.AppendTransaction(entry); err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to record transaction", 500, err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game", 500, err)
	}

	uc.logger.Info("Transfer completed",
		zap.Int64("game_id", gameID),
		zap.Int64("transaction_id", entry.ID),
		zap.String("category", string(input.Category)),
		zap.Int64("amount", input.Amount))

	return game, entry, nil
}

// defaultDescription fills the ledger entry when the caller sends none
func defaultDescription(behavior domain.CategoryBehavior, recipient *domain.Player) string {
	if recipient != nil {
		name := recipient.User.DisplayName
		if name == "" {
			name = recipient.User.Username
		}
		return "Transfer to " + name
	}
	if behavior.CreditsSender {
		return "Received from bank"
	}
	return "Paid to bank"
}
