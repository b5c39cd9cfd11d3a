package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Processor implements domain.OutboxProcessor. It applies post-game stat
// updates recorded as game.finished events.
type Processor struct {
	outboxRepo domain.OutboxRepository
	gameRepo   domain.GameRepository
	userRepo   domain.UserRepository
	logger     *logger.Logger
	maxRetries int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	outboxRepo domain.OutboxRepository,
	gameRepo domain.GameRepository,
	userRepo domain.UserRepository,
	logger *logger.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo: outboxRepo,
		gameRepo:   gameRepo,
		userRepo:   userRepo,
		logger:     logger,
		maxRetries: 5,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start begins polling for pending events at the given interval
func (p *Processor) Start(interval time.Duration) {
	p.mu.Lock()
	if p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = true
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.ctx.Done():
				return
			case <-ticker.C:
				if err := p.ProcessEvents(); err != nil {
					p.logger.Error("Outbox processing pass failed", zap.Error(err))
				}
			}
		}
	}()

	p.logger.Info("Outbox processor started", zap.Duration("interval", interval))
}

// Stop cancels the polling loop and waits for it to exit
func (p *Processor) Stop() {
	p.cancel()
	p.wg.Wait()

	p.mu.Lock()
	p.isRunning = false
	p.mu.Unlock()

	p.logger.Info("Outbox processor stopped")
}

// ProcessEvents processes all pending events
func (p *Processor) ProcessEvents() error {
	events, err := p.outboxRepo.GetPendingEvents(100)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	for _, event := range events {
		select {
		case <-p.ctx.Done():
			return fmt.Errorf("processor cancelled")
		default:
		}

		if err := p.processEvent(event); err != nil {
			p.logger.Error("Failed to process event",
				zap.Int64("eventID", event.ID),
				zap.String("eventType", event.Type),
				zap.Error(err))

			if event.RetryCount < p.maxRetries {
				if retryErr := p.outboxRepo.IncrementRetryCount(event.ID); retryErr != nil {
					p.logger.Error("Failed to increment retry count", zap.Error(retryErr))
				}
			} else {
				if failErr := p.outboxRepo.MarkAsFailed(event.ID, err.Error()); failErr != nil {
					p.logger.Error("Failed to mark event as failed", zap.Error(failErr))
				}
			}
			continue
		}

		if err := p.outboxRepo.MarkAsProcessed(event.ID); err != nil {
			p.logger.Error("Failed to mark event as processed",
				zap.Int64("eventID", event.ID),
				zap.Error(err))
		}
	}

	return nil
}

// processEvent dispatches a single outbox event
func (p *Processor) processEvent(event *domain.OutboxEvent) error {
	p.logger.Info("Processing outbox event",
		zap.Int64("eventID", event.ID),
		zap.String("eventType", event.Type))

	if event.Type == domain.EventTypeGameFinished {
		return p.handleGameFinished(event)
	}

	return fmt.Errorf("unknown event type: %s", event.Type)
}

// handleGameFinished applies stat and history updates for every roster member
// of a finished game. The richest player is the winner; ties go to roster order.
func (p *Processor) handleGameFinished(event *domain.OutboxEvent) error {
	var gameID int64
	switch v := event.Data["game_id"].(type) {
	case float64:
		gameID = int64(v)
	case int64:
		gameID = v
	default:
		return fmt.Errorf("invalid game_id in event data")
	}

	game, err := p.gameRepo.GetByID(gameID)
	if err != nil {
		return fmt.Errorf("failed to load game %d: %w", gameID, err)
	}
	if game == nil {
		p.logger.Warn("Game for finished event no longer exists", zap.Int64("gameID", gameID))
		return nil
	}
	if game.Status != domain.GameStatusFinished {
		return fmt.Errorf("game %d is not finished", gameID)
	}
	if len(game.Players) == 0 {
		return nil
	}

	winnerID := game.Players[0].UserID
	bestBalance := game.Players[0].Balance
	for i := range game.Players {
		if game.Players[i].Balance > bestBalance {
			bestBalance = game.Players[i].Balance
			winnerID = game.Players[i].UserID
		}
	}

	finishedAt := time.Now()
	if game.FinishedAt != nil {
		finishedAt = *game.FinishedAt
	}

	return p.userRepo.Transaction(func(repo domain.UserRepository) error {
		for i := range game.Players {
			player := &game.Players[i]

			user, err := repo.GetByID(player.UserID)
			if err != nil {
				return fmt.Errorf("failed to load user %d: %w", player.UserID, err)
			}
			if user == nil {
				continue
			}

			earnings := player.Balance - game.StartingBalance
			result := domain.GameResultLost

			user.Stats.GamesPlayed++
			user.Stats.TotalEarnings += earnings
			if player.UserID == winnerID {
				result = domain.GameResultWon
				user.Stats.GamesWon++
				user.Stats.CurrentStreak++
				if user.Stats.CurrentStreak > user.Stats.LongestStreak {
					user.Stats.LongestStreak = user.Stats.CurrentStreak
				}
			} else {
				user.Stats.CurrentStreak = 0
			}

			if err := repo.Update(user); err != nil {
				return fmt.Errorf("failed to update stats for user %d: %w", user.ID, err)
			}

			entry := &domain.GameHistoryEntry{
				UserID:   user.ID,
				GameID:   game.ID,
				GameCode: game.Code,
				Date:     finishedAt,
				Players:  len(game.Players),
				Result:   result,
				Earnings: earnings,
			}
			if err := repo.AppendGameHistory(entry); err != nil {
				return fmt.Errorf("failed to append history for user %d: %w", user.ID, err)
			}
		}
		return nil
	})
}
