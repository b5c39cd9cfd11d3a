package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// GameLockManager serializes balance mutations per game within this process.
// Concurrent transfers on the same game would otherwise race read-modify-write
// on the roster; the cross-process race remains and is documented as accepted.
type GameLockManager struct {
	locks sync.Map // map[int64]*sync.Mutex
}

// NewGameLockManager creates a new lock manager
func NewGameLockManager() *GameLockManager {
	return &GameLockManager{}
}

// Lock acquires the lock for the given gameID, honoring context cancellation
func (m *GameLockManager) Lock(ctx context.Context, gameID int64) error {
	mu := m.getOrCreateMutex(gameID)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		return nil
	case <-ctx.Done():
		go func() {
			<-lockChan
			mu.Unlock()
		}()
		return fmt.Errorf("failed to acquire lock for game %d: %w", gameID, ctx.Err())
	case <-time.After(5 * time.Second):
		go func() {
			<-lockChan
			mu.Unlock()
		}()
		return fmt.Errorf("failed to acquire lock for game %d: timeout", gameID)
	}
}

// Unlock releases the lock for the given gameID
func (m *GameLockManager) Unlock(gameID int64) {
	muInterface, ok := m.locks.Load(gameID)
	if !ok {
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

// TryLock attempts to acquire the lock without blocking
func (m *GameLockManager) TryLock(gameID int64) bool {
	return m.getOrCreateMutex(gameID).TryLock()
}

func (m *GameLockManager) getOrCreateMutex(gameID int64) *sync.Mutex {
	mu, ok := m.locks.Load(gameID)
	if ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(gameID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
