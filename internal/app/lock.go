package app

import "github.com/monopay/monopay-api/internal/infrastructure/lock"

func (a *application) InitGameLockManager() *lock.GameLockManager {
	return lock.NewGameLockManager()
}
