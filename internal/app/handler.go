package app

import (
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/http/handlers"
)

func (a *application) InitAuthHandler(uc domain.UserUseCase) *handlers.AuthHandler {
	return handlers.NewAuthHandler(uc)
}

func (a *application) InitFriendHandler(fc domain.FriendUseCase) *handlers.FriendHandler {
	return handlers.NewFriendHandler(fc)
}

func (a *application) InitGameHandler(gc domain.GameUseCase, lc domain.LedgerUseCase) *handlers.GameHandler {
	return handlers.NewGameHandler(gc, lc)
}
