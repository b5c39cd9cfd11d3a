package app

import (
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.UserRepository, domain.GameRepository, domain.OutboxRepository) {
	return repository.NewUserRepository(db),
		repository.NewGameRepository(db),
		repository.NewOutboxRepository(db)
}
