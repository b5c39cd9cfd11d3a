package app

import (
	"github.com/monopay/monopay-api/internal/config"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
