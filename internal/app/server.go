package app

import (
	"github.com/monopay/monopay-api/internal/http"
	"github.com/monopay/monopay-api/internal/http/handlers"
	"github.com/monopay/monopay-api/internal/http/middleware"
	"github.com/monopay/monopay-api/internal/infrastructure/auth"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	friendHandler *handlers.FriendHandler,
	gameHandler *handlers.GameHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, authHandler, friendHandler, gameHandler, errorHandler, log, port)
}
