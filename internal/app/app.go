package app

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/monopay/monopay-api/internal/config"
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/http"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting MonoPay API...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitMailerService,
			a.InitGameLockManager,
			a.InitRepository,
			a.InitUserUseCase,
			a.InitFriendUseCase,
			a.InitGameUseCase,
			a.InitLedgerUseCase,
			a.InitOutboxProcessor,
			a.InitAuthHandler,
			a.InitFriendHandler,
			a.InitGameHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.registerHooks),
	)

	app.Run()
}

// registerHooks starts the HTTP server and outbox processor with the fx lifecycle
func (a *application) registerHooks(
	lc fx.Lifecycle,
	server *http.Server,
	processor domain.OutboxProcessor,
	log *logger.Logger,
) {
	pollInterval := a.config.Outbox.PollInterval
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			processor.Start(pollInterval)

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()

			log.Info("MonoPay API started",
				zap.String("port", a.config.Server.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			processor.Stop()
			return log.Sync()
		},
	})
}
