package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/monopay/monopay-api/internal/http/handlers"
	"github.com/monopay/monopay-api/internal/http/middleware"
	"github.com/monopay/monopay-api/internal/infrastructure/auth"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router        *gin.Engine
	jwtService    auth.JWTService
	authHandler   *handlers.AuthHandler
	friendHandler *handlers.FriendHandler
	gameHandler   *handlers.GameHandler
	errorHandler  *middleware.ErrorHandler
	port          string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	friendHandler *handlers.FriendHandler,
	gameHandler *handlers.GameHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	router.Use(cors.New(corsConfig))

	server := &Server{
		router:        router,
		jwtService:    jwtService,
		authHandler:   authHandler,
		friendHandler: friendHandler,
		gameHandler:   gameHandler,
		errorHandler:  errorHandler,
		port:          port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", s.authHandler.SignUp)
			authRoutes.POST("/signin", s.authHandler.SignIn)
			authRoutes.POST("/oauth/google", s.authHandler.GoogleAuth)
			authRoutes.POST("/oauth/apple", s.authHandler.AppleAuth)
			authRoutes.GET("/check-username", s.authHandler.CheckUsername)
			authRoutes.POST("/forgot-password", s.authHandler.ForgotPassword)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			account := protected.Group("/auth")
			{
				account.GET("/me", s.authHandler.Me)
				account.POST("/complete-profile", s.authHandler.CompleteProfile)
				account.PUT("/profile", s.authHandler.UpdateProfile)
				account.PUT("/password", s.authHandler.ChangePassword)
				account.PUT("/settings", s.authHandler.UpdateSettings)
				account.GET("/stats", s.authHandler.Stats)
			}

			friendRoutes := protected.Group("/friends")
			{
				friendRoutes.GET("", s.friendHandler.List)
				friendRoutes.GET("/search", s.friendHandler.Search)
				friendRoutes.POST("/request", s.friendHandler.SendRequest)
				friendRoutes.POST("/accept", s.friendHandler.AcceptRequest)
				friendRoutes.POST("/reject", s.friendHandler.RejectRequest)
				friendRoutes.POST("/cancel", s.friendHandler.CancelRequest)
				friendRoutes.DELETE("/:id", s.friendHandler.RemoveFriend)
			}

			gameRoutes := protected.Group("/games")
			{
				gameRoutes.POST("", s.gameHandler.Create)
				gameRoutes.POST("/join", s.gameHandler.Join)
				gameRoutes.GET("/my-active", s.gameHandler.MyActive)
				gameRoutes.GET("/code/:code", s.gameHandler.GetByCode)
				gameRoutes.POST("/:id/leave", s.gameHandler.Leave)
				gameRoutes.POST("/:id/ready", s.gameHandler.ToggleReady)
				gameRoutes.POST("/:id/start", s.gameHandler.Start)
				gameRoutes.POST("/:id/end", s.gameHandler.End)
				gameRoutes.POST("/:id/transfer", s.gameHandler.Transfer)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
