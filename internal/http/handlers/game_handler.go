package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monopay/monopay-api/internal/domain"
)

// GameHandler handles HTTP requests for game and ledger operations
type GameHandler struct {
	gameUseCase   domain.GameUseCase
	ledgerUseCase domain.LedgerUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase, ledgerUseCase domain.LedgerUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase:   gameUseCase,
		ledgerUseCase: ledgerUseCase,
	}
}

// CreateGameRequest represents the game creation request body
type CreateGameRequest struct {
	Name            string              `json:"name" binding:"required" example:"Friday Night"`
	MaxPlayers      int                 `json:"maxPlayers"`
	StartingBalance int64               `json:"startingBalance"`
	GoSalary        int64               `json:"goSalary"`
	Settings        domain.GameSettings `json:"settings"`
}

// JoinGameRequest represents the join request body
type JoinGameRequest struct {
	Code string `json:"code" binding:"required" example:"KX7P2M"`
}

// TransferRequest represents one balance-changing operation
type TransferRequest struct {
	To          *int64 `json:"to"`
	Amount      int64  `json:"amount" binding:"required"`
	Category    string `json:"type" binding:"required" example:"transfer"`
	Description string `json:"description"`
}

// GameResponse is a game plus its ledger
type GameResponse struct {
	Game         *domain.Game              `json:"game"`
	Transactions []*domain.GameTransaction `json:"transactions,omitempty"`
}

// TransferResponse is the outcome of a transfer
type TransferResponse struct {
	Game        *domain.Game            `json:"game"`
	Transaction *domain.GameTransaction `json:"transaction"`
}

// Create opens a new game room
// @Summary Create game
// @Description Create a game room with the caller as host
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGameRequest true "Game configuration"
// @Success 201 {object} domain.Game
// @Failure 400 {object} ErrorResponse
// @Router /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	game, err := h.gameUseCase.Create(userID, domain.CreateGameInput{
		Name:            req.Name,
		MaxPlayers:      req.MaxPlayers,
		StartingBalance: req.StartingBalance,
		GoSalary:        req.GoSalary,
		Settings:        req.Settings,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// Join adds the caller to a waiting game
// @Summary Join game
// @Description Join a waiting game by its 6-character code
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JoinGameRequest true "Game code"
// @Success 200 {object} domain.Game
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/join [post]
func (h *GameHandler) Join(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	game, err := h.gameUseCase.Join(userID, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// Leave removes the caller from a game
// @Summary Leave game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/leave [post]
func (h *GameHandler) Leave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.gameUseCase.Leave(userID, gameID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleReady flips the caller's ready flag
// @Summary Toggle ready
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/ready [post]
func (h *GameHandler) ToggleReady(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameUseCase.ToggleReady(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// Start begins the game
// @Summary Start game
// @Description Host-only, requires at least 2 players, all ready
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /games/{id}/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameUseCase.Start(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// End finishes the game
// @Summary End game
// @Description Host-only, moves the game to finished
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/end [post]
func (h *GameHandler) End(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameUseCase.End(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// Transfer applies one balance-changing operation
// @Summary Transfer money
// @Description Move money between players or between a player and the bank
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body TransferRequest true "Transfer"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/transfer [post]
func (h *GameHandler) Transfer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	game, tx, err := h.ledgerUseCase.Transfer(userID, gameID, domain.TransferInput{
		ToPlayerID:  req.To,
		Amount:      req.Amount,
		Category:    domain.TransactionCategory(req.Category),
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransferResponse{Game: game, Transaction: tx})
}

// GetByCode retrieves a game and its ledger
// @Summary Get game by code
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param code path string true "Game code"
// @Success 200 {object} GameResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/code/{code} [get]
func (h *GameHandler) GetByCode(c *gin.Context) {
	game, transactions, err := h.gameUseCase.GetByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, GameResponse{Game: game, Transactions: transactions})
}

// MyActive retrieves the caller's current non-finished game. Responds with a
// null game when the caller has none.
// @Summary Get active game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GameResponse
// @Router /games/my-active [get]
func (h *GameHandler) MyActive(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	game, err := h.gameUseCase.GetActiveForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, GameResponse{Game: game})
}
