package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monopay/monopay-api/internal/domain"
)

// FriendHandler handles HTTP requests for friend operations
type FriendHandler struct {
	friendUseCase domain.FriendUseCase
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(friendUseCase domain.FriendUseCase) *FriendHandler {
	return &FriendHandler{
		friendUseCase: friendUseCase,
	}
}

// FriendTargetRequest names the other user of a friend operation
type FriendTargetRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// List returns friends and pending requests
// @Summary List friends
// @Description Friends plus pending requests in both directions
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.FriendList
// @Failure 401 {object} ErrorResponse
// @Router /friends [get]
func (h *FriendHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	list, err := h.friendUseCase.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Search finds users by uid, username or display name
// @Summary Search users
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {array} domain.UserSearchResult
// @Failure 400 {object} ErrorResponse
// @Router /friends/search [get]
func (h *FriendHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	results, err := h.friendUseCase.Search(userID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// SendRequest sends a friend request
// @Summary Send friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FriendTargetRequest true "Target user"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /friends/request [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req FriendTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.friendUseCase.SendRequest(userID, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AcceptRequest accepts a pending friend request
// @Summary Accept friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FriendTargetRequest true "Requesting user"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /friends/accept [post]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req FriendTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	friend, err := h.friendUseCase.AcceptRequest(userID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, friend)
}

// RejectRequest discards a pending friend request
// @Summary Reject friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FriendTargetRequest true "Requesting user"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Router /friends/reject [post]
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req FriendTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.friendUseCase.RejectRequest(userID, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelRequest withdraws a sent friend request
// @Summary Cancel friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FriendTargetRequest true "Target user"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Router /friends/cancel [post]
func (h *FriendHandler) CancelRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req FriendTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.friendUseCase.CancelRequest(userID, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveFriend removes an existing friendship
// @Summary Remove friend
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Friend user ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Router /friends/{id} [delete]
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	friendID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.friendUseCase.RemoveFriend(userID, friendID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
