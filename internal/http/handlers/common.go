package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/monopay/monopay-api/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error   *domain.AppError `json:"error"`
	Success bool             `json:"success" example:"false"`
}

// currentUserID extracts the authenticated user ID set by the JWT middleware
func currentUserID(c *gin.Context) (int64, bool) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(
			domain.NewUnauthorizedError("User not authenticated")))
		return 0, false
	}

	userID, err := strconv.ParseInt(userIDStr.(string), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, domain.NewErrorResponse(
			domain.NewUnauthorizedError("Invalid user ID in token")))
		return 0, false
	}

	return userID, true
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
			domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid "+name+" parameter", http.StatusBadRequest, err)))
		return 0, false
	}
	return id, true
}

// respondError renders a use case error with its HTTP status
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		appErr.Path = c.Request.URL.Path
		appErr.Method = c.Request.Method
		if requestID, exists := c.Get("request_id"); exists {
			appErr.RequestID = requestID.(string)
		}
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(
		domain.NewInternalError("", err)))
}

// respondBindError renders a request body validation failure
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, domain.NewErrorResponse(
		domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err)))
}
