package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monopay/monopay-api/internal/domain"
)

// AuthHandler handles HTTP requests for account operations
type AuthHandler struct {
	userUseCase domain.UserUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUseCase domain.UserUseCase) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
	}
}

// SignUpRequest represents the registration request body
type SignUpRequest struct {
	Username string `json:"username" binding:"required" example:"tophat"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// SignInRequest represents the login request body
type SignInRequest struct {
	Username string `json:"username" binding:"required" example:"tophat"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest carries a verified Google identity payload
type GoogleAuthRequest struct {
	GoogleID string `json:"googleId" binding:"required"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
}

// AppleAuthRequest carries a verified Apple identity payload
type AppleAuthRequest struct {
	AppleID string `json:"appleId" binding:"required"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token     string       `json:"token"`
	User      *domain.User `json:"user"`
	IsNewUser bool         `json:"isNewUser,omitempty"`
}

// CompleteProfileRequest represents the profile completion request body
type CompleteProfileRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"displayName"`
}

// UpdateProfileRequest represents partial profile edits
type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
}

// ChangePasswordRequest represents the password change request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// UpdateSettingsRequest represents partial settings edits
type UpdateSettingsRequest struct {
	SoundEnabled         *bool   `json:"soundEnabled"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	DarkMode             *bool   `json:"darkMode"`
	Language             *string `json:"language"`
}

// ForgotPasswordRequest represents the password reset request body
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// SignUp handles account registration
// @Summary Register a new account
// @Description Create a local account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.userUseCase.SignUp(req.Username, req.Password); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.userUseCase.SignIn(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: result.Token, User: result.User, IsNewUser: true})
}

// SignIn handles user authentication
// @Summary User login
// @Description Authenticate with username and password, returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.userUseCase.SignIn(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: result.Token, User: result.User})
}

// GoogleAuth handles Google sign-in
// @Summary Google sign-in
// @Description Sign in or register with a Google identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google identity"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/oauth/google [post]
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.userUseCase.AuthenticateGoogle(domain.GoogleProfile{
		GoogleID: req.GoogleID,
		Email:    req.Email,
		Name:     req.Name,
		Picture:  req.Picture,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: result.Token, User: result.User, IsNewUser: result.IsNewUser})
}

// AppleAuth handles Apple sign-in
// @Summary Apple sign-in
// @Description Sign in or register with an Apple identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AppleAuthRequest true "Apple identity"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/oauth/apple [post]
func (h *AuthHandler) AppleAuth(c *gin.Context) {
	var req AppleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.userUseCase.AuthenticateApple(domain.AppleProfile{
		AppleID: req.AppleID,
		Email:   req.Email,
		Name:    req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: result.Token, User: result.User, IsNewUser: result.IsNewUser})
}

// CheckUsername reports username availability
// @Summary Check username availability
// @Tags auth
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Router /auth/check-username [get]
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	username := c.Query("username")

	available, err := h.userUseCase.CheckUsername(username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// CompleteProfile finalizes an OAuth account
// @Summary Complete profile
// @Description Set the final username and display name on a fresh OAuth account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompleteProfileRequest true "Profile data"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/complete-profile [post]
func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.CompleteProfile(userID, req.Username, req.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Me returns the authenticated user
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUserInfo(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies partial profile edits
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile edits"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.UpdateProfile(userID, domain.ProfileUpdate{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword replaces the account password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Password change"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userUseCase.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateSettings applies partial settings edits
// @Summary Update settings
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "Settings edits"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Router /auth/settings [put]
func (h *AuthHandler) UpdateSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.UpdateSettings(userID, domain.SettingsUpdate{
		SoundEnabled:         req.SoundEnabled,
		NotificationsEnabled: req.NotificationsEnabled,
		DarkMode:             req.DarkMode,
		Language:             req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Stats returns aggregate statistics and recent game history
// @Summary Get user stats
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.StatsReport
// @Failure 401 {object} ErrorResponse
// @Router /auth/stats [get]
func (h *AuthHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := h.userUseCase.GetStats(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ForgotPassword issues a password reset email
// @Summary Request password reset
// @Description Send a reset link to the given email if an account exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userUseCase.RequestPasswordReset(req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If an account exists, a reset email has been sent"})
}
