package handlers

import (
	"errors"
	"net/http"

	"vendor_hub_backend/internal/models"
	"vendor_hub_backend/internal/services"
	"vendor_hub_backend/pkg/utils" // For APIError and error codes

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// LoginUser handles employee login. Any non-blank username and password is accepted.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "LoginUser: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Username and password are required.", err.Error()))
		return
	}

	authResp, err := h.authService.Login(req)
	if err != nil {
		utils.LogError(err, "LoginUser: Error from authService.Login")
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid username or password.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to login.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// GetCurrentUser echoes the identity carried by the session token.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", "Missing username in context"))
		return
	}
	c.JSON(http.StatusOK, models.Employee{Username: username, Role: c.GetString("userRole")})
}

// LogoutUser handles user logout.
// Tokens are stateless, so this only acknowledges; the client discards the token.
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	utils.LogInfo("Employee logged out", map[string]interface{}{"username": c.GetString("username")})
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully. Please discard your token."})
}
