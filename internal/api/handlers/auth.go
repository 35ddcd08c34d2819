package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/api/models"
	"election-monitor/internal/auth"
)

// Login authenticates a user and issues a token pair
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if !bindJSON(c, &req) {
			return
		}

		pair, user, err := services.AuthService().Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, models.ErrCodeInvalidCredentials, "Invalid email or password", "")
				return
			}
			handleServiceError(c, services, err)
			return
		}

		c.Set("user_id", user.ID)
		recordAudit(c, services, "auth.login", "user:"+user.ID, "")

		respondOK(c, http.StatusOK, models.AuthResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    pair.ExpiresIn,
			User: &models.UserResponse{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role,
			},
		})
	}
}

// RefreshToken exchanges a refresh token for a new pair
func RefreshToken(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RefreshRequest
		if !bindJSON(c, &req) {
			return
		}

		pair, err := services.AuthService().Refresh(req.RefreshToken)
		if err != nil {
			respondError(c, http.StatusUnauthorized, models.ErrCodeInvalidToken, "Invalid or expired refresh token", "")
			return
		}

		respondOK(c, http.StatusOK, models.AuthResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    pair.ExpiresIn,
		})
	}
}

// Logout records the logout. Tokens are stateless, so the client simply
// discards its pair; the audit trail still notes the event.
func Logout(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordAudit(c, services, "auth.logout", "user:"+c.GetString("user_id"), "")

		respondOK(c, http.StatusOK, gin.H{"message": "Logged out"})
	}
}
