// controllers/auth.go
package controllers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wellbeing-backend/utils"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /admin/api/login for the single admin account.
func (h *AdminHandler) Login(c *gin.Context) {
	if !h.cfg.AdminEnabled() {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Admin access is not configured.")
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(h.cfg.AdminUsername)) == 1
	passOK := utils.CheckPasswordHash(input.Password, h.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		h.logger.Warn().Str("username", input.Username).Str("client_ip", c.ClientIP()).Msg("Failed admin login")
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	expiry := time.Duration(h.cfg.JWTExpiryHours) * time.Hour
	token, err := utils.GenerateToken(h.cfg.JWTSecret, h.cfg.AdminUsername, expiry)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to generate token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(expiry.Seconds()),
	})
}
