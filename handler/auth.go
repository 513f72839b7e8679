package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harikrish1993-phk/telvel/config"
	"github.com/harikrish1993-phk/telvel/middleware"
)

// AuthHandler gates the admin console behind the single shared secret. A
// successful login exchanges the secret for a signed, expiring token, so the
// credential itself is not replayed on every request.
type AuthHandler struct {
	cfg        *config.AdminConfig
	production bool
}

func NewAuthHandler(cfg *config.AdminConfig, production bool) *AuthHandler {
	return &AuthHandler{cfg: cfg, production: production}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Login validates the shared admin password and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password is required"})
		return
	}

	// An unset password disables admin access entirely.
	if h.cfg.Password == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Password)) != 1 {
		slog.Warn("failed admin login", "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, expiresAt, err := middleware.GenerateAdminToken(h.cfg)
	if err != nil {
		internalError(c, h.production, err)
		return
	}

	slog.Info("admin login", "client_ip", c.ClientIP())
	c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}
