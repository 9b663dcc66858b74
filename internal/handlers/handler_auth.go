package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/middleware"
	"github.com/computeralex/seventh-traditioner/internal/platform/config"
	"github.com/computeralex/seventh-traditioner/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles admin login.
type authHandler struct {
	cfg *config.Config
}

func newAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// registerAuthRoutes registers the public authentication routes. Login sits
// inside the rate-limited public group so credential guessing is throttled
// like every other anonymous request.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, _ *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.login)
	}
}

// login godoc
// @Summary Admin login
// @Description Authenticates the administrator and returns a bearer token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// An empty hash means login was never configured; always reject.
	if h.cfg.AdminPasswordHash == "" ||
		req.Username != h.cfg.AdminUsername ||
		!utils.CheckPasswordHash(req.Password, h.cfg.AdminPasswordHash) {
		logger.Warn("Admin login rejected", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(req.Username, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate admin token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("Admin logged in", slog.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.JWTExpiryDuration.Seconds()),
	})
}
