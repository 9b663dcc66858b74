package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler holds the admin utilities that are not contribution CRUD.
type adminHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newAdminHandler(rs portssvc.ReceiptSvcFacade) *adminHandler {
	return &adminHandler{receiptService: rs}
}

// registerAdminUtilityRoutes registers the admin utility routes.
func registerAdminUtilityRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services.Receipt)

	rg.POST("/test-email", h.sendTestEmail)
}

// sendTestEmail godoc
// @Summary Send a test receipt
// @Description Emails a sample receipt so the administrator can verify the mail setup without making a payment
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.TestEmailRequest true "Destination address"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid address"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Mail delivery failed"
// @Security BearerAuth
// @Router /admin/test-email [post]
func (h *adminHandler) sendTestEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email address is required"})
		return
	}

	if err := h.receiptService.SendTestReceipt(c.Request.Context(), req.Email); err != nil {
		logger.Error("Test email failed", slog.String("email", req.Email), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send test email: " + err.Error()})
		return
	}

	logger.Info("Test email sent", slog.String("email", req.Email))
	c.JSON(http.StatusOK, gin.H{"message": "Test receipt sent to " + req.Email})
}
