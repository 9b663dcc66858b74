package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paypalHandler exposes server-side order creation and capture for
// deployments that do not use PayPal's hosted JS buttons.
type paypalHandler struct {
	paypalService portssvc.PayPalSvcFacade
}

func newPayPalHandler(ps portssvc.PayPalSvcFacade) *paypalHandler {
	return &paypalHandler{paypalService: ps}
}

// registerPayPalRoutes registers the checkout routes.
func registerPayPalRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newPayPalHandler(services.PayPal)

	orders := rg.Group("/paypal/orders")
	{
		orders.POST("", h.createOrder)
		orders.POST("/:orderID/capture", h.captureOrder)
		orders.GET("/:orderID", h.getOrder)
	}
}

// createOrder godoc
// @Summary Create a PayPal order
// @Description Creates a capture-intent checkout order for the given amount and currency
// @Tags paypal
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePayPalOrderRequest true "Order details"
// @Success 201 {object} dto.PayPalOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "PayPal unavailable"
// @Router /paypal/orders [post]
func (h *paypalHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePayPalOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind order request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.paypalService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create paypal order", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create order with the payment provider"})
		return
	}

	logger.Info("PayPal order created", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, order)
}

// captureOrder godoc
// @Summary Capture a PayPal order
// @Description Captures an approved order and returns the transaction id the form submits back
// @Tags paypal
// @Produce  json
// @Param   orderID path string true "PayPal order ID"
// @Success 200 {object} dto.PayPalCaptureResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "PayPal unavailable"
// @Router /paypal/orders/{orderID}/capture [post]
func (h *paypalHandler) captureOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	capture, err := h.paypalService.CaptureOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to capture paypal order", slog.String("order_id", c.Param("orderID")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to capture the payment"})
		return
	}

	logger.Info("PayPal order captured", slog.String("order_id", capture.OrderID), slog.String("transaction_id", capture.TransactionID))
	c.JSON(http.StatusOK, capture)
}

// getOrder godoc
// @Summary Get a PayPal order
// @Description Returns current status for a checkout order
// @Tags paypal
// @Produce  json
// @Param   orderID path string true "PayPal order ID"
// @Success 200 {object} dto.PayPalOrderResponse
// @Failure 502 {object} map[string]string "PayPal unavailable"
// @Router /paypal/orders/{orderID} [get]
func (h *paypalHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.paypalService.GetOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get paypal order", slog.String("order_id", c.Param("orderID")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to look up the order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
