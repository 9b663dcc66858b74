package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler serves the enabled currency list and exchange rates.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.ExchangeRateSvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, rs portssvc.ExchangeRateSvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs, rateService: rs}
}

// registerCurrencyRoutes registers the currency and rate routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCurrencyHandler(services.Currency, services.ExchangeRate)

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/rates/:currencyCode", h.getRate)
}

// listCurrencies godoc
// @Summary List enabled currencies
// @Description Returns the administrator-enabled currency descriptors, sorted by name
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyResponseSlice(h.currencyService.ListCurrencies()))
}

// getRate godoc
// @Summary Get a USD exchange rate
// @Description Returns the USD->currency rate used for converted amount hints
// @Tags currencies
// @Produce  json
// @Param   currencyCode path string true "Currency code (3 letters)"
// @Success 200 {object} dto.RateResponse
// @Failure 404 {object} map[string]string "No rate for currency"
// @Failure 502 {object} map[string]string "Rate source unavailable"
// @Router /rates/{currencyCode} [get]
func (h *currencyHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	code := strings.ToUpper(c.Param("currencyCode"))
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}
	if !h.currencyService.IsSupported(code) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unsupported currency"})
		return
	}

	rate, err := h.rateService.GetRate(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No exchange rate for currency"})
			return
		}
		logger.Error("Failed to get exchange rate", slog.String("currency", code), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate source unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{Currency: code, Rate: rate})
}
