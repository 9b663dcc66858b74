package handlers

import (
	"log/slog"
	"net/http"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/middleware"
	"github.com/computeralex/seventh-traditioner/internal/platform/config"
	"github.com/computeralex/seventh-traditioner/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// formHandler serves the form bootstrap payload and fresh form tokens.
type formHandler struct {
	cfg      *config.Config
	currency portssvc.CurrencySvcFacade
	rates    portssvc.ExchangeRateSvcFacade
}

func newFormHandler(cfg *config.Config, currency portssvc.CurrencySvcFacade, rates portssvc.ExchangeRateSvcFacade) *formHandler {
	return &formHandler{cfg: cfg, currency: currency, rates: rates}
}

// registerFormRoutes registers the form bootstrap routes.
func registerFormRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newFormHandler(cfg, services.Currency, services.ExchangeRate)

	form := rg.Group("/form")
	{
		form.GET("/bootstrap", h.bootstrap)
		form.GET("/token", h.freshToken)
	}
}

// bootstrap godoc
// @Summary Contribution form bootstrap
// @Description Returns everything the contribution form needs to render: enabled currencies, PayPal client id, captcha site key, a form token and converted amount hints
// @Tags form
// @Produce  json
// @Success 200 {object} dto.FormBootstrapResponse
// @Failure 500 {object} map[string]string "Failed to prepare form"
// @Router /form/bootstrap [get]
func (h *formHandler) bootstrap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, err := utils.GenerateFormToken(h.cfg.FormTokenSecret, h.cfg.FormTokenTTL, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate form token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare form"})
		return
	}

	resp := dto.FormBootstrapResponse{
		FellowshipName:   h.cfg.ServiceBodyName,
		DefaultCurrency:  h.cfg.DefaultCurrency,
		Currencies:       dto.ToCurrencyResponseSlice(h.currency.ListCurrencies()),
		ShowGroupID:      h.cfg.ShowGroupID,
		PayPalClientID:   h.cfg.PayPalClientID(),
		PayPalMode:       h.cfg.PayPalMode,
		RecaptchaSiteKey: h.cfg.RecaptchaSiteKey,
		FormToken:        token,
		Limits:           h.convertedLimits(c),
	}

	c.JSON(http.StatusOK, resp)
}

// freshToken godoc
// @Summary Fresh form token
// @Description Issues a new anti-replay token for a form kept open past the previous token's validity
// @Tags form
// @Produce  json
// @Success 200 {object} dto.FormTokenResponse
// @Failure 500 {object} map[string]string "Failed to generate token"
// @Router /form/token [get]
func (h *formHandler) freshToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, err := utils.GenerateFormToken(h.cfg.FormTokenSecret, h.cfg.FormTokenTTL, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate form token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, dto.FormTokenResponse{Token: token})
}

// convertedLimits converts the configured USD min/max hints into each enabled
// currency. The hints are advisory so a rate failure just omits them.
func (h *formHandler) convertedLimits(c *gin.Context) map[string]dto.AmountLimits {
	hasMin := h.cfg.MinContributionUSD.GreaterThan(decimal.Zero)
	hasMax := h.cfg.MaxContributionUSD.GreaterThan(decimal.Zero)
	if !hasMin && !hasMax {
		return nil
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	mode := domain.RoundingMode(h.cfg.RoundingMode)

	limits := make(map[string]dto.AmountLimits)
	for _, cur := range h.currency.ListCurrencies() {
		rate, err := h.rates.GetRate(c.Request.Context(), cur.Code)
		if err != nil {
			logger.Warn("Skipping amount limits, no exchange rate", slog.String("currency", cur.Code), slog.String("error", err.Error()))
			continue
		}

		var entry dto.AmountLimits
		if hasMin {
			// Round minimums up so the hint never under-states the floor.
			min, err := h.currency.ConvertFromUSD(h.cfg.MinContributionUSD, rate, cur.Code, mode, domain.RoundUp)
			if err == nil {
				entry.Min = &min
			}
		}
		if hasMax {
			max, err := h.currency.ConvertFromUSD(h.cfg.MaxContributionUSD, rate, cur.Code, mode, domain.RoundDown)
			if err == nil {
				entry.Max = &max
			}
		}
		if entry.Min != nil || entry.Max != nil {
			limits[cur.Code] = entry
		}
	}
	if len(limits) == 0 {
		return nil
	}
	return limits
}
