package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contributionHandler handles the public save endpoint and the admin
// listing/detail endpoints.
type contributionHandler struct {
	contributionService portssvc.ContributionSvcFacade
	currencyService     portssvc.CurrencySvcFacade
}

func newContributionHandler(cs portssvc.ContributionSvcFacade, currency portssvc.CurrencySvcFacade) *contributionHandler {
	return &contributionHandler{contributionService: cs, currencyService: currency}
}

// registerContributionRoutes registers the public save route.
func registerContributionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newContributionHandler(services.Contribution, services.Currency)

	rg.POST("/contributions", h.saveContribution)
}

// registerAdminContributionRoutes registers the authenticated admin routes.
func registerAdminContributionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newContributionHandler(services.Contribution, services.Currency)

	contributions := rg.Group("/contributions")
	{
		contributions.GET("", h.listContributions)
		contributions.GET("/:contributionID", h.getContribution)
		contributions.DELETE("", h.clearContributions)
	}
}

// saveContribution godoc
// @Summary Record a contribution
// @Description Validates and stores a payment confirmation submitted by the contribution form, then emails a receipt
// @Tags contributions
// @Accept  json
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   contribution body dto.SaveContributionRequest true "Contribution details"
// @Success 201 {object} dto.SaveContributionResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 409 {object} map[string]string "Transaction already processed"
// @Failure 500 {object} map[string]string "Failed to save contribution"
// @Router /contributions [post]
func (h *contributionHandler) saveContribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveContributionRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind contribution submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	meta := portssvc.SubmissionMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	contribution, err := h.contributionService.SaveContribution(c.Request.Context(), req, meta)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Contribution rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate transaction", slog.String("transaction_id", req.TransactionID))
			c.JSON(http.StatusConflict, gin.H{"error": "This transaction has already been processed."})
		default:
			logger.Error("Failed to save contribution", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contribution. Please contact support."})
		}
		return
	}

	logger.Info("Contribution saved", slog.Int64("contribution_id", contribution.ID))
	c.JSON(http.StatusCreated, dto.SaveContributionResponse{
		Message:        "Thank you for your contribution! A receipt has been sent to your email.",
		ContributionID: contribution.ID,
	})
}

// listContributions godoc
// @Summary List contributions
// @Description Returns a filtered, sorted, paged admin listing with per-currency totals
// @Tags admin
// @Produce  json
// @Param   search query string false "Match name, email, group name or transaction id"
// @Param   date_from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   date_to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param   sort_by query string false "date, amount or name" default(date)
// @Param   sort_order query string false "asc or desc" default(desc)
// @Param   page query int false "Page number" default(1)
// @Param   per_page query int false "Page size" default(20)
// @Success 200 {object} dto.ListContributionsResponse
// @Failure 400 {object} map[string]string "Invalid filters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list contributions"
// @Security BearerAuth
// @Router /admin/contributions [get]
func (h *contributionHandler) listContributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListContributionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters: " + err.Error()})
		return
	}

	resp, err := h.contributionService.ListContributions(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list contributions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contributions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getContribution godoc
// @Summary Get one contribution
// @Description Retrieves a single contribution by id for the admin detail view
// @Tags admin
// @Produce  json
// @Param   contributionID path int true "Contribution ID"
// @Success 200 {object} dto.ContributionResponse
// @Failure 404 {object} map[string]string "Contribution not found"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get contribution"
// @Security BearerAuth
// @Router /admin/contributions/{contributionID} [get]
func (h *contributionHandler) getContribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("contributionID"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contribution id"})
		return
	}

	contribution, err := h.contributionService.GetContributionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contribution not found"})
			return
		}
		logger.Error("Failed to get contribution", slog.Int64("contribution_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contribution"})
		return
	}

	formatted := h.currencyService.FormatAmount(contribution.Amount, contribution.Currency)
	c.JSON(http.StatusOK, dto.ToContributionResponse(contribution, formatted))
}

// clearContributions godoc
// @Summary Clear all contributions
// @Description Deletes every stored contribution. Requires the typed confirmation phrase DELETE in the request body
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   confirmation body dto.ClearContributionsRequest true "Typed confirmation"
// @Success 200 {object} dto.ClearContributionsResponse
// @Failure 400 {object} map[string]string "Confirmation phrase missing or wrong"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to clear contributions"
// @Security BearerAuth
// @Router /admin/contributions [delete]
func (h *contributionHandler) clearContributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ClearContributionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Clear-all rejected, bad confirmation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type DELETE in the confirm field to clear all contributions."})
		return
	}

	admin, _ := middleware.GetAdminFromContext(c)
	logger.Warn("Clearing all contributions", slog.String("admin_user", admin))

	deleted, err := h.contributionService.ClearAllContributions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to clear contributions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear contributions"})
		return
	}

	c.JSON(http.StatusOK, dto.ClearContributionsResponse{
		Deleted: deleted,
		Message: "All contribution records have been deleted.",
	})
}
