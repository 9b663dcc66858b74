package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// meetingHandler serves the meeting and group dropdowns of the form.
type meetingHandler struct {
	meetingService portssvc.MeetingSvcFacade
}

func newMeetingHandler(ms portssvc.MeetingSvcFacade) *meetingHandler {
	return &meetingHandler{meetingService: ms}
}

// registerMeetingRoutes registers the meeting directory routes.
func registerMeetingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newMeetingHandler(services.Meeting)

	rg.GET("/meetings", h.listMeetingsByDay)
	rg.GET("/groups", h.listGroups)
}

// listMeetingsByDay godoc
// @Summary List meetings on a weekday
// @Description Returns directory meetings on the given weekday (0=Sunday .. 6=Saturday)
// @Tags meetings
// @Produce  json
// @Param   day query int true "Weekday number" minimum(0) maximum(6)
// @Success 200 {array} dto.MeetingResponse
// @Failure 400 {object} map[string]string "Invalid day"
// @Failure 502 {object} map[string]string "Meeting directory unavailable"
// @Router /meetings [get]
func (h *meetingHandler) listMeetingsByDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	day, err := strconv.Atoi(c.Query("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be a number from 0 (Sunday) to 6 (Saturday)"})
		return
	}

	meetings, err := h.meetingService.ListMeetingsByDay(c.Request.Context(), day)
	if err != nil {
		logger.Error("Failed to list meetings", slog.Int("day", day), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Meeting directory unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponseSlice(meetings))
}

// listGroups godoc
// @Summary List groups
// @Description Returns the distinct groups named in the meeting directory, sorted alphabetically
// @Tags meetings
// @Produce  json
// @Success 200 {array} dto.GroupResponse
// @Failure 502 {object} map[string]string "Meeting directory unavailable"
// @Router /groups [get]
func (h *meetingHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.meetingService.ListGroups(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list groups", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Meeting directory unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponseSlice(groups))
}
