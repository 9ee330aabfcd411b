package handlers

import (
	"net/http"
	"strconv"

	"github.com/estateline/estateline-api/internal/schedule"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the tour scheduling window the booking form renders
type ScheduleHandler struct {
	clock schedule.Clock
}

func NewScheduleHandler(clock schedule.Clock) *ScheduleHandler {
	return &ScheduleHandler{clock: clock}
}

// GetTourSlots handles GET /api/v1/tour-slots?offset=N.
// Returns the 14-day date window at the requested offset, the fixed time
// slots, and the offsets for the previous/next page.
func (h *ScheduleHandler) GetTourSlots(c *gin.Context) {
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid offset", err)
			return
		}
		offset = parsed
	}
	if offset < 0 {
		offset = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"offset":      offset,
		"prev_offset": schedule.PrevOffset(offset),
		"next_offset": schedule.NextOffset(offset),
		"dates":       schedule.Window(h.clock, offset),
		"time_slots":  schedule.TourTimeSlots,
	})
}
