package handlers

import (
	"net/http"
	"strconv"
	"time"

	establishmentRepo "barberbook/database/repository/establishment"
	"barberbook/models"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the scheduling engine: the day grid and the
// single-interval conflict check.
type AvailabilityHandler struct {
	Engine         *scheduling.Engine
	Establishments establishmentRepo.EstablishmentRepository
}

func NewAvailabilityHandler(engine *scheduling.Engine, ests establishmentRepo.EstablishmentRepository) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Establishments: ests}
}

// GetSlotsHandler returns the slot grid for one establishment, one day and
// optionally one barber. GET .../slots?date=2026-02-02&barberId=b1&duration=30
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	establishmentID := c.Param("establishmentId")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "date must be YYYY-MM-DD")
		return
	}

	est, err := h.Establishments.GetByID(c.Request.Context(), establishmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Closed weekdays are an establishment-level setting; the engine itself
	// only reasons about hours.
	for _, closed := range est.ClosedDays {
		if closed == int(date.Weekday()) {
			c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "closed": true, "slots": []models.Slot{}})
			return
		}
	}

	req := scheduling.SlotRequest{
		EstablishmentID: establishmentID,
		Date:            date,
		OpenTime:        est.OpenTime,
		CloseTime:       est.CloseTime,
	}
	if barberID := c.Query("barberId"); barberID != "" {
		req.BarberID = &barberID
	}
	if d := c.Query("duration"); d != "" {
		duration, err := strconv.Atoi(d)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", "duration must be an integer")
			return
		}
		req.SlotDurationMin = duration
	}

	slots, err := h.Engine.AvailableSlots(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "closed": false, "slots": slots})
}

// CheckConflictsHandler answers whether one proposed interval is legal.
// POST .../conflicts/check
func (h *AvailabilityHandler) CheckConflictsHandler(c *gin.Context) {
	var input struct {
		Start                time.Time `json:"start" binding:"required"`
		DurationMin          int       `json:"durationMin" binding:"required"`
		BarberID             *string   `json:"barberId"`
		ExcludeAppointmentID string    `json:"excludeAppointmentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Engine.CheckAllConflicts(c.Request.Context(), scheduling.CheckInput{
		EstablishmentID:      c.Param("establishmentId"),
		Start:                input.Start,
		DurationMin:          input.DurationMin,
		BarberID:             input.BarberID,
		ExcludeAppointmentID: input.ExcludeAppointmentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
