package handlers

import (
	"net/http"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler covers the appointment lifecycle plus the walk-in queue.
type AppointmentHandler struct {
	Booking      booking.BookingService
	Appointments appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(svc booking.BookingService, repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Booking: svc, Appointments: repo}
}

// CreateAppointmentHandler books a scheduled appointment.
// POST .../appointments
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input struct {
		ClientID    string    `json:"clientId" binding:"required"`
		BarberID    *string   `json:"barberId"`
		OfferingID  string    `json:"offeringId" binding:"required"`
		Start       time.Time `json:"start" binding:"required"`
		DurationMin int       `json:"durationMin"`
		Notes       string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Booking.Create(c.Request.Context(), booking.CreateInput{
		EstablishmentID: c.Param("establishmentId"),
		ClientID:        input.ClientID,
		BarberID:        input.BarberID,
		OfferingID:      input.OfferingID,
		Start:           input.Start,
		DurationMin:     input.DurationMin,
		Notes:           input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler fetches one appointment.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Appointments.GetByID(c.Request.Context(), c.Param("establishmentId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointmentsHandler returns every appointment for one day.
// GET .../appointments?date=2026-02-02
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "date must be YYYY-MM-DD")
		return
	}
	appts, err := h.Appointments.ListByEstablishmentAndDay(c.Request.Context(), c.Param("establishmentId"), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// RescheduleAppointmentHandler moves an appointment to a new start time.
// PUT .../appointments/:id/schedule
func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	var input struct {
		Start time.Time `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Booking.Reschedule(c.Request.Context(), c.Param("establishmentId"), c.Param("id"), input.Start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler cancels an appointment, freeing its interval.
// DELETE .../appointments/:id
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	if err := h.Booking.Cancel(c.Request.Context(), c.Param("establishmentId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

// UpdateAppointmentStatusHandler transitions an appointment's lifecycle state.
// PUT .../appointments/:id/status
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Booking.UpdateStatus(c.Request.Context(), c.Param("establishmentId"), c.Param("id"), input.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// EnqueueHandler adds a walk-in client to the virtual queue.
// POST .../queue
func (h *AppointmentHandler) EnqueueHandler(c *gin.Context) {
	var input struct {
		ClientID   string  `json:"clientId" binding:"required"`
		BarberID   *string `json:"barberId"`
		OfferingID string  `json:"offeringId" binding:"required"`
		Notes      string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	entry, err := h.Booking.Enqueue(c.Request.Context(), booking.EnqueueInput{
		EstablishmentID: c.Param("establishmentId"),
		ClientID:        input.ClientID,
		BarberID:        input.BarberID,
		OfferingID:      input.OfferingID,
		Notes:           input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// CallNextHandler promotes the oldest queued client to in progress.
// POST .../queue/next
func (h *AppointmentHandler) CallNextHandler(c *gin.Context) {
	var input struct {
		BarberID *string `json:"barberId"`
	}
	// Body is optional; an empty body means any barber.
	_ = c.ShouldBindJSON(&input)

	entry, err := h.Booking.CallNext(c.Request.Context(), c.Param("establishmentId"), input.BarberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// QueueLengthHandler reports how many clients are waiting.
// GET .../queue
func (h *AppointmentHandler) QueueLengthHandler(c *gin.Context) {
	n, err := h.Appointments.CountQueued(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"waiting": n})
}
