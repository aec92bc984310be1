package handlers

import (
	"net/http"
	"time"

	establishmentRepo "barberbook/database/repository/establishment"
	"barberbook/models"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EstablishmentHandler manages tenant businesses.
type EstablishmentHandler struct {
	Establishments establishmentRepo.EstablishmentRepository
}

func NewEstablishmentHandler(repo establishmentRepo.EstablishmentRepository) *EstablishmentHandler {
	return &EstablishmentHandler{Establishments: repo}
}

type establishmentInput struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	OpenTime   string `json:"openTime"`
	CloseTime  string `json:"closeTime"`
	ClosedDays []int  `json:"closedDays"`
}

// validateHours checks the configured window when one is given. Empty hours
// are legal; the scheduler falls back to its defaults.
func (in *establishmentInput) validateHours() error {
	if in.OpenTime == "" && in.CloseTime == "" {
		return nil
	}
	open, err := scheduling.ToMinutes(in.OpenTime)
	if err != nil {
		return &scheduling.ValidationError{Field: "openTime", Reason: err.Error()}
	}
	closeMin, err := scheduling.ToMinutes(in.CloseTime)
	if err != nil {
		return &scheduling.ValidationError{Field: "closeTime", Reason: err.Error()}
	}
	if open >= closeMin {
		return &scheduling.ValidationError{Field: "closeTime", Reason: "must be after openTime"}
	}
	for _, d := range in.ClosedDays {
		if d < 0 || d > 6 {
			return &scheduling.ValidationError{Field: "closedDays", Reason: "weekdays must be 0 (Sunday) through 6 (Saturday)"}
		}
	}
	return nil
}

// CreateEstablishmentHandler registers a new tenant.
// POST /api/establishments
func (h *EstablishmentHandler) CreateEstablishmentHandler(c *gin.Context) {
	var input establishmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := input.validateHours(); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	est := &models.Establishment{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Phone:      input.Phone,
		Address:    input.Address,
		OpenTime:   input.OpenTime,
		CloseTime:  input.CloseTime,
		ClosedDays: input.ClosedDays,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.Establishments.Create(c.Request.Context(), est); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, est)
}

// UpdateEstablishmentHandler updates a tenant's profile and opening hours.
// PUT /api/establishments/:establishmentId
func (h *EstablishmentHandler) UpdateEstablishmentHandler(c *gin.Context) {
	var input establishmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := input.validateHours(); err != nil {
		respondError(c, err)
		return
	}

	est, err := h.Establishments.GetByID(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	est.Name = input.Name
	est.Phone = input.Phone
	est.Address = input.Address
	est.OpenTime = input.OpenTime
	est.CloseTime = input.CloseTime
	est.ClosedDays = input.ClosedDays

	if err := h.Establishments.Update(c.Request.Context(), est); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// GetEstablishmentHandler fetches one tenant.
// GET /api/establishments/:establishmentId
func (h *EstablishmentHandler) GetEstablishmentHandler(c *gin.Context) {
	est, err := h.Establishments.GetByID(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// ListEstablishmentsHandler returns every active tenant.
// GET /api/establishments
func (h *EstablishmentHandler) ListEstablishmentsHandler(c *gin.Context) {
	ests, err := h.Establishments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"establishments": ests})
}
