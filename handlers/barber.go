package handlers

import (
	"net/http"
	"time"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BarberHandler manages barbers of an establishment.
type BarberHandler struct {
	Barbers barberRepo.BarberRepository
}

func NewBarberHandler(repo barberRepo.BarberRepository) *BarberHandler {
	return &BarberHandler{Barbers: repo}
}

type barberInput struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
}

// CreateBarberHandler adds a barber.
// POST .../barbers
func (h *BarberHandler) CreateBarberHandler(c *gin.Context) {
	var input barberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	now := time.Now().UTC()
	barber := &models.Barber{
		ID:              uuid.New().String(),
		EstablishmentID: c.Param("establishmentId"),
		Name:            input.Name,
		Phone:           input.Phone,
		Specialties:     input.Specialties,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.Barbers.Create(c.Request.Context(), barber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, barber)
}

// UpdateBarberHandler updates a barber's profile.
// PUT .../barbers/:id
func (h *BarberHandler) UpdateBarberHandler(c *gin.Context) {
	var input barberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	barber, err := h.Barbers.GetByID(c.Request.Context(), c.Param("establishmentId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	barber.Name = input.Name
	barber.Phone = input.Phone
	barber.Specialties = input.Specialties

	if err := h.Barbers.Update(c.Request.Context(), barber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, barber)
}

// DeactivateBarberHandler soft-deletes a barber.
// DELETE .../barbers/:id
func (h *BarberHandler) DeactivateBarberHandler(c *gin.Context) {
	if err := h.Barbers.Deactivate(c.Request.Context(), c.Param("establishmentId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "barber deactivated"})
}

// ListBarbersHandler returns the active barbers of the establishment.
// GET .../barbers
func (h *BarberHandler) ListBarbersHandler(c *gin.Context) {
	barbers, err := h.Barbers.ListByEstablishment(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}
