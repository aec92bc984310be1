package handlers

import (
	"net/http"
	"time"

	offeringRepo "barberbook/database/repository/offering"
	"barberbook/models"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OfferingHandler manages the service catalog.
type OfferingHandler struct {
	Offerings offeringRepo.OfferingRepository
}

func NewOfferingHandler(repo offeringRepo.OfferingRepository) *OfferingHandler {
	return &OfferingHandler{Offerings: repo}
}

type offeringInput struct {
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"durationMin" binding:"required"`
	Price       float64 `json:"price"`
}

// CreateOfferingHandler adds a bookable service.
// POST .../offerings
func (h *OfferingHandler) CreateOfferingHandler(c *gin.Context) {
	var input offeringInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.DurationMin <= 0 {
		respondError(c, &scheduling.ValidationError{Field: "durationMin", Reason: "must be positive"})
		return
	}

	now := time.Now().UTC()
	offering := &models.Offering{
		ID:              uuid.New().String(),
		EstablishmentID: c.Param("establishmentId"),
		Name:            input.Name,
		DurationMin:     input.DurationMin,
		Price:           input.Price,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.Offerings.Create(c.Request.Context(), offering); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offering)
}

// UpdateOfferingHandler updates a service.
// PUT .../offerings/:id
func (h *OfferingHandler) UpdateOfferingHandler(c *gin.Context) {
	var input offeringInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.DurationMin <= 0 {
		respondError(c, &scheduling.ValidationError{Field: "durationMin", Reason: "must be positive"})
		return
	}

	offering, err := h.Offerings.GetByID(c.Request.Context(), c.Param("establishmentId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	offering.Name = input.Name
	offering.DurationMin = input.DurationMin
	offering.Price = input.Price

	if err := h.Offerings.Update(c.Request.Context(), offering); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offering)
}

// DeactivateOfferingHandler retires a service from the catalog.
// DELETE .../offerings/:id
func (h *OfferingHandler) DeactivateOfferingHandler(c *gin.Context) {
	if err := h.Offerings.Deactivate(c.Request.Context(), c.Param("establishmentId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offering deactivated"})
}

// ListOfferingsHandler returns the establishment's catalog.
// GET .../offerings
func (h *OfferingHandler) ListOfferingsHandler(c *gin.Context) {
	offerings, err := h.Offerings.ListByEstablishment(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offerings": offerings})
}
