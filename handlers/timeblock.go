package handlers

import (
	"net/http"
	"time"

	timeblockRepo "barberbook/database/repository/timeblock"
	"barberbook/models"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimeBlockHandler manages absolute-time exclusions such as maintenance
// windows and barber absences.
type TimeBlockHandler struct {
	Blocks timeblockRepo.TimeBlockRepository
}

func NewTimeBlockHandler(repo timeblockRepo.TimeBlockRepository) *TimeBlockHandler {
	return &TimeBlockHandler{Blocks: repo}
}

var validBlockTypes = map[string]bool{
	models.BlockTypeMaintenance: true,
	models.BlockTypeAbsence:     true,
	models.BlockTypeClosed:      true,
	models.BlockTypeCustom:      true,
}

// CreateTimeBlockHandler registers a new exclusion window.
// POST .../blocks
func (h *TimeBlockHandler) CreateTimeBlockHandler(c *gin.Context) {
	var input struct {
		BarberID  *string   `json:"barberId"`
		Title     string    `json:"title" binding:"required"`
		BlockType string    `json:"blockType" binding:"required"`
		StartTime time.Time `json:"startTime" binding:"required"`
		EndTime   time.Time `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !validBlockTypes[input.BlockType] {
		respondError(c, &scheduling.ValidationError{Field: "blockType", Reason: "must be maintenance, absence, closed or custom"})
		return
	}
	if !input.EndTime.After(input.StartTime) {
		respondError(c, &scheduling.ValidationError{Field: "endTime", Reason: "must be after startTime"})
		return
	}

	block := &models.TimeBlock{
		ID:              uuid.New().String(),
		EstablishmentID: c.Param("establishmentId"),
		BarberID:        input.BarberID,
		Title:           input.Title,
		BlockType:       input.BlockType,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.Blocks.Create(c.Request.Context(), block); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// DeleteTimeBlockHandler removes an exclusion window.
// DELETE .../blocks/:id
func (h *TimeBlockHandler) DeleteTimeBlockHandler(c *gin.Context) {
	if err := h.Blocks.Delete(c.Request.Context(), c.Param("establishmentId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "time block removed"})
}

// ListTimeBlocksHandler returns every exclusion window of the establishment.
// GET .../blocks
func (h *TimeBlockHandler) ListTimeBlocksHandler(c *gin.Context) {
	blocks, err := h.Blocks.ListByEstablishment(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}
