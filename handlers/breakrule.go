package handlers

import (
	"net/http"
	"time"

	breakRepo "barberbook/database/repository/breakrule"
	"barberbook/models"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BreakRuleHandler manages the weekly recurring breaks of an establishment.
type BreakRuleHandler struct {
	Breaks breakRepo.BreakRepository
}

func NewBreakRuleHandler(repo breakRepo.BreakRepository) *BreakRuleHandler {
	return &BreakRuleHandler{Breaks: repo}
}

type breakRuleInput struct {
	BarberID   *string `json:"barberId"`
	Name       string  `json:"name" binding:"required"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	DaysOfWeek []int   `json:"daysOfWeek"`
	Recurring  bool    `json:"recurring"`
}

// validateWindow rejects malformed clock strings and inverted windows before
// they reach storage, so the engine only ever sees well-formed rules.
func (in *breakRuleInput) validateWindow() error {
	start, err := scheduling.ToMinutes(in.StartTime)
	if err != nil {
		return &scheduling.ValidationError{Field: "startTime", Reason: err.Error()}
	}
	end, err := scheduling.ToMinutes(in.EndTime)
	if err != nil {
		return &scheduling.ValidationError{Field: "endTime", Reason: err.Error()}
	}
	if start >= end {
		return &scheduling.ValidationError{Field: "endTime", Reason: "must be after startTime"}
	}
	for _, d := range in.DaysOfWeek {
		if d < 0 || d > 6 {
			return &scheduling.ValidationError{Field: "daysOfWeek", Reason: "weekdays must be 0 (Sunday) through 6 (Saturday)"}
		}
	}
	return nil
}

// CreateBreakRuleHandler registers a new break rule.
// POST .../breaks
func (h *BreakRuleHandler) CreateBreakRuleHandler(c *gin.Context) {
	var input breakRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := input.validateWindow(); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	rule := &models.BreakRule{
		ID:              uuid.New().String(),
		EstablishmentID: c.Param("establishmentId"),
		BarberID:        input.BarberID,
		Name:            input.Name,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DaysOfWeek:      input.DaysOfWeek,
		Recurring:       input.Recurring,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.Breaks.Create(c.Request.Context(), rule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// UpdateBreakRuleHandler replaces a break rule's window and scope.
// PUT .../breaks/:id
func (h *BreakRuleHandler) UpdateBreakRuleHandler(c *gin.Context) {
	var input breakRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := input.validateWindow(); err != nil {
		respondError(c, err)
		return
	}

	rule, err := h.Breaks.GetByID(c.Request.Context(), c.Param("establishmentId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	rule.BarberID = input.BarberID
	rule.Name = input.Name
	rule.StartTime = input.StartTime
	rule.EndTime = input.EndTime
	rule.DaysOfWeek = input.DaysOfWeek
	rule.Recurring = input.Recurring
	rule.UpdatedAt = time.Now().UTC()

	if err := h.Breaks.Update(c.Request.Context(), rule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeactivateBreakRuleHandler soft-deletes a rule so it stops producing
// conflicts but stays auditable.
// DELETE .../breaks/:id
func (h *BreakRuleHandler) DeactivateBreakRuleHandler(c *gin.Context) {
	if err := h.Breaks.Deactivate(c.Request.Context(), c.Param("establishmentId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "break rule deactivated"})
}

// ListBreakRulesHandler returns every rule of the establishment, active or not.
// GET .../breaks
func (h *BreakRuleHandler) ListBreakRulesHandler(c *gin.Context) {
	rules, err := h.Breaks.ListByEstablishment(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"breaks": rules})
}
