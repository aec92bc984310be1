package handlers

import (
	"errors"
	"net/http"

	"barberbook/services/booking"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondError maps service errors onto HTTP statuses in one place so every
// handler reports failures the same way.
func respondError(c *gin.Context, err error) {
	var conflictErr *scheduling.ConflictError
	switch {
	case scheduling.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":  conflictErr.Result.Message,
			"result": conflictErr.Result,
		})
	case errors.Is(err, booking.ErrSlotBusy):
		utils.JSONError(c, http.StatusConflict, "slot busy", err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
