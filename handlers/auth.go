package handlers

import (
	"errors"
	"net/http"
	"time"

	staffRepo "barberbook/database/repository/staff"
	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler handles staff registration and login for the management API.
type AuthHandler struct {
	Staff staffRepo.StaffRepository
}

func NewAuthHandler(repo staffRepo.StaffRepository) *AuthHandler {
	return &AuthHandler{Staff: repo}
}

// RegisterStaffHandler creates an operator account for an establishment.
// POST /api/auth/register
func (h *AuthHandler) RegisterStaffHandler(c *gin.Context) {
	var input struct {
		EstablishmentID string `json:"establishmentId" binding:"required"`
		Name            string `json:"name" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=8"`
		Role            string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if existing, err := h.Staff.GetByEmail(c.Request.Context(), input.Email); err == nil && existing != nil {
		utils.JSONError(c, http.StatusConflict, "email taken", "an account with this email already exists")
		return
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	role := input.Role
	if role == "" {
		role = "staff"
	}
	staff := &models.StaffUser{
		ID:              uuid.New().String(),
		EstablishmentID: input.EstablishmentID,
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Role:            role,
	}
	if err := h.Staff.Create(c.Request.Context(), staff); err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(staff.ID, staff.EstablishmentID, tokenLifetime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": staff, "token": token})
}

// LoginStaffHandler authenticates an operator and issues a JWT.
// POST /api/auth/login
func (h *AuthHandler) LoginStaffHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	staff, err := h.Staff.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(staff.ID, staff.EstablishmentID, tokenLifetime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff, "token": token})
}
