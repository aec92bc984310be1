package handlers

import (
	"net/http"
	"time"

	clientRepo "barberbook/database/repository/client"
	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler manages end customers of an establishment.
type ClientHandler struct {
	Clients clientRepo.ClientRepository
}

func NewClientHandler(repo clientRepo.ClientRepository) *ClientHandler {
	return &ClientHandler{Clients: repo}
}

type clientInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

// CreateClientHandler registers a customer.
// POST .../clients
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	now := time.Now().UTC()
	client := &models.Client{
		ID:              uuid.New().String(),
		EstablishmentID: c.Param("establishmentId"),
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.Clients.Create(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClientHandler updates a customer's record.
// PUT .../clients/:id
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	client, err := h.Clients.GetByID(c.Request.Context(), c.Param("establishmentId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	client.Name = input.Name
	client.Phone = input.Phone
	client.Email = input.Email
	client.Notes = input.Notes

	if err := h.Clients.Update(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetClientHandler fetches a customer by ID, or by phone when the query
// parameter is present.
// GET .../clients/:id
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	client, err := h.Clients.GetByID(c.Request.Context(), c.Param("establishmentId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListClientsHandler returns customers of the establishment. A phone query
// narrows the result to one record.
// GET .../clients?phone=...
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	if phone := c.Query("phone"); phone != "" {
		client, err := h.Clients.GetByPhone(c.Request.Context(), c.Param("establishmentId"), phone)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clients": []models.Client{*client}})
		return
	}

	clients, err := h.Clients.ListByEstablishment(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}
