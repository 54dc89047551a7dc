package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/invoicing/backend/internal/application/billing"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *billingapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *billingapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// CreateClientResult is the creation acknowledgement for a client
type CreateClientResult struct {
	Mensaje string `json:"mensaje"`
	ID      string `json:"id"`
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req billingapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CreateClientResult{
		Mensaje: "Cliente registrado",
		ID:      client.ID,
	})
}

// GetByID retrieves a client by its ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// List returns all registered clients, optionally filtered by RUC
func (h *ClientHandler) List(c *gin.Context) {
	var filter billingapp.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, clients)
}
