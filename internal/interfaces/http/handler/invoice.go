package handler

import (
	"github.com/gin-gonic/gin"
	billingapp "github.com/invoicing/backend/internal/application/billing"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// CreateInvoiceResult is the creation acknowledgement for an invoice
type CreateInvoiceResult struct {
	Mensaje       string `json:"mensaje"`
	NumeroFactura string `json:"numero_factura"`
}

// Create issues a new invoice for an existing client
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req billingapp.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CreateInvoiceResult{
		Mensaje:       "Factura generada",
		NumeroFactura: invoice.Number,
	})
}

// GetByNumber retrieves an invoice with its items and client by number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	number := c.Param("numero")
	if number == "" {
		h.BadRequest(c, "Invoice number is required")
		return
	}

	invoice, err := h.invoiceService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// VoidInvoiceResult is the void acknowledgement; the updated invoice
// detail is inlined alongside the message
type VoidInvoiceResult struct {
	Mensaje string `json:"mensaje"`
	*billingapp.InvoiceResponse
}

// Void marks an invoice as voided. Voiding an already voided invoice
// succeeds without any change.
func (h *InvoiceHandler) Void(c *gin.Context) {
	number := c.Param("numero")
	if number == "" {
		h.BadRequest(c, "Invoice number is required")
		return
	}

	invoice, err := h.invoiceService.Void(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, VoidInvoiceResult{
		Mensaje:         "Factura anulada",
		InvoiceResponse: invoice,
	})
}
