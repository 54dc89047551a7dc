package billing

import (
	"time"

	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CreateClientRequest represents a request to register a client
type CreateClientRequest struct {
	RUC       string `json:"ruc" binding:"required"`
	LegalName string `json:"razon_social" binding:"required"`
	Address   string `json:"direccion"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        string    `json:"id"`
	RUC       string    `json:"ruc"`
	LegalName string    `json:"razon_social"`
	Address   string    `json:"direccion"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"fecha_registro"`
}

// ClientListFilter represents filtering options for listing clients
type ClientListFilter struct {
	RUC      string `form:"ruc"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
}

// CreateInvoiceItemRequest represents a line item in an invoice creation request
type CreateInvoiceItemRequest struct {
	Description string          `json:"descripcion" binding:"required"`
	Quantity    int             `json:"cantidad" binding:"gte=0"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
}

// CreateInvoiceRequest represents a request to issue an invoice
type CreateInvoiceRequest struct {
	ClientID string                     `json:"cliente_id" binding:"required,uuid"`
	Total    decimal.Decimal            `json:"total"`
	Items    []CreateInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceItemResponse represents a line item in API responses
type InvoiceItemResponse struct {
	Description string          `json:"descripcion"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse represents a full invoice with its client and items
type InvoiceResponse struct {
	ID        string                `json:"id"`
	Number    string                `json:"numero_factura"`
	IssuedAt  time.Time             `json:"fecha_emision"`
	Status    string                `json:"estado"`
	Total     decimal.Decimal       `json:"total"`
	IGV       decimal.Decimal       `json:"igv"`
	ItemTotal decimal.Decimal       `json:"suma_items"`
	Client    *ClientResponse       `json:"cliente,omitempty"`
	Items     []InvoiceItemResponse `json:"items"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(client *billing.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID.String(),
		RUC:       client.RUC,
		LegalName: client.LegalName,
		Address:   client.Address,
		Email:     client.Email,
		CreatedAt: client.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain clients to response DTOs
func ToClientResponses(clients []*billing.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = ToClientResponse(client)
	}
	return responses
}

// ToInvoiceResponse converts a domain invoice to a response DTO. The client
// is optional and omitted from the payload when nil.
func ToInvoiceResponse(invoice *billing.Invoice, client *billing.Client) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		}
	}

	response := InvoiceResponse{
		ID:        invoice.ID.String(),
		Number:    invoice.Number,
		IssuedAt:  invoice.IssuedAt,
		Status:    string(invoice.Status),
		Total:     invoice.Total,
		IGV:       invoice.IGV,
		ItemTotal: invoice.ItemTotal(),
		Items:     items,
	}
	if client != nil {
		clientResponse := ToClientResponse(client)
		response.Client = &clientResponse
	}
	return response
}
