package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for the Client aggregate
type ClientModel struct {
	BaseModel
	RUC       string `gorm:"type:varchar(11);not null;uniqueIndex:idx_clients_ruc"`
	LegalName string `gorm:"type:varchar(200);not null;column:razon_social"`
	Address   string `gorm:"type:varchar(200);column:direccion"`
	Email     string `gorm:"type:varchar(120)"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client
func (m *ClientModel) ToDomain() *billing.Client {
	return &billing.Client{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.toEntity(),
		},
		RUC:       m.RUC,
		LegalName: m.LegalName,
		Address:   m.Address,
		Email:     m.Email,
	}
}

// ClientModelFromDomain builds a persistence model from a domain Client
func ClientModelFromDomain(c *billing.Client) *ClientModel {
	model := &ClientModel{
		RUC:       c.RUC,
		LegalName: c.LegalName,
		Address:   c.Address,
		Email:     c.Email,
	}
	model.BaseModel = newBaseModel(c.BaseEntity)
	return model
}

// InvoiceModel is the persistence model for the Invoice aggregate header
type InvoiceModel struct {
	BaseModel
	Number   string             `gorm:"type:varchar(20);not null;uniqueIndex:idx_invoices_number;column:numero_factura"`
	IssuedAt time.Time          `gorm:"not null;column:fecha_emision"`
	ClientID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Total    decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	IGV      decimal.Decimal    `gorm:"type:decimal(18,2);not null;column:igv"`
	Status   string             `gorm:"type:varchar(20);not null;default:'GENERADA';column:estado"`
	Items    []InvoiceItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice, including
// all line items
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	items := make([]billing.InvoiceItem, len(m.Items))
	for i := range m.Items {
		items[i] = *m.Items[i].ToDomain()
	}
	return &billing.Invoice{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.toEntity(),
		},
		Number:   m.Number,
		IssuedAt: m.IssuedAt,
		ClientID: m.ClientID,
		Total:    m.Total,
		IGV:      m.IGV,
		Status:   billing.InvoiceStatus(m.Status),
		Items:    items,
	}
}

// InvoiceModelFromDomain builds a persistence model (header and items)
// from a domain Invoice
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	model := &InvoiceModel{
		Number:   inv.Number,
		IssuedAt: inv.IssuedAt,
		ClientID: inv.ClientID,
		Total:    inv.Total,
		IGV:      inv.IGV,
		Status:   string(inv.Status),
	}
	model.BaseModel = newBaseModel(inv.BaseEntity)

	model.Items = make([]InvoiceItemModel, len(inv.Items))
	for i := range inv.Items {
		model.Items[i] = *InvoiceItemModelFromDomain(&inv.Items[i])
	}
	return model
}

// InvoiceItemModel is the persistence model for a single invoice line
type InvoiceItemModel struct {
	BaseModel
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(200);not null;column:descripcion"`
	Quantity    int             `gorm:"not null;column:cantidad"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null;column:precio_unitario"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain InvoiceItem
func (m *InvoiceItemModel) ToDomain() *billing.InvoiceItem {
	return &billing.InvoiceItem{
		BaseEntity:  m.BaseModel.toEntity(),
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Subtotal:    m.Subtotal,
	}
}

// InvoiceItemModelFromDomain builds a persistence model from a domain InvoiceItem
func InvoiceItemModelFromDomain(item *billing.InvoiceItem) *InvoiceItemModel {
	model := &InvoiceItemModel{
		InvoiceID:   item.InvoiceID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Subtotal:    item.Subtotal,
	}
	model.BaseModel = newBaseModel(item.BaseEntity)
	return model
}
