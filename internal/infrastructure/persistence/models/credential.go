package models

import (
	"time"

	"github.com/invoicing/backend/internal/domain/credential"
)

// APICredentialModel is the persistence model for stored API tokens.
// Only one row is active at a time; retired rows are kept for audit.
type APICredentialModel struct {
	BaseModel
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text"`
	IssuedAt     time.Time `gorm:"not null"`
	Active       bool      `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (APICredentialModel) TableName() string {
	return "api_credentials"
}

// ToDomain converts the persistence model to a domain APICredential
func (m *APICredentialModel) ToDomain() *credential.APICredential {
	return &credential.APICredential{
		BaseEntity:   m.BaseModel.toEntity(),
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		IssuedAt:     m.IssuedAt,
		Active:       m.Active,
	}
}

// APICredentialModelFromDomain builds a persistence model from a domain APICredential
func APICredentialModelFromDomain(c *credential.APICredential) *APICredentialModel {
	model := &APICredentialModel{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		IssuedAt:     c.IssuedAt,
		Active:       c.Active,
	}
	model.BaseModel = newBaseModel(c.BaseEntity)
	return model
}
