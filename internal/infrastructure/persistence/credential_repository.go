package persistence

import (
	"context"
	"errors"

	"github.com/invoicing/backend/internal/domain/credential"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCredentialRepository implements credential.Repository using GORM
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GormCredentialRepository
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// FindActive returns the most recently issued active credential
func (r *GormCredentialRepository) FindActive(ctx context.Context) (*credential.APICredential, error) {
	var model models.APICredentialModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("issued_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Replace retires every active credential and inserts the given one as
// the new active record, all inside one transaction. The retirement
// UPDATE row-locks the active rows, so concurrent replacements serialize
// and exactly one active credential survives.
func (r *GormCredentialRepository) Replace(ctx context.Context, cred *credential.APICredential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.APICredentialModel{}).
			Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Create(models.APICredentialModelFromDomain(cred)).Error
	})
}

// Ensure GormCredentialRepository implements credential.Repository
var _ credential.Repository = (*GormCredentialRepository)(nil)
