package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/persistence/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRUC finds a client by its taxpayer identification number
func (r *GormClientRepository) FindByRUC(ctx context.Context, ruc string) (*billing.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "ruc = ?", ruc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByRUC checks if a client with the given RUC is registered
func (r *GormClientRepository) ExistsByRUC(ctx context.Context, ruc string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("ruc = ?", ruc).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Client, error) {
	var clientModels []models.ClientModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter, clientOrderColumns)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]billing.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = *clientModels[i].ToDomain()
	}
	return clients, nil
}

// Save creates or updates a client. A unique constraint on the RUC
// backs the application-level duplicate check.
func (r *GormClientRepository) Save(ctx context.Context, client *billing.Client) error {
	model := models.ClientModelFromDomain(client)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("ALREADY_EXISTS", "Client with this RUC already exists")
		}
		return err
	}
	return nil
}

// clientOrderColumns lists the columns list queries may order by
var clientOrderColumns = map[string]string{
	"created_at":   "created_at",
	"ruc":          "ruc",
	"razon_social": "razon_social",
}

// applyFilter applies ordering and column filters to a list query.
// Order columns pass through an allow list so user input never reaches
// the ORDER BY clause directly.
func applyFilter(query *gorm.DB, filter shared.Filter, orderColumns map[string]string) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "ruc":
			query = query.Where("ruc = ?", value)
		case "estado":
			query = query.Where("estado = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}

	if col, ok := orderColumns[filter.OrderBy]; ok {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		query = query.Order(col + " " + dir)
	}

	return query
}

// isUniqueViolation reports whether err is a postgres unique constraint error
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Ensure GormClientRepository implements ClientRepository
var _ billing.ClientRepository = (*GormClientRepository)(nil)
