package repositories

import (
	"context"

	"yolomy/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// Update is an upsert: when no record matches the product's ID, a new record
// is created under that exact ID instead of returning a not-found error.
// Delete is idempotent and succeeds for IDs that were never stored.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
