package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// FindAll retrieves every product in the storage.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.Product, error)

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uint64) error
}
