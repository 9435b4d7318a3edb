package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// CreateProductInput defines the data required to create a product.
// Field names follow the wire format of the inventory API.
type CreateProductInput struct {
	Name        string  `json:"pname" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// UpdateProductInput carries a partial update: nil fields keep the stored value.
type UpdateProductInput struct {
	Name        *string  `json:"pname"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// ProductUsecase defines the interface for product inventory operations.
// Every operation assumes the caller has already passed the access guard.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint64, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}
