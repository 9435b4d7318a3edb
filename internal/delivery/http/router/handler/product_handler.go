package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/domain/entity"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createdAtLayout is the wire format for product creation timestamps.
const createdAtLayout = "2006-01-02 15:04:05"

// ProductHandler holds dependencies for product inventory handlers.
// Every route it serves sits behind the auth middleware.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProductRecord is the wire representation of a product.
type ProductRecord struct {
	PID         uint64  `json:"pid"`
	PName       string  `json:"pname"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CreatedAt   string  `json:"created_at"`
}

func toProductRecord(product *entity.Product) ProductRecord {
	return ProductRecord{
		PID:         product.ID,
		PName:       product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt.Format(createdAtLayout),
	}
}

// CreateProduct handles the request to add a product to the inventory.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if _, err := h.uc.CreateProduct(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Product added successfully")
}

// ListProducts handles the request to list the whole inventory.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	records := make([]ProductRecord, 0, len(products))
	for _, product := range products {
		records = append(records, toProductRecord(product))
	}

	return response.Success(c, http.StatusOK, records, "Products retrieved successfully")
}

// GetProduct handles the request to fetch a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductRecord(product), "Product retrieved successfully")
}

// UpdateProduct handles the request to update any subset of product fields.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if _, err := h.uc.UpdateProduct(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// DeleteProduct handles the request to remove a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// parseProductID reads the :id path parameter. A non-numeric id behaves
// like a missing product.
func parseProductID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
