package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	"stockroom/internal/delivery/http/validator"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context the same way the real server does,
// validator included.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// --- Account usecase stub ---

type stubAccountUsecase struct {
	signupErr error
	loginErr  error
	token     string

	lastSignup *usecase.SignupInput
	lastLogin  *usecase.LoginInput
}

func (s *stubAccountUsecase) Signup(_ context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	s.lastSignup = input
	if s.signupErr != nil {
		return nil, s.signupErr
	}

	return &usecase.SignupOutput{User: &entity.User{ID: 1, Name: input.Name, Username: input.Username}}, nil
}

func (s *stubAccountUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.lastLogin = input
	if s.loginErr != nil {
		return nil, s.loginErr
	}

	return &usecase.LoginOutput{AccessToken: s.token}, nil
}

// --- Product usecase stub ---

type stubProductUsecase struct {
	products map[uint64]*entity.Product
	order    []uint64
	nextID   uint64
}

func newStubProductUsecase() *stubProductUsecase {
	return &stubProductUsecase{products: make(map[uint64]*entity.Product), nextID: 1}
}

func (s *stubProductUsecase) seed(name string, price float64, stock int) *entity.Product {
	product := &entity.Product{
		ID:        s.nextID,
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
	s.products[product.ID] = product
	s.order = append(s.order, product.ID)
	s.nextID++

	return product
}

func (s *stubProductUsecase) CreateProduct(_ context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := s.seed(input.Name, input.Price, input.Stock)
	product.Description = input.Description

	return product, nil
}

func (s *stubProductUsecase) ListProducts(_ context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.products[id])
	}

	return products, nil
}

func (s *stubProductUsecase) GetProduct(_ context.Context, id uint64) (*entity.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (s *stubProductUsecase) UpdateProduct(_ context.Context, id uint64, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}
	if input == nil {
		return product, nil
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	return product, nil
}

func (s *stubProductUsecase) DeleteProduct(_ context.Context, id uint64) error {
	if _, ok := s.products[id]; !ok {
		return domainerrors.ErrProductNotFound
	}
	delete(s.products, id)

	return nil
}

var _ usecase.AccountUsecase = (*stubAccountUsecase)(nil)
var _ usecase.ProductUsecase = (*stubProductUsecase)(nil)

// setPathParam mimics a routed path parameter on a hand-built context.
func setPathParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}
