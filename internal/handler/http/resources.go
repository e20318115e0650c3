package http

import (
	"log/slog"

	"github.com/utafrali/storefront/internal/dto"
)

// CategoryHandler handles HTTP requests for /api/v1/categories.
type CategoryHandler struct {
	*crudHandler[dto.CategoryDTO]
}

// NewCategoryHandler creates a new category HTTP handler.
func NewCategoryHandler(svc DTOService[dto.CategoryDTO], logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{&crudHandler[dto.CategoryDTO]{
		service: svc,
		setID:   func(d *dto.CategoryDTO, id int64) { d.ID = id },
		logger:  logger,
	}}
}

// ProductHandler handles HTTP requests for /api/v1/products.
type ProductHandler struct {
	*crudHandler[dto.ProductDTO]
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc DTOService[dto.ProductDTO], logger *slog.Logger) *ProductHandler {
	return &ProductHandler{&crudHandler[dto.ProductDTO]{
		service: svc,
		setID:   func(d *dto.ProductDTO, id int64) { d.ID = id },
		logger:  logger,
	}}
}

// ShirtHandler handles HTTP requests for /api/v1/shirts.
type ShirtHandler struct {
	*crudHandler[dto.ShirtDTO]
}

// NewShirtHandler creates a new shirt HTTP handler.
func NewShirtHandler(svc DTOService[dto.ShirtDTO], logger *slog.Logger) *ShirtHandler {
	return &ShirtHandler{&crudHandler[dto.ShirtDTO]{
		service: svc,
		setID:   func(d *dto.ShirtDTO, id int64) { d.ID = id },
		logger:  logger,
	}}
}
