package service

import (
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
	"github.com/utafrali/storefront/internal/mapper"
	"github.com/utafrali/storefront/internal/repository"
)

// ProductDTOService serves products as DTOs.
type ProductDTOService struct {
	*crudService[domain.Product, dto.ProductDTO]
}

// NewProductDTOService creates a new product DTO service.
func NewProductDTOService(
	repo repository.ProductRepository,
	m mapper.Mapper[domain.Product, dto.ProductDTO],
	publisher EventPublisher,
	logger *slog.Logger,
) *ProductDTOService {
	return &ProductDTOService{
		crudService: &crudService[domain.Product, dto.ProductDTO]{
			resource:  "product",
			repo:      repo,
			mapper:    m,
			publisher: publisher,
			newErr:    domain.NewProductError,
			logger:    logger,
		},
	}
}
