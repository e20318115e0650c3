package service

import (
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
	"github.com/utafrali/storefront/internal/mapper"
	"github.com/utafrali/storefront/internal/repository"
)

// CategoryDTOService serves categories as DTOs.
type CategoryDTOService struct {
	*crudService[domain.Category, dto.CategoryDTO]
}

// NewCategoryDTOService creates a new category DTO service.
func NewCategoryDTOService(
	repo repository.CategoryRepository,
	m mapper.Mapper[domain.Category, dto.CategoryDTO],
	publisher EventPublisher,
	logger *slog.Logger,
) *CategoryDTOService {
	return &CategoryDTOService{
		crudService: &crudService[domain.Category, dto.CategoryDTO]{
			resource:  "category",
			repo:      repo,
			mapper:    m,
			publisher: publisher,
			newErr:    domain.NewCategoryError,
			logger:    logger,
		},
	}
}
