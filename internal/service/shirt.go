package service

import (
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
	"github.com/utafrali/storefront/internal/mapper"
	"github.com/utafrali/storefront/internal/repository"
)

// ShirtDTOService serves shirts as DTOs.
type ShirtDTOService struct {
	*crudService[domain.Shirt, dto.ShirtDTO]
}

// NewShirtDTOService creates a new shirt DTO service.
func NewShirtDTOService(
	repo repository.ShirtRepository,
	m mapper.Mapper[domain.Shirt, dto.ShirtDTO],
	publisher EventPublisher,
	logger *slog.Logger,
) *ShirtDTOService {
	return &ShirtDTOService{
		crudService: &crudService[domain.Shirt, dto.ShirtDTO]{
			resource:  "shirt",
			repo:      repo,
			mapper:    m,
			publisher: publisher,
			newErr:    domain.NewShirtError,
			logger:    logger,
		},
	}
}
