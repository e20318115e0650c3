package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
	"github.com/utafrali/storefront/internal/mapper"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/pagination"
)

// ReviewDTOService serves reviews as DTOs.
type ReviewDTOService struct {
	*crudService[domain.Review, dto.ReviewDTO]
	reviews repository.ReviewRepository
}

// NewReviewDTOService creates a new review DTO service.
func NewReviewDTOService(
	repo repository.ReviewRepository,
	m mapper.Mapper[domain.Review, dto.ReviewDTO],
	publisher EventPublisher,
	logger *slog.Logger,
) *ReviewDTOService {
	return &ReviewDTOService{
		crudService: &crudService[domain.Review, dto.ReviewDTO]{
			resource:  "review",
			repo:      repo,
			mapper:    m,
			publisher: publisher,
			newErr:    domain.NewReviewError,
			logger:    logger,
		},
		reviews: repo,
	}
}

// GetByProductID returns one page of a product's reviews, newest first.
func (s *ReviewDTOService) GetByProductID(ctx context.Context, productID int64, p pagination.Params) (pagination.Result[dto.ReviewDTO], error) {
	reviews, total, err := s.reviews.GetByProductID(ctx, productID, p.PerPage, p.Offset())
	if err != nil {
		return pagination.Result[dto.ReviewDTO]{}, fmt.Errorf("get reviews by product: %w", err)
	}
	return pagination.NewResult(s.mapper.ToDTOs(reviews), total, p), nil
}
