package mapper

import (
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
)

// ReviewMapper maps reviews. The embedded product is mapped on the way out only.
type ReviewMapper struct {
	products ProductMapper
}

var _ Mapper[domain.Review, dto.ReviewDTO] = ReviewMapper{}

// NewReviewMapper creates a ReviewMapper.
func NewReviewMapper() ReviewMapper { return ReviewMapper{} }

// ToDTO maps a review and its embedded product, if any. A nil review maps to nil.
func (m ReviewMapper) ToDTO(r *domain.Review) *dto.ReviewDTO {
	if r == nil {
		return nil
	}
	return &dto.ReviewDTO{
		ID:        r.ID,
		Comment:   r.Comment,
		Image:     r.Image,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		ProductID: r.ProductID,
		Product:   m.products.ToDTO(r.Product),
	}
}

// ToDTOs maps a slice of reviews. The result is never nil.
func (m ReviewMapper) ToDTOs(reviews []domain.Review) []dto.ReviewDTO {
	return mapAll(reviews, m.ToDTO)
}

// ToEntity builds a review from d, or returns nil when d is nil or invalid.
func (ReviewMapper) ToEntity(d *dto.ReviewDTO) *domain.Review {
	if !valid(d) {
		return nil
	}
	return domain.NewReview(d.ID, d.Comment, d.Image, d.Rating, d.CreatedAt, d.ProductID)
}
