package domain

import (
	"fmt"

	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// Processing error kinds. Each wraps errors.ErrProcessingFailed.
var (
	ErrCategoryProcessing = fmt.Errorf("category: %w", apperrors.ErrProcessingFailed)
	ErrProductProcessing  = fmt.Errorf("product: %w", apperrors.ErrProcessingFailed)
	ErrReviewProcessing   = fmt.Errorf("review: %w", apperrors.ErrProcessingFailed)
	ErrShirtProcessing    = fmt.Errorf("shirt: %w", apperrors.ErrProcessingFailed)
)

// NewCategoryError reports a category payload that could not become an entity.
func NewCategoryError() *apperrors.AppError {
	return apperrors.ProcessingFailed("category", ErrCategoryProcessing)
}

// NewProductError reports a product payload that could not become an entity.
func NewProductError() *apperrors.AppError {
	return apperrors.ProcessingFailed("product", ErrProductProcessing)
}

// NewReviewError reports a review payload that could not become an entity.
func NewReviewError() *apperrors.AppError {
	return apperrors.ProcessingFailed("review", ErrReviewProcessing)
}

// NewShirtError reports a shirt payload that could not become an entity.
func NewShirtError() *apperrors.AppError {
	return apperrors.ProcessingFailed("shirt", ErrShirtProcessing)
}
