package domain

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func TestValidStatuses_ContainsAll(t *testing.T) {
	expected := []string{ProductStatusDraft, ProductStatusPublished, ProductStatusArchived}
	assert.ElementsMatch(t, expected, ValidStatuses())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses() {
		assert.True(t, IsValidStatus(s), "expected %q to be valid", s)
	}
	assert.False(t, IsValidStatus("unknown"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("DRAFT"))
}

func TestNewReview(t *testing.T) {
	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewReview(1, "Great product!", "image.jpg", 1, date, 1)

	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, "Great product!", r.Comment)
	assert.Equal(t, "image.jpg", r.Image)
	assert.Equal(t, 1, r.Rating)
	assert.Equal(t, date, r.CreatedAt)
	assert.Equal(t, int64(1), r.ProductID)
	assert.Nil(t, r.Product)
}

func TestEntityID(t *testing.T) {
	entities := []Entity{
		Category{ID: 1},
		Product{ID: 2},
		Review{ID: 3},
		Shirt{ID: 4},
	}
	for i, e := range entities {
		assert.Equal(t, int64(i+1), e.EntityID())
	}
}

func TestProcessingErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.AppError
		kind error
		code string
	}{
		{"category", NewCategoryError(), ErrCategoryProcessing, "CATEGORY_PROCESSING_FAILED"},
		{"product", NewProductError(), ErrProductProcessing, "PRODUCT_PROCESSING_FAILED"},
		{"review", NewReviewError(), ErrReviewProcessing, "REVIEW_PROCESSING_FAILED"},
		{"shirt", NewShirtError(), ErrShirtProcessing, "SHIRT_PROCESSING_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, "An unexpected error occurred while processing the request.", tt.err.Message)
			assert.Equal(t, http.StatusUnprocessableEntity, tt.err.Status)
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.True(t, errors.Is(tt.err, apperrors.ErrProcessingFailed))
		})
	}

	assert.False(t, errors.Is(NewReviewError(), ErrProductProcessing))
}
