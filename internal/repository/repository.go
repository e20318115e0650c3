package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// Repository is the persistence contract shared by every catalog entity.
// GetByID returns an error wrapping errors.ErrNotFound when no row matches.
type Repository[T any] interface {
	// GetEntities returns every stored entity.
	GetEntities(ctx context.Context) ([]T, error)

	// GetByID retrieves an entity by its identifier.
	GetByID(ctx context.Context, id int64) (*T, error)

	// Create inserts entity and fills in its generated ID and timestamps.
	Create(ctx context.Context, entity *T) error

	// Update overwrites the stored entity with the same ID.
	Update(ctx context.Context, entity *T) error

	// Delete removes entity from the store.
	Delete(ctx context.Context, entity *T) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Repository[domain.Category]
}

// ProductRepository persists products.
type ProductRepository interface {
	Repository[domain.Product]
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	Repository[domain.Review]

	// GetByProductID returns one page of a product's reviews, newest first,
	// along with the product's total review count.
	GetByProductID(ctx context.Context, productID int64, limit, offset int) ([]domain.Review, int, error)
}

// ShirtRepository persists shirts.
type ShirtRepository interface {
	Repository[domain.Shirt]
}
