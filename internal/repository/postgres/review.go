package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

const reviewColumns = `id, comment, image, rating, created_at, product_id`

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	pool database.DBTX
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool database.DBTX) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Comment, &rv.Image, &rv.Rating, &rv.CreatedAt, &rv.ProductID); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// GetEntities returns all reviews, newest first.
func (r *ReviewRepository) GetEntities(ctx context.Context) (_ []domain.Review, err error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC, id DESC`

	ctx, end := database.TraceQuery(ctx, "ListReviews", query)
	defer func() { end(err) }()

	return r.list(ctx, query)
}

// GetByProductID returns one page of a product's reviews, newest first, and
// the product's total review count.
func (r *ReviewRepository) GetByProductID(ctx context.Context, productID int64, limit, offset int) (_ []domain.Review, total int, err error) {
	countQuery := `SELECT COUNT(*) FROM reviews WHERE product_id = $1`
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`

	ctx, end := database.TraceQuery(ctx, "ListReviewsByProduct", query)
	defer func() { end(err) }()

	if err = r.pool.QueryRow(ctx, countQuery, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}
	if total == 0 {
		return []domain.Review{}, 0, nil
	}

	reviews, err := r.list(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetByID retrieves a review with the reviewed product embedded.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (_ *domain.Review, err error) {
	query := `
		SELECT r.id, r.comment, r.image, r.rating, r.created_at, r.product_id,
		       p.id, p.name, p.slug, p.description, p.price, p.stock, p.image, p.status,
		       p.category_id, p.created_at, p.updated_at
		FROM reviews r
		JOIN products p ON p.id = r.product_id
		WHERE r.id = $1`

	ctx, end := database.TraceQuery(ctx, "GetReview", query)
	defer func() { end(err) }()

	var (
		rv domain.Review
		p  domain.Product
	)
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.Comment, &rv.Image, &rv.Rating, &rv.CreatedAt, &rv.ProductID,
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Stock, &p.Image, &p.Status,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("review", id)
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	rv.Product = &p

	return &rv, nil
}

// Create inserts a new review. A zero CreatedAt is set to the current time.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (err error) {
	query := `
		INSERT INTO reviews (comment, image, rating, created_at, product_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	ctx, end := database.TraceQuery(ctx, "CreateReview", query)
	defer func() { end(err) }()

	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}

	err = r.pool.QueryRow(ctx, query, rv.Comment, rv.Image, rv.Rating, rv.CreatedAt, rv.ProductID).Scan(&rv.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.InvalidInput(fmt.Sprintf("product %d does not exist", rv.ProductID))
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// Update replaces the content of an existing review. The creation time is kept.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) (err error) {
	query := `
		UPDATE reviews
		SET comment = $2, image = $3, rating = $4, product_id = $5
		WHERE id = $1
		RETURNING created_at`

	ctx, end := database.TraceQuery(ctx, "UpdateReview", query)
	defer func() { end(err) }()

	err = r.pool.QueryRow(ctx, query, rv.ID, rv.Comment, rv.Image, rv.Rating, rv.ProductID).Scan(&rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("review", rv.ID)
		}
		if isForeignKeyViolation(err) {
			return apperrors.InvalidInput(fmt.Sprintf("product %d does not exist", rv.ProductID))
		}
		return fmt.Errorf("update review: %w", err)
	}

	return nil
}

// Delete removes a review.
func (r *ReviewRepository) Delete(ctx context.Context, rv *domain.Review) (err error) {
	query := `DELETE FROM reviews WHERE id = $1`

	ctx, end := database.TraceQuery(ctx, "DeleteReview", query)
	defer func() { end(err) }()

	tag, err := r.pool.Exec(ctx, query, rv.ID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("review", rv.ID)
	}

	return nil
}
