package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

const shirtColumns = `id, product_id, main_features, other_features, created_at, updated_at`

// ShirtRepository implements repository.ShirtRepository using PostgreSQL.
// Feature groups are stored as nullable JSONB columns.
type ShirtRepository struct {
	pool database.DBTX
}

var _ repository.ShirtRepository = (*ShirtRepository)(nil)

// NewShirtRepository creates a new PostgreSQL-backed shirt repository.
func NewShirtRepository(pool database.DBTX) *ShirtRepository {
	return &ShirtRepository{pool: pool}
}

// marshalFeatures encodes v as JSONB, or SQL NULL when v is a nil pointer.
func marshalFeatures[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalFeatures[T any](raw []byte) (*T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanShirt(row pgx.Row) (*domain.Shirt, error) {
	var (
		s           domain.Shirt
		main, other []byte
	)
	if err := row.Scan(&s.ID, &s.ProductID, &main, &other, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if s.MainFeatures, err = unmarshalFeatures[domain.MainFeatures](main); err != nil {
		return nil, fmt.Errorf("unmarshal main features: %w", err)
	}
	if s.OtherFeatures, err = unmarshalFeatures[domain.OtherFeatures](other); err != nil {
		return nil, fmt.Errorf("unmarshal other features: %w", err)
	}
	return &s, nil
}

// GetEntities returns all shirts ordered by ID.
func (r *ShirtRepository) GetEntities(ctx context.Context) (shirts []domain.Shirt, err error) {
	query := `SELECT ` + shirtColumns + ` FROM shirts ORDER BY id ASC`

	ctx, end := database.TraceQuery(ctx, "ListShirts", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shirts: %w", err)
	}
	defer rows.Close()

	shirts = []domain.Shirt{}
	for rows.Next() {
		s, err := scanShirt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shirt row: %w", err)
		}
		shirts = append(shirts, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shirt rows: %w", err)
	}

	return shirts, nil
}

// GetByID retrieves a shirt by its ID.
func (r *ShirtRepository) GetByID(ctx context.Context, id int64) (_ *domain.Shirt, err error) {
	query := `SELECT ` + shirtColumns + ` FROM shirts WHERE id = $1`

	ctx, end := database.TraceQuery(ctx, "GetShirt", query)
	defer func() { end(err) }()

	s, err := scanShirt(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("shirt", id)
		}
		return nil, fmt.Errorf("get shirt: %w", err)
	}

	return s, nil
}

// Create inserts a new shirt. A product has at most one shirt.
func (r *ShirtRepository) Create(ctx context.Context, s *domain.Shirt) (err error) {
	query := `
		INSERT INTO shirts (product_id, main_features, other_features)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	ctx, end := database.TraceQuery(ctx, "CreateShirt", query)
	defer func() { end(err) }()

	main, other, err := encodeShirtFeatures(s)
	if err != nil {
		return err
	}

	err = r.pool.QueryRow(ctx, query, s.ProductID, main, other).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return r.writeError("insert shirt", s, err)
	}

	return nil
}

// Update replaces the product reference and both feature groups.
func (r *ShirtRepository) Update(ctx context.Context, s *domain.Shirt) (err error) {
	query := `
		UPDATE shirts
		SET product_id = $2, main_features = $3, other_features = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	ctx, end := database.TraceQuery(ctx, "UpdateShirt", query)
	defer func() { end(err) }()

	main, other, err := encodeShirtFeatures(s)
	if err != nil {
		return err
	}

	err = r.pool.QueryRow(ctx, query, s.ID, s.ProductID, main, other).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("shirt", s.ID)
		}
		return r.writeError("update shirt", s, err)
	}

	return nil
}

// Delete removes a shirt.
func (r *ShirtRepository) Delete(ctx context.Context, s *domain.Shirt) (err error) {
	query := `DELETE FROM shirts WHERE id = $1`

	ctx, end := database.TraceQuery(ctx, "DeleteShirt", query)
	defer func() { end(err) }()

	tag, err := r.pool.Exec(ctx, query, s.ID)
	if err != nil {
		return fmt.Errorf("delete shirt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("shirt", s.ID)
	}

	return nil
}

func encodeShirtFeatures(s *domain.Shirt) (main, other []byte, err error) {
	if main, err = marshalFeatures(s.MainFeatures); err != nil {
		return nil, nil, fmt.Errorf("marshal main features: %w", err)
	}
	if other, err = marshalFeatures(s.OtherFeatures); err != nil {
		return nil, nil, fmt.Errorf("marshal other features: %w", err)
	}
	return main, other, nil
}

func (r *ShirtRepository) writeError(op string, s *domain.Shirt, err error) error {
	switch {
	case isUniqueViolation(err):
		return apperrors.AlreadyExists("shirt", "product_id", fmt.Sprint(s.ProductID))
	case isForeignKeyViolation(err):
		return apperrors.InvalidInput(fmt.Sprintf("product %d does not exist", s.ProductID))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
