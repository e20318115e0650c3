package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// productSelect joins the owning category so it can be embedded in the result.
const productSelect = `
	SELECT p.id, p.name, p.slug, p.description, p.price, p.stock, p.image, p.status,
	       p.category_id, p.created_at, p.updated_at,
	       c.id, c.name, c.slug, c.created_at, c.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p domain.Product
		c domain.Category
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Stock, &p.Image, &p.Status,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Category = &c
	return &p, nil
}

// GetEntities returns all products, newest first.
func (r *ProductRepository) GetEntities(ctx context.Context) (products []domain.Product, err error) {
	query := productSelect + ` ORDER BY p.created_at DESC, p.id DESC`

	ctx, end := database.TraceQuery(ctx, "ListProducts", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products = []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// GetByID retrieves a product and its category.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (_ *domain.Product, err error) {
	query := productSelect + ` WHERE p.id = $1`

	ctx, end := database.TraceQuery(ctx, "GetProduct", query)
	defer func() { end(err) }()

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return p, nil
}

// Create inserts a new product and sets its generated fields.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (err error) {
	query := `
		INSERT INTO products (name, slug, description, price, stock, image, status, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	ctx, end := database.TraceQuery(ctx, "CreateProduct", query)
	defer func() { end(err) }()

	err = r.pool.QueryRow(ctx, query,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.Stock,
		p.Image,
		p.Status,
		p.CategoryID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return r.writeError("insert product", p, err)
	}

	return nil
}

// Update overwrites every mutable column of an existing product.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (err error) {
	query := `
		UPDATE products
		SET name = $2, slug = $3, description = $4, price = $5, stock = $6,
		    image = $7, status = $8, category_id = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	ctx, end := database.TraceQuery(ctx, "UpdateProduct", query)
	defer func() { end(err) }()

	err = r.pool.QueryRow(ctx, query,
		p.ID,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.Stock,
		p.Image,
		p.Status,
		p.CategoryID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("product", p.ID)
		}
		return r.writeError("update product", p, err)
	}

	return nil
}

// Delete removes a product together with its reviews and shirt.
func (r *ProductRepository) Delete(ctx context.Context, p *domain.Product) (err error) {
	query := `DELETE FROM products WHERE id = $1`

	ctx, end := database.TraceQuery(ctx, "DeleteProduct", query)
	defer func() { end(err) }()

	tag, err := r.pool.Exec(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

func (r *ProductRepository) writeError(op string, p *domain.Product, err error) error {
	switch {
	case isUniqueViolation(err):
		return apperrors.AlreadyExists("product", "slug", p.Slug)
	case isForeignKeyViolation(err):
		return apperrors.InvalidInput(fmt.Sprintf("category %d does not exist", p.CategoryID))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
