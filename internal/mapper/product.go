package mapper

import (
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
)

// ProductMapper maps products. The embedded category is mapped on the way
// out only.
type ProductMapper struct {
	categories CategoryMapper
}

var _ Mapper[domain.Product, dto.ProductDTO] = ProductMapper{}

// NewProductMapper creates a ProductMapper.
func NewProductMapper() ProductMapper { return ProductMapper{} }

// ToDTO maps a product and its embedded category, if any. A nil product maps to nil.
func (m ProductMapper) ToDTO(p *domain.Product) *dto.ProductDTO {
	if p == nil {
		return nil
	}
	return &dto.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Status:      p.Status,
		CategoryID:  p.CategoryID,
		Category:    m.categories.ToDTO(p.Category),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToDTOs maps a slice of products. The result is never nil.
func (m ProductMapper) ToDTOs(products []domain.Product) []dto.ProductDTO {
	return mapAll(products, m.ToDTO)
}

// ToEntity defaults the status to draft and derives the slug from the name
// unless one is given.
func (ProductMapper) ToEntity(d *dto.ProductDTO) *domain.Product {
	if !valid(d) {
		return nil
	}
	s := slugFor(d.Slug, d.Name)
	if s == "" {
		return nil
	}
	status := d.Status
	if status == "" {
		status = domain.ProductStatusDraft
	}
	return &domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Slug:        s,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		Image:       d.Image,
		Status:      status,
		CategoryID:  d.CategoryID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
