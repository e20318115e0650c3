package mapper

import (
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
	"github.com/utafrali/storefront/pkg/slug"
)

// CategoryMapper maps categories.
type CategoryMapper struct{}

var _ Mapper[domain.Category, dto.CategoryDTO] = CategoryMapper{}

// NewCategoryMapper creates a CategoryMapper.
func NewCategoryMapper() CategoryMapper { return CategoryMapper{} }

// ToDTO maps a category. A nil category maps to nil.
func (CategoryMapper) ToDTO(c *domain.Category) *dto.CategoryDTO {
	if c == nil {
		return nil
	}
	return &dto.CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToDTOs maps a slice of categories. The result is never nil.
func (m CategoryMapper) ToDTOs(categories []domain.Category) []dto.CategoryDTO {
	return mapAll(categories, m.ToDTO)
}

// ToEntity derives the slug from the name unless one is given.
func (CategoryMapper) ToEntity(d *dto.CategoryDTO) *domain.Category {
	if !valid(d) {
		return nil
	}
	s := slugFor(d.Slug, d.Name)
	if s == "" {
		return nil
	}
	return &domain.Category{
		ID:        d.ID,
		Name:      d.Name,
		Slug:      s,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func slugFor(given, name string) string {
	if given != "" {
		return slug.Generate(given)
	}
	return slug.Generate(name)
}
