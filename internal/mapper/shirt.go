package mapper

import (
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/dto"
)

// ShirtMapper maps shirts. Absent feature groups stay absent in both directions.
type ShirtMapper struct{}

var _ Mapper[domain.Shirt, dto.ShirtDTO] = ShirtMapper{}

// NewShirtMapper creates a ShirtMapper.
func NewShirtMapper() ShirtMapper { return ShirtMapper{} }

// ToDTO maps a shirt and whichever feature groups it has. A nil shirt maps to nil.
func (ShirtMapper) ToDTO(s *domain.Shirt) *dto.ShirtDTO {
	if s == nil {
		return nil
	}
	out := &dto.ShirtDTO{
		ID:        s.ID,
		ProductID: s.ProductID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if f := s.MainFeatures; f != nil {
		out.MainFeatures = &dto.MainFeaturesDTO{
			Brand:  f.Brand,
			Model:  f.Model,
			Gender: f.Gender,
			Color:  f.Color,
			Size:   f.Size,
		}
	}
	if f := s.OtherFeatures; f != nil {
		out.OtherFeatures = &dto.OtherFeaturesDTO{
			Material: f.Material,
			Sleeve:   f.Sleeve,
			Collar:   f.Collar,
			Fit:      f.Fit,
			Pattern:  f.Pattern,
		}
	}
	return out
}

// ToDTOs maps a slice of shirts. The result is never nil.
func (m ShirtMapper) ToDTOs(shirts []domain.Shirt) []dto.ShirtDTO {
	return mapAll(shirts, m.ToDTO)
}

// ToEntity builds a shirt from d, or returns nil when d is nil or invalid.
func (ShirtMapper) ToEntity(d *dto.ShirtDTO) *domain.Shirt {
	if !valid(d) {
		return nil
	}
	out := &domain.Shirt{
		ID:        d.ID,
		ProductID: d.ProductID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if f := d.MainFeatures; f != nil {
		out.MainFeatures = &domain.MainFeatures{
			Brand:  f.Brand,
			Model:  f.Model,
			Gender: f.Gender,
			Color:  f.Color,
			Size:   f.Size,
		}
	}
	if f := d.OtherFeatures; f != nil {
		out.OtherFeatures = &domain.OtherFeatures{
			Material: f.Material,
			Sleeve:   f.Sleeve,
			Collar:   f.Collar,
			Fit:      f.Fit,
			Pattern:  f.Pattern,
		}
	}
	return out
}
