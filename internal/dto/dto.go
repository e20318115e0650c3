// Package dto holds the wire shapes of catalog resources. The validate tags
// decide whether a payload can become a domain entity.
package dto

import "time"

// CategoryDTO is the wire form of a category.
type CategoryDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,min=1,max=255"`
	Slug      string    `json:"slug" validate:"max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductDTO is the wire form of a product.
type ProductDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name" validate:"required,min=1,max=255"`
	Slug        string       `json:"slug" validate:"max=255"`
	Description string       `json:"description" validate:"max=5000"`
	Price       int64        `json:"price" validate:"gte=0"`
	Stock       int          `json:"stock" validate:"gte=0"`
	Image       string       `json:"image" validate:"max=2048"`
	Status      string       `json:"status" validate:"omitempty,oneof=draft published archived"`
	CategoryID  int64        `json:"category_id" validate:"gt=0"`
	Category    *CategoryDTO `json:"category,omitempty" validate:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ReviewDTO is the wire form of a review.
type ReviewDTO struct {
	ID        int64       `json:"id"`
	Comment   string      `json:"comment" validate:"required,max=1000"`
	Image     string      `json:"image" validate:"max=2048"`
	Rating    int         `json:"rating" validate:"min=1,max=5"`
	CreatedAt time.Time   `json:"created_at"`
	ProductID int64       `json:"product_id" validate:"gt=0"`
	Product   *ProductDTO `json:"product,omitempty" validate:"-"`
}

// MainFeaturesDTO carries the identifying attributes of a shirt.
type MainFeaturesDTO struct {
	Brand  string `json:"brand" validate:"required,max=100"`
	Model  string `json:"model" validate:"max=100"`
	Gender string `json:"gender" validate:"omitempty,oneof=men women unisex kids"`
	Color  string `json:"color" validate:"max=50"`
	Size   string `json:"size" validate:"omitempty,oneof=XS S M L XL XXL"`
}

// OtherFeaturesDTO carries the secondary attributes of a shirt.
type OtherFeaturesDTO struct {
	Material string `json:"material" validate:"max=50"`
	Sleeve   string `json:"sleeve" validate:"max=50"`
	Collar   string `json:"collar" validate:"max=50"`
	Fit      string `json:"fit" validate:"max=50"`
	Pattern  string `json:"pattern" validate:"max=50"`
}

// ShirtDTO is the wire form of a shirt. Either feature group may be absent.
type ShirtDTO struct {
	ID            int64             `json:"id"`
	ProductID     int64             `json:"product_id" validate:"gt=0"`
	MainFeatures  *MainFeaturesDTO  `json:"main_features,omitempty"`
	OtherFeatures *OtherFeaturesDTO `json:"other_features,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
