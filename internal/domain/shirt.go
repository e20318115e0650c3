package domain

import "time"

// MainFeatures are the identifying attributes of a shirt.
type MainFeatures struct {
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Gender string `json:"gender"`
	Color  string `json:"color"`
	Size   string `json:"size"`
}

// OtherFeatures are the secondary attributes of a shirt.
type OtherFeatures struct {
	Material string `json:"material"`
	Sleeve   string `json:"sleeve"`
	Collar   string `json:"collar"`
	Fit      string `json:"fit"`
	Pattern  string `json:"pattern"`
}

// Shirt is a fashion item attached to a product. Both feature groups are optional.
type Shirt struct {
	ID            int64          `json:"id"`
	ProductID     int64          `json:"product_id"`
	MainFeatures  *MainFeatures  `json:"main_features,omitempty"`
	OtherFeatures *OtherFeatures `json:"other_features,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (s Shirt) EntityID() int64 { return s.ID }
