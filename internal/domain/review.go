package domain

import "time"

// Review is a customer review of a product.
type Review struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	Image     string    `json:"image"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	ProductID int64     `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
}

// NewReview builds a review from all of its fields.
func NewReview(id int64, comment, image string, rating int, createdAt time.Time, productID int64) *Review {
	return &Review{
		ID:        id,
		Comment:   comment,
		Image:     image,
		Rating:    rating,
		CreatedAt: createdAt,
		ProductID: productID,
	}
}

func (r Review) EntityID() int64 { return r.ID }
