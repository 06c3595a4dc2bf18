package domain

import "time"

// Rating bounds accepted for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a consumer rating of a product.
type Review struct {
	ID            int64
	ProductID     ProductID
	ConsumerEmail string
	Rating        int
	Comment       *string
	ReviewDate    time.Time
}
