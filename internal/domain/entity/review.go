package entity

import "time"

const (
	// MinRating is the lowest accepted review rating.
	MinRating = 1
	// MaxRating is the highest accepted review rating.
	MaxRating = 5
)

// Review is an anonymous opinion about an ad.
type Review struct {
	ID          int64     `json:"review_id,omitempty"`
	AdID        int64     `json:"ad_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}
