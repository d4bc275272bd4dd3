package listing

import (
	"strings"

	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"

	"github.com/pkg/errors"
)

// DefaultRating is preselected in the review form.
const DefaultRating = entity.MaxRating

// ReviewForm is the raw review input of a visitor.
type ReviewForm struct {
	AdID        int64
	Title       string
	Description string
	Rating      int
}

// ValidateReview trims the form and turns it into a review ready to send.
// It must pass before any network call is made.
func ValidateReview(form ReviewForm) (*entity.Review, error) {
	title := strings.TrimSpace(form.Title)
	description := strings.TrimSpace(form.Description)

	if title == "" || description == "" {
		return nil, errors.WithStack(domainerrors.ErrReviewIncomplete)
	}

	if form.Rating < entity.MinRating || form.Rating > entity.MaxRating {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5"))
	}

	if form.AdID <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("missing ad id"))
	}

	return &entity.Review{
		AdID:        form.AdID,
		Title:       title,
		Description: description,
		Rating:      float64(form.Rating),
	}, nil
}
