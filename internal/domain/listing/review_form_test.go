package listing

import (
	"testing"

	domainerrors "otobiznes/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReview_Success(t *testing.T) {
	review, err := ValidateReview(ReviewForm{AdID: 3, Title: "  Polecam ", Description: " Szybko i solidnie\n", Rating: 4})

	require.NoError(t, err)
	assert.Equal(t, int64(3), review.AdID)
	assert.Equal(t, "Polecam", review.Title)
	assert.Equal(t, "Szybko i solidnie", review.Description)
	assert.Equal(t, 4.0, review.Rating)
}

func TestValidateReview_Incomplete(t *testing.T) {
	tests := []ReviewForm{
		{AdID: 1, Title: "", Description: "opis", Rating: 5},
		{AdID: 1, Title: "tytuł", Description: "", Rating: 5},
		{AdID: 1, Title: "   ", Description: "\t", Rating: 5},
	}

	for _, form := range tests {
		review, err := ValidateReview(form)
		assert.Nil(t, review)
		assert.True(t, errors.Is(err, domainerrors.ErrReviewIncomplete))
	}
}

func TestValidateReview_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		_, err := ValidateReview(ReviewForm{AdID: 1, Title: "a", Description: "b", Rating: rating})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}
