package listing

import (
	"testing"

	"otobiznes/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, RatingSummary{}, Summarize(nil))

	summary := Summarize([]*entity.Review{{Rating: 5}, {Rating: 4}, nil, {Rating: 3}})

	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 1e-12)
	assert.Equal(t, 4, summary.Stars())
}

func TestRatingSummary_AddMatchesRunningAverage(t *testing.T) {
	averages := []float64{0, 1, 2.5, 3.3333333333333335, 4.2, 5}

	for n := 0; n <= 50; n++ {
		for _, a := range averages {
			if n == 0 && a != 0 {
				continue
			}
			for r := entity.MinRating; r <= entity.MaxRating; r++ {
				got := RatingSummary{Average: a, Count: n}.Add(float64(r))

				want := (a*float64(n) + float64(r)) / float64(n+1)
				assert.Equal(t, want, got.Average)
				assert.Equal(t, n+1, got.Count)
			}
		}
	}
}

func TestSummarize_MatchesAddingOneByOne(t *testing.T) {
	reviews := []*entity.Review{{Rating: 2}, {Rating: 5}, {Rating: 4}}

	want := RatingSummary{}.Add(2).Add(5).Add(4)

	assert.Equal(t, want, Summarize(reviews))
	assert.Equal(t, want.Add(1), Summarize(append(reviews, &entity.Review{Rating: 1})))
}

func TestRatingSummary_AddFromEmpty(t *testing.T) {
	got := RatingSummary{}.Add(4)

	assert.Equal(t, RatingSummary{Average: 4, Count: 1}, got)
}

func TestReviewDeclension(t *testing.T) {
	tests := map[int]string{
		0:  "recenzji",
		1:  "recenzja",
		2:  "recenzje",
		4:  "recenzje",
		5:  "recenzji",
		12: "recenzji",
	}

	for count, want := range tests {
		assert.Equal(t, want, ReviewDeclension(count), "count %d", count)
	}
}
