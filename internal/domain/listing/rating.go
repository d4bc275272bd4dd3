package listing

import (
	"math"

	"otobiznes/internal/domain/entity"
)

// RatingSummary is the average rating of an ad and the number of reviews behind it.
type RatingSummary struct {
	Average float64
	Count   int
}

// Summarize folds the ratings of the given reviews into a running average.
func Summarize(reviews []*entity.Review) RatingSummary {
	var summary RatingSummary
	for _, r := range reviews {
		if r == nil {
			continue
		}
		summary = summary.Add(r.Rating)
	}

	return summary
}

// Add returns the summary after one more review with the given rating:
// (A·N + R) / (N+1).
func (s RatingSummary) Add(rating float64) RatingSummary {
	n := float64(s.Count)

	return RatingSummary{
		Average: (s.Average*n + rating) / (n + 1),
		Count:   s.Count + 1,
	}
}

// Stars returns the average rounded to whole stars for display.
func (s RatingSummary) Stars() int {
	return int(math.Round(s.Average))
}

// ReviewDeclension returns the Polish noun form for a number of reviews.
func ReviewDeclension(count int) string {
	switch {
	case count == 1:
		return "recenzja"
	case count >= 2 && count <= 4:
		return "recenzje"
	default:
		return "recenzji"
	}
}
