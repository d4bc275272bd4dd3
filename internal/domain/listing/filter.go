// Package listing holds the client-side derivations applied to fetched listings:
// ad filtering, rating summaries and review form checks.
package listing

import (
	"strings"

	"otobiznes/internal/domain/entity"
)

// AdFilter narrows a list of ads. Zero values disable the matching criterion.
type AdFilter struct {
	Search       string
	CategoryID   int64
	OnlyApproved bool
}

// FilterAds returns the ads matching every criterion of the filter, in input order.
func FilterAds(ads []*entity.Ad, filter AdFilter) []*entity.Ad {
	term := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]*entity.Ad, 0, len(ads))
	for _, ad := range ads {
		if ad == nil {
			continue
		}
		if filter.OnlyApproved && !ad.Status {
			continue
		}
		if filter.CategoryID != 0 && !ad.HasCategory(filter.CategoryID) {
			continue
		}
		if term != "" && !matchesSearch(ad, term) {
			continue
		}
		result = append(result, ad)
	}

	return result
}

// matchesSearch expects term already lower-cased.
func matchesSearch(ad *entity.Ad, term string) bool {
	for _, field := range []string{ad.Title, ad.Description, ad.Address} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// PendingAds returns the ads waiting for admin approval.
func PendingAds(ads []*entity.Ad) []*entity.Ad {
	result := make([]*entity.Ad, 0)
	for _, ad := range ads {
		if ad != nil && !ad.Status {
			result = append(result, ad)
		}
	}

	return result
}
