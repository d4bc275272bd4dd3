package listing

import (
	"strings"
	"testing"

	"otobiznes/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func sampleAds() []*entity.Ad {
	return []*entity.Ad{
		{ID: 1, Title: "Domowe dżemy truskawkowe", Address: "Kraków", Description: "Pyszne, bez konserwantów.", CategoryIDs: []int64{1}, Status: true},
		{ID: 2, Title: "Naprawa rowerów", Address: "Warszawa", Description: "Szybko i tanio, dojazd do klienta.", CategoryIDs: []int64{2}, Status: true},
		{ID: 3, Title: "Korepetycje z matematyki", Address: "Online", Description: "Szkoła podstawowa i liceum.", CategoryIDs: []int64{3, 2}, Status: false},
		{ID: 4, Title: "Sprzedam miód lipowy", Address: "Poznań", Description: "Z własnej pasieki.", CategoryIDs: []int64{1}, Status: true},
		{ID: 5, Title: "Usługi hydrauliczne", Address: "Gdańsk", Description: "Awaryjne otwieranie rur.", Status: true},
	}
}

func ids(ads []*entity.Ad) []int64 {
	out := make([]int64, 0, len(ads))
	for _, ad := range ads {
		out = append(out, ad.ID)
	}

	return out
}

func TestFilterAds_ByCategory(t *testing.T) {
	ads := sampleAds()

	for _, categoryID := range []int64{1, 2, 3, 9} {
		got := FilterAds(ads, AdFilter{CategoryID: categoryID})
		for _, ad := range got {
			assert.True(t, ad.HasCategory(categoryID), "ad %d lacks category %d", ad.ID, categoryID)
		}
	}

	assert.Equal(t, []int64{2, 3}, ids(FilterAds(ads, AdFilter{CategoryID: 2})))
	assert.Empty(t, FilterAds(ads, AdFilter{CategoryID: 9}))
}

func TestFilterAds_BySearch(t *testing.T) {
	ads := sampleAds()

	tests := []struct {
		term string
		want []int64
	}{
		{"ROWER", []int64{2}},
		{"kraków", []int64{1}},
		{"  pasieki ", []int64{4}},
		{"GDAŃSK", []int64{5}},
		{"o", []int64{1, 2, 3, 4, 5}},
		{"", []int64{1, 2, 3, 4, 5}},
		{"nic takiego", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := FilterAds(ads, AdFilter{Search: tt.term})
			assert.Equal(t, tt.want, ids(got))

			needle := strings.ToLower(strings.TrimSpace(tt.term))
			for _, ad := range got {
				haystack := strings.ToLower(ad.Title + "\x00" + ad.Description + "\x00" + ad.Address)
				assert.Contains(t, haystack, needle)
			}
		})
	}
}

func TestFilterAds_Combined(t *testing.T) {
	got := FilterAds(sampleAds(), AdFilter{Search: "a", CategoryID: 2, OnlyApproved: true})

	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilterAds_SkipsNil(t *testing.T) {
	got := FilterAds([]*entity.Ad{nil, {ID: 1}}, AdFilter{})

	assert.Equal(t, []int64{1}, ids(got))
}

func TestPendingAds(t *testing.T) {
	assert.Equal(t, []int64{3}, ids(PendingAds(sampleAds())))
}
