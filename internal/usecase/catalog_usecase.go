package usecase

import (
	"context"

	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/listing"
)

// HomeQuery holds the search box and category select of the home page.
type HomeQuery struct {
	Search     string `query:"search"`
	CategoryID int64  `query:"category_id"`
}

// HomePage is everything the home page renders.
type HomePage struct {
	Query      HomeQuery
	Categories entity.Categories
	Ads        []*entity.Ad
}

// AdPage is everything the ad details page renders.
type AdPage struct {
	Ad         *entity.Ad
	Business   *entity.BusinessProfile
	Categories entity.Categories
	Reviews    []*entity.Review
	Rating     listing.RatingSummary
}

// BusinessPage is everything the business page renders.
type BusinessPage struct {
	Business *entity.BusinessProfile
	Ads      []*entity.Ad
}

// CatalogUsecase serves the public pages.
type CatalogUsecase interface {
	// Home lists approved ads matching the query together with all categories.
	Home(ctx context.Context, query HomeQuery) (*HomePage, error)

	// Ad loads an ad with its business, reviews and rating summary.
	Ad(ctx context.Context, id int64) (*AdPage, error)

	// Business loads a business with its approved ads.
	Business(ctx context.Context, id int64) (*BusinessPage, error)

	// SubmitReview validates the form before posting it.
	SubmitReview(ctx context.Context, form listing.ReviewForm) (*entity.Review, error)

	// BusinessContactQR renders the tel: link of a business as a PNG QR code.
	BusinessContactQR(ctx context.Context, id int64) ([]byte, error)
}
