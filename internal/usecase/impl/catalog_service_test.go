package impl

import (
	"context"
	"testing"

	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/listing"
	"otobiznes/internal/domain/service"
	mockService "otobiznes/internal/mocks/service"
	"otobiznes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogDeps struct {
	ads        *mockService.MockAdService
	businesses *mockService.MockBusinessService
	categories *mockService.MockCategoryService
	reviews    *mockService.MockReviewService
	qrcode     *mockService.MockQRCodeService
}

func newTestCatalogService(t *testing.T) (usecase.CatalogUsecase, catalogDeps) {
	deps := catalogDeps{
		ads:        mockService.NewMockAdService(t),
		businesses: mockService.NewMockBusinessService(t),
		categories: mockService.NewMockCategoryService(t),
		reviews:    mockService.NewMockReviewService(t),
		qrcode:     mockService.NewMockQRCodeService(t),
	}

	return NewCatalogService(CatalogServiceParams{
		Ads:        deps.ads,
		Businesses: deps.businesses,
		Categories: deps.categories,
		Reviews:    deps.reviews,
		QRCode:     deps.qrcode,
		Logger:     newDiscardLogger(),
	}), deps
}

func TestCatalogService_Home(t *testing.T) {
	ctx := context.Background()
	categories := entity.Categories{{ID: 1, Name: "Dom"}, {ID: 2, Name: "Auto"}}
	ads := []*entity.Ad{
		{ID: 1, Title: "Mechanik samochodowy", CategoryIDs: []int64{2}, Status: true},
		{ID: 2, Title: "Sprzątanie", CategoryIDs: []int64{1}, Status: true},
		{ID: 3, Title: "Mechanik rowerowy", CategoryIDs: []int64{2}, Status: false},
	}

	t.Run("filters are reapplied and pending ads hidden", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		deps.categories.EXPECT().List(mock.Anything).Return(categories, nil)
		deps.ads.EXPECT().List(mock.Anything, service.AdQuery{Search: "mechanik", CategoryID: 2}).Return(ads, nil)

		page, err := srv.Home(ctx, usecase.HomeQuery{Search: " mechanik ", CategoryID: 2})

		require.NoError(t, err)
		assert.Equal(t, categories, page.Categories)
		require.Len(t, page.Ads, 1)
		assert.Equal(t, int64(1), page.Ads[0].ID)
		assert.Equal(t, "mechanik", page.Query.Search)
	})

	t.Run("any failed fetch fails the page", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		deps.categories.EXPECT().List(mock.Anything).Return(nil, domainerrors.ErrAPIUnavailable)
		deps.ads.EXPECT().List(mock.Anything, service.AdQuery{}).Return(ads, nil).Maybe()

		page, err := srv.Home(ctx, usecase.HomeQuery{})

		assert.Nil(t, page)
		assert.ErrorIs(t, err, domainerrors.ErrAPIUnavailable)
	})
}

func TestCatalogService_Ad(t *testing.T) {
	ctx := context.Background()

	t.Run("joins business and reviews", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		ad := &entity.Ad{ID: 10, BusinessID: 3, Title: "Hydraulik"}
		business := &entity.BusinessProfile{ID: 3, Name: "Rury i spółka"}
		reviews := []*entity.Review{{ID: 1, Rating: 5}, {ID: 2, Rating: 4}}

		deps.ads.EXPECT().Get(ctx, int64(10)).Return(ad, nil)
		deps.businesses.EXPECT().Get(mock.Anything, int64(3)).Return(business, nil)
		deps.reviews.EXPECT().ListByAd(mock.Anything, int64(10)).Return(reviews, nil)
		deps.categories.EXPECT().List(mock.Anything).Return(entity.Categories{}, nil)

		page, err := srv.Ad(ctx, 10)

		require.NoError(t, err)
		assert.Same(t, ad, page.Ad)
		assert.Same(t, business, page.Business)
		assert.Equal(t, listing.RatingSummary{Average: 4.5, Count: 2}, page.Rating)
	})

	t.Run("ad without business skips the business fetch", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		deps.ads.EXPECT().Get(ctx, int64(11)).Return(&entity.Ad{ID: 11}, nil)
		deps.reviews.EXPECT().ListByAd(mock.Anything, int64(11)).Return(nil, nil)
		deps.categories.EXPECT().List(mock.Anything).Return(nil, nil)

		page, err := srv.Ad(ctx, 11)

		require.NoError(t, err)
		assert.Nil(t, page.Business)
		assert.Equal(t, 0, page.Rating.Count)
	})

	t.Run("missing ad", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		deps.ads.EXPECT().Get(ctx, int64(12)).Return(nil, domainerrors.ErrNotFound)

		_, err := srv.Ad(ctx, 12)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestCatalogService_Business(t *testing.T) {
	srv, deps := newTestCatalogService(t)
	business := &entity.BusinessProfile{ID: 3, Name: "Rury i spółka"}
	deps.businesses.EXPECT().Get(mock.Anything, int64(3)).Return(business, nil)
	deps.businesses.EXPECT().ListAds(mock.Anything, int64(3)).Return([]*entity.Ad{
		{ID: 1, Status: true},
		{ID: 2, Status: false},
	}, nil)

	page, err := srv.Business(context.Background(), 3)

	require.NoError(t, err)
	assert.Same(t, business, page.Business)
	require.Len(t, page.Ads, 1)
	assert.Equal(t, int64(1), page.Ads[0].ID)
}

func TestCatalogService_SubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("incomplete form makes no network call", func(t *testing.T) {
		srv, _ := newTestCatalogService(t)

		_, err := srv.SubmitReview(ctx, listing.ReviewForm{AdID: 1, Title: "  ", Description: "ok", Rating: 5})

		assert.ErrorIs(t, err, domainerrors.ErrReviewIncomplete)
		assert.Equal(t, "Wypełnij wszystkie pola", domainerrors.MessageOf(err))
	})

	t.Run("valid form is trimmed and posted", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		want := &entity.Review{AdID: 1, Title: "Polecam", Description: "Szybko i sprawnie", Rating: 4}
		deps.reviews.EXPECT().Create(ctx, want).Return(&entity.Review{ID: 9, AdID: 1}, nil)

		created, err := srv.SubmitReview(ctx, listing.ReviewForm{
			AdID: 1, Title: " Polecam ", Description: "Szybko i sprawnie\n", Rating: 4,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(9), created.ID)
	})
}

func TestCatalogService_BusinessContactQR(t *testing.T) {
	ctx := context.Background()

	t.Run("encodes the tel uri", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(&entity.BusinessProfile{ID: 3, Phone: "+48123456789"}, nil)
		deps.qrcode.EXPECT().GenerateContactQR("tel:+48123456789").Return([]byte("png"), nil)

		png, err := srv.BusinessContactQR(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("no phone number", func(t *testing.T) {
		srv, deps := newTestCatalogService(t)
		deps.businesses.EXPECT().Get(ctx, int64(4)).Return(&entity.BusinessProfile{ID: 4}, nil)

		_, err := srv.BusinessContactQR(ctx, 4)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
