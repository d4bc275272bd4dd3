package impl

import (
	"context"
	"testing"
	"time"

	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	mockService "otobiznes/internal/mocks/service"
	"otobiznes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountDeps struct {
	ads        *mockService.MockAdService
	businesses *mockService.MockBusinessService
	categories *mockService.MockCategoryService
}

func newTestAccountService(t *testing.T) (*accountService, accountDeps) {
	deps := accountDeps{
		ads:        mockService.NewMockAdService(t),
		businesses: mockService.NewMockBusinessService(t),
		categories: mockService.NewMockCategoryService(t),
	}

	srv := NewAccountService(AccountServiceParams{
		Ads:        deps.ads,
		Businesses: deps.businesses,
		Categories: deps.categories,
		Logger:     newDiscardLogger(),
	}).(*accountService)
	srv.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	return srv, deps
}

var (
	owner      = &entity.User{ID: 7, Role: entity.RoleBusinessOwner}
	otherOwner = &entity.User{ID: 8, Role: entity.RoleBusinessOwner}
	admin      = &entity.User{ID: 1, Role: entity.RoleAdmin}
	plainUser  = &entity.User{ID: 9, Role: entity.RoleUser}
)

func TestAccountService_Dashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("business owner sees own businesses and ads", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		businesses := []*entity.BusinessProfile{{ID: 3, UserID: 7}}
		ads := []*entity.Ad{{ID: 10, BusinessID: 3}}
		deps.categories.EXPECT().List(mock.Anything).Return(entity.Categories{{ID: 1}}, nil)
		deps.businesses.EXPECT().ListByUser(mock.Anything, int64(7)).Return(businesses, nil)
		deps.ads.EXPECT().ListByUser(mock.Anything, int64(7)).Return(ads, nil)

		page, err := srv.Dashboard(ctx, owner)

		require.NoError(t, err)
		assert.Same(t, owner, page.User)
		assert.Equal(t, businesses, page.Businesses)
		assert.Equal(t, ads, page.Ads)
		assert.Len(t, page.Categories, 1)
	})

	t.Run("plain user only gets categories", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.categories.EXPECT().List(mock.Anything).Return(nil, nil)

		page, err := srv.Dashboard(ctx, plainUser)

		require.NoError(t, err)
		assert.Empty(t, page.Businesses)
	})

	t.Run("nil user", func(t *testing.T) {
		srv, _ := newTestAccountService(t)

		_, err := srv.Dashboard(ctx, nil)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAccountService_CreateBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("plain user is forbidden", func(t *testing.T) {
		srv, _ := newTestAccountService(t)

		_, err := srv.CreateBusiness(ctx, plainUser, &usecase.BusinessInput{Name: "X"})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("blank name", func(t *testing.T) {
		srv, _ := newTestAccountService(t)

		_, err := srv.CreateBusiness(ctx, owner, &usecase.BusinessInput{Name: "  "})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("created for the current user", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		want := &entity.BusinessProfile{UserID: 7, Name: "Ogrody", Phone: "+48600"}
		deps.businesses.EXPECT().Create(ctx, want).Return(&entity.BusinessProfile{ID: 4, UserID: 7, Name: "Ogrody"}, nil)

		created, err := srv.CreateBusiness(ctx, owner, &usecase.BusinessInput{Name: " Ogrody ", Phone: "+48600 "})

		require.NoError(t, err)
		assert.Equal(t, int64(4), created.ID)
	})
}

func TestAccountService_DeleteBusiness(t *testing.T) {
	ctx := context.Background()
	business := &entity.BusinessProfile{ID: 3, UserID: 7}

	t.Run("owner deletes", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(business, nil)
		deps.businesses.EXPECT().Delete(ctx, int64(3)).Return(nil)

		assert.NoError(t, srv.DeleteBusiness(ctx, owner, 3))
	})

	t.Run("another owner is forbidden", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(business, nil)

		err := srv.DeleteBusiness(ctx, otherOwner, 3)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin deletes any", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(business, nil)
		deps.businesses.EXPECT().Delete(ctx, int64(3)).Return(nil)

		assert.NoError(t, srv.DeleteBusiness(ctx, admin, 3))
	})
}

func TestAccountService_CreateAd(t *testing.T) {
	ctx := context.Background()
	input := &usecase.AdInput{
		Title:      " Koszenie trawy ",
		BusinessID: 3,
		CategoryID: 2,
		Price:      "150",
		Address:    "Kraków",
		DueDate:    "2024-06-30",
	}

	t.Run("pending ad dated today", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(&entity.BusinessProfile{ID: 3, UserID: 7}, nil)
		deps.ads.EXPECT().Create(ctx, &entity.Ad{
			BusinessID:  3,
			Title:       "Koszenie trawy",
			CategoryIDs: []int64{2},
			Price:       "150",
			Address:     "Kraków",
			PostDate:    "2024-03-15",
			DueDate:     "2024-06-30",
			Status:      false,
		}).Return(&entity.Ad{ID: 20}, nil)

		created, err := srv.CreateAd(ctx, owner, input)

		require.NoError(t, err)
		assert.Equal(t, int64(20), created.ID)
	})

	t.Run("foreign business is forbidden", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(&entity.BusinessProfile{ID: 3, UserID: 8}, nil)

		_, err := srv.CreateAd(ctx, owner, input)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing category", func(t *testing.T) {
		srv, _ := newTestAccountService(t)

		_, err := srv.CreateAd(ctx, owner, &usecase.AdInput{Title: "x", BusinessID: 3})

		assert.ErrorIs(t, err, domainerrors.ErrFieldsRequired)
	})
}

func TestAccountService_DeleteAd(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes own ad", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.ads.EXPECT().Get(ctx, int64(20)).Return(&entity.Ad{ID: 20, BusinessID: 3}, nil)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(&entity.BusinessProfile{ID: 3, UserID: 7}, nil)
		deps.ads.EXPECT().Delete(ctx, int64(20)).Return(nil)

		assert.NoError(t, srv.DeleteAd(ctx, owner, 20))
	})

	t.Run("admin skips ownership lookups", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.ads.EXPECT().Delete(ctx, int64(20)).Return(nil)

		assert.NoError(t, srv.DeleteAd(ctx, admin, 20))
	})

	t.Run("foreign ad is forbidden", func(t *testing.T) {
		srv, deps := newTestAccountService(t)
		deps.ads.EXPECT().Get(ctx, int64(20)).Return(&entity.Ad{ID: 20, BusinessID: 3}, nil)
		deps.businesses.EXPECT().Get(ctx, int64(3)).Return(&entity.BusinessProfile{ID: 3, UserID: 8}, nil)

		assert.ErrorIs(t, srv.DeleteAd(ctx, owner, 20), domainerrors.ErrForbidden)
	})
}
