package handler

import (
	"net/http"
	"net/url"
	"testing"

	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	mockUsecase "otobiznes/internal/mocks/usecase"
	"otobiznes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockAccountUsecase) {
	account := mockUsecase.NewMockAccountUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{Account: account, Logger: discardLogger()}), account
}

func TestProfileHandler_Profile_Tabs(t *testing.T) {
	tests := []struct {
		name     string
		user     *entity.User
		tab      string
		contains string
	}{
		{"owner sees businesses", owner, "businesses", "Dodaj firmę"},
		{"owner sees ads", owner, "ads", "Dodaj ogłoszenie"},
		{"plain user falls back to profile", plainUser, "businesses", "Użytkownik"},
		{"unknown tab falls back to profile", owner, "secret", "Właściciel firmy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, account := newProfileHandler(t)
			account.EXPECT().Dashboard(mock.Anything, tt.user).Return(&usecase.ProfilePage{User: tt.user}, nil)

			c, rec := newContext(t, http.MethodGet, "/profile?tab="+tt.tab, nil)
			signIn(c, tt.user)

			require.NoError(t, h.Profile(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestProfileHandler_CreateBusiness(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, account := newProfileHandler(t)
		account.EXPECT().CreateBusiness(mock.Anything, owner, &usecase.BusinessInput{Name: "Zielony Zakątek", Phone: "600100200"}).
			Return(&entity.BusinessProfile{ID: 3}, nil)

		c, rec := newContext(t, http.MethodPost, "/profile/businesses", url.Values{"bp_name": {"Zielony Zakątek"}, "phone": {"600100200"}})
		signIn(c, owner)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, businessesTabPath, rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, flashSuccess, flashOf(t, rec).Kind)
	})

	t.Run("missing name never reaches the usecase", func(t *testing.T) {
		h, _ := newProfileHandler(t)

		c, rec := newContext(t, http.MethodPost, "/profile/businesses", url.Values{"description": {"bez nazwy"}})
		signIn(c, owner)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		flash := flashOf(t, rec)
		assert.Equal(t, flashError, flash.Kind)
		assert.Equal(t, domainerrors.ErrValidationFailed.Message(), flash.Message)
	})
}

func TestProfileHandler_CreateAd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, account := newProfileHandler(t)
		want := &usecase.AdInput{Title: "Koszenie", BusinessID: 3, CategoryID: 1, Price: "150", DueDate: "2026-12-01"}
		account.EXPECT().CreateAd(mock.Anything, owner, want).Return(&entity.Ad{ID: 10}, nil)

		c, rec := newContext(t, http.MethodPost, "/profile/ads", url.Values{
			"ad_title": {"Koszenie"}, "bp_id": {"3"}, "category_id": {"1"}, "price": {"150"}, "due_date": {"2026-12-01"},
		})
		signIn(c, owner)

		require.NoError(t, h.CreateAd(c))
		assert.Equal(t, adsTabPath, rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, flashSuccess, flashOf(t, rec).Kind)
	})

	t.Run("bad due date", func(t *testing.T) {
		h, _ := newProfileHandler(t)

		c, rec := newContext(t, http.MethodPost, "/profile/ads", url.Values{
			"ad_title": {"Koszenie"}, "bp_id": {"3"}, "category_id": {"1"}, "due_date": {"jutro"},
		})
		signIn(c, owner)

		require.NoError(t, h.CreateAd(c))
		assert.Equal(t, flashError, flashOf(t, rec).Kind)
	})
}

func TestProfileHandler_DeleteBusiness(t *testing.T) {
	t.Run("foreign business is refused with a flash", func(t *testing.T) {
		h, account := newProfileHandler(t)
		account.EXPECT().DeleteBusiness(mock.Anything, owner, int64(4)).Return(errors.WithStack(domainerrors.ErrForbidden))

		c, rec := newContext(t, http.MethodPost, "/profile/businesses/4/delete", url.Values{})
		withID(c, "4")
		signIn(c, owner)

		require.NoError(t, h.DeleteBusiness(c))
		assert.Equal(t, domainerrors.ErrForbidden.Message(), flashOf(t, rec).Message)
	})

	t.Run("expired token goes to the error handler", func(t *testing.T) {
		h, account := newProfileHandler(t)
		account.EXPECT().DeleteBusiness(mock.Anything, owner, int64(4)).Return(errors.WithStack(domainerrors.ErrUnauthorized))

		c, _ := newContext(t, http.MethodPost, "/profile/businesses/4/delete", url.Values{})
		withID(c, "4")
		signIn(c, owner)

		assert.ErrorIs(t, h.DeleteBusiness(c), domainerrors.ErrUnauthorized)
	})
}

func TestProfileHandler_DeleteAd(t *testing.T) {
	h, account := newProfileHandler(t)
	account.EXPECT().DeleteAd(mock.Anything, owner, int64(10)).Return(nil)

	c, rec := newContext(t, http.MethodPost, "/profile/ads/10/delete", url.Values{})
	withID(c, "10")
	signIn(c, owner)

	require.NoError(t, h.DeleteAd(c))
	assert.Equal(t, adsTabPath, rec.Header().Get(echo.HeaderLocation))
}
