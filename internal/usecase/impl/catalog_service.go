package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/listing"
	"otobiznes/internal/domain/service"
	"otobiznes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	ads        service.AdService
	businesses service.BusinessService
	categories service.CategoryService
	reviews    service.ReviewService
	qrcode     service.QRCodeService
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Ads        service.AdService
	Businesses service.BusinessService
	Categories service.CategoryService
	Reviews    service.ReviewService
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		ads:        params.Ads,
		businesses: params.Businesses,
		categories: params.Categories,
		reviews:    params.Reviews,
		qrcode:     params.QRCode,
		logger:     params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Home(ctx context.Context, query usecase.HomeQuery) (*usecase.HomePage, error) {
	query.Search = strings.TrimSpace(query.Search)
	page := &usecase.HomePage{Query: query}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := srv.categories.List(gctx)
		page.Categories = categories

		return errors.Wrap(err, "list categories")
	})
	g.Go(func() error {
		ads, err := srv.ads.List(gctx, service.AdQuery{Search: query.Search, CategoryID: query.CategoryID})
		page.Ads = ads

		return errors.Wrap(err, "list ads")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The API may ignore the query parameters, so filters are applied again here.
	page.Ads = listing.FilterAds(page.Ads, listing.AdFilter{
		Search:       query.Search,
		CategoryID:   query.CategoryID,
		OnlyApproved: true,
	})

	return page, nil
}

func (srv *catalogService) Ad(ctx context.Context, id int64) (*usecase.AdPage, error) {
	ad, err := srv.ads.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get ad")
	}

	page := &usecase.AdPage{Ad: ad}

	g, gctx := errgroup.WithContext(ctx)
	if ad.BusinessID > 0 {
		g.Go(func() error {
			business, err := srv.businesses.Get(gctx, ad.BusinessID)
			page.Business = business

			return errors.Wrap(err, "get business")
		})
	}
	g.Go(func() error {
		reviews, err := srv.reviews.ListByAd(gctx, id)
		page.Reviews = reviews

		return errors.Wrap(err, "list reviews")
	})
	g.Go(func() error {
		categories, err := srv.categories.List(gctx)
		page.Categories = categories

		return errors.Wrap(err, "list categories")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Rating = listing.Summarize(page.Reviews)

	return page, nil
}

func (srv *catalogService) Business(ctx context.Context, id int64) (*usecase.BusinessPage, error) {
	page := &usecase.BusinessPage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		business, err := srv.businesses.Get(gctx, id)
		page.Business = business

		return errors.Wrap(err, "get business")
	})
	g.Go(func() error {
		ads, err := srv.businesses.ListAds(gctx, id)
		page.Ads = ads

		return errors.Wrap(err, "list business ads")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Ads = listing.FilterAds(page.Ads, listing.AdFilter{OnlyApproved: true})

	return page, nil
}

func (srv *catalogService) SubmitReview(ctx context.Context, form listing.ReviewForm) (*entity.Review, error) {
	review, err := listing.ValidateReview(form)
	if err != nil {
		return nil, err
	}

	created, err := srv.reviews.Create(ctx, review)
	if err != nil {
		return nil, errors.Wrap(err, "create review")
	}

	srv.log(ctx).Info("Review added", slog.Int64("ad_id", form.AdID), slog.Float64("rating", review.Rating))

	return created, nil
}

func (srv *catalogService) BusinessContactQR(ctx context.Context, id int64) ([]byte, error) {
	business, err := srv.businesses.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get business")
	}

	uri := business.TelURI()
	if uri == "" {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("business has no phone number"))
	}

	png, err := srv.qrcode.GenerateContactQR(uri)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "generate qr code")
	}

	return png, nil
}
