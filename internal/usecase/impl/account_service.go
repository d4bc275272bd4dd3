package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "otobiznes/internal/delivery/context"
	"otobiznes/internal/domain/entity"
	domainerrors "otobiznes/internal/domain/errors"
	"otobiznes/internal/domain/service"
	"otobiznes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// accountService implements the AccountUsecase interface.
type accountService struct {
	ads        service.AdService
	businesses service.BusinessService
	categories service.CategoryService
	logger     *slog.Logger
	now        func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Ads        service.AdService
	Businesses service.BusinessService
	Categories service.CategoryService
	Logger     *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		ads:        params.Ads,
		businesses: params.Businesses,
		categories: params.Categories,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Dashboard(ctx context.Context, user *entity.User) (*usecase.ProfilePage, error) {
	if user == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	page := &usecase.ProfilePage{User: user}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := srv.categories.List(gctx)
		page.Categories = categories

		return errors.Wrap(err, "list categories")
	})
	if user.CanManageBusinesses() {
		g.Go(func() error {
			businesses, err := srv.businesses.ListByUser(gctx, user.ID)
			page.Businesses = businesses

			return errors.Wrap(err, "list own businesses")
		})
		g.Go(func() error {
			ads, err := srv.ads.ListByUser(gctx, user.ID)
			page.Ads = ads

			return errors.Wrap(err, "list own ads")
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

func (srv *accountService) CreateBusiness(ctx context.Context, user *entity.User, input *usecase.BusinessInput) (*entity.BusinessProfile, error) {
	if err := requireBusinessRole(user); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("bp_name is required"))
	}

	created, err := srv.businesses.Create(ctx, &entity.BusinessProfile{
		UserID:      user.ID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Address:     strings.TrimSpace(input.Address),
		Phone:       strings.TrimSpace(input.Phone),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create business")
	}

	srv.log(ctx).Info("Business created", slog.Int64("bp_id", created.ID), slog.Int64("user_id", user.ID))

	return created, nil
}

func (srv *accountService) DeleteBusiness(ctx context.Context, user *entity.User, id int64) error {
	if err := requireBusinessRole(user); err != nil {
		return err
	}

	if _, err := srv.ownedBusiness(ctx, user, id); err != nil {
		return err
	}

	if err := srv.businesses.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete business")
	}

	srv.log(ctx).Info("Business deleted", slog.Int64("bp_id", id), slog.Int64("user_id", user.ID))

	return nil
}

func (srv *accountService) CreateAd(ctx context.Context, user *entity.User, input *usecase.AdInput) (*entity.Ad, error) {
	if err := requireBusinessRole(user); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || input.BusinessID <= 0 || input.CategoryID <= 0 {
		return nil, errors.WithStack(domainerrors.ErrFieldsRequired)
	}

	if _, err := srv.ownedBusiness(ctx, user, input.BusinessID); err != nil {
		return nil, err
	}

	created, err := srv.ads.Create(ctx, &entity.Ad{
		BusinessID:  input.BusinessID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		CategoryIDs: []int64{input.CategoryID},
		Price:       strings.TrimSpace(input.Price),
		Address:     strings.TrimSpace(input.Address),
		PostDate:    srv.now().Format(dateLayout),
		DueDate:     strings.TrimSpace(input.DueDate),
		Status:      false,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create ad")
	}

	srv.log(ctx).Info("Ad submitted for approval", slog.Int64("ad_id", created.ID), slog.Int64("bp_id", input.BusinessID))

	return created, nil
}

func (srv *accountService) DeleteAd(ctx context.Context, user *entity.User, id int64) error {
	if err := requireBusinessRole(user); err != nil {
		return err
	}

	if !user.IsAdmin() {
		ad, err := srv.ads.Get(ctx, id)
		if err != nil {
			return errors.Wrap(err, "get ad")
		}
		if _, err := srv.ownedBusiness(ctx, user, ad.BusinessID); err != nil {
			return err
		}
	}

	if err := srv.ads.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete ad")
	}

	srv.log(ctx).Info("Ad deleted", slog.Int64("ad_id", id), slog.Int64("user_id", user.ID))

	return nil
}

// ownedBusiness loads the business and checks the user owns it. Admins own everything.
func (srv *accountService) ownedBusiness(ctx context.Context, user *entity.User, id int64) (*entity.BusinessProfile, error) {
	business, err := srv.businesses.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get business")
	}

	if !user.IsAdmin() && !business.OwnedBy(user.ID) {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("business belongs to another user"))
	}

	return business, nil
}

func requireBusinessRole(user *entity.User) error {
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if !user.CanManageBusinesses() {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}
