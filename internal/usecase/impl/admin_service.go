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

// adminService implements the AdminUsecase interface.
type adminService struct {
	users      service.UserService
	ads        service.AdService
	categories service.CategoryService
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Users      service.UserService
	Ads        service.AdService
	Categories service.CategoryService
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		users:      params.Users,
		ads:        params.Ads,
		categories: params.Categories,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Dashboard(ctx context.Context) (*usecase.AdminPage, error) {
	page := &usecase.AdminPage{}
	var ads []*entity.Ad

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := srv.users.List(gctx)
		page.Users = users

		return errors.Wrap(err, "list users")
	})
	g.Go(func() error {
		var err error
		ads, err = srv.ads.List(gctx, service.AdQuery{})

		return errors.Wrap(err, "list ads")
	})
	g.Go(func() error {
		categories, err := srv.categories.List(gctx)
		page.Categories = categories

		return errors.Wrap(err, "list categories")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.PendingAds = listing.PendingAds(ads)

	return page, nil
}

func (srv *adminService) ChangeRole(ctx context.Context, userID int64, role string) (*entity.User, error) {
	parsed, ok := entity.ParseRole(role)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidRole.WithDetails(role))
	}

	updated, err := srv.users.Update(ctx, userID, service.UserUpdate{Role: &parsed})
	if err != nil {
		return nil, errors.Wrap(err, "update user role")
	}

	srv.log(ctx).Info("User role changed", slog.Int64("user_id", userID), slog.String("role", parsed.String()))

	return updated, nil
}

func (srv *adminService) DeleteUser(ctx context.Context, actor *entity.User, userID int64) error {
	if actor != nil && actor.ID == userID {
		return errors.WithStack(domainerrors.ErrForbidden.WithDetails("admins cannot delete their own account"))
	}

	if err := srv.users.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("user_id", userID))

	return nil
}

func (srv *adminService) ApproveAd(ctx context.Context, id int64) (*entity.Ad, error) {
	ad, err := srv.ads.Approve(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "approve ad")
	}

	srv.log(ctx).Info("Ad approved", slog.Int64("ad_id", id))

	return ad, nil
}

func (srv *adminService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrFieldsRequired)
	}

	created, err := srv.categories.Create(ctx, &entity.Category{Name: name})
	if err != nil {
		return nil, errors.Wrap(err, "create category")
	}

	return created, nil
}

func (srv *adminService) DeleteCategory(ctx context.Context, id int64) error {
	return errors.Wrap(srv.categories.Delete(ctx, id), "delete category")
}
