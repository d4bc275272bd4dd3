package usecase

import (
	"context"

	"otobiznes/internal/domain/entity"
)

// AdminPage is everything the admin panel renders.
type AdminPage struct {
	Users      []*entity.User
	PendingAds []*entity.Ad
	Categories entity.Categories
}

// CategoryInput is the new category form.
type CategoryInput struct {
	Name string `form:"category_name" validate:"required,max=100"`
}

// AdminUsecase serves the admin panel.
type AdminUsecase interface {
	// Dashboard loads users, ads waiting for approval and categories.
	Dashboard(ctx context.Context) (*AdminPage, error)

	// ChangeRole sets the role of a user.
	ChangeRole(ctx context.Context, userID int64, role string) (*entity.User, error)

	// DeleteUser deletes a user other than the acting admin.
	DeleteUser(ctx context.Context, actor *entity.User, userID int64) error

	// ApproveAd publishes a pending ad.
	ApproveAd(ctx context.Context, id int64) (*entity.Ad, error)

	// CreateCategory adds a category.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id int64) error
}
