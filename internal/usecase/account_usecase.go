package usecase

import (
	"context"

	"otobiznes/internal/domain/entity"
)

// ProfilePage is everything the profile page renders.
type ProfilePage struct {
	User       *entity.User
	Businesses []*entity.BusinessProfile
	Ads        []*entity.Ad
	Categories entity.Categories
}

// BusinessInput is the new business form.
type BusinessInput struct {
	Name        string `form:"bp_name" validate:"required,max=200"`
	Description string `form:"description" validate:"max=2000"`
	Address     string `form:"address" validate:"max=300"`
	Phone       string `form:"phone" validate:"omitempty,max=32"`
}

// AdInput is the new ad form.
type AdInput struct {
	Title       string `form:"ad_title" validate:"required,max=200"`
	Description string `form:"description" validate:"max=5000"`
	BusinessID  int64  `form:"bp_id" validate:"required,gt=0"`
	CategoryID  int64  `form:"category_id" validate:"required,gt=0"`
	Price       string `form:"price" validate:"omitempty,numeric"`
	Address     string `form:"address" validate:"max=300"`
	DueDate     string `form:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// AccountUsecase serves the profile dashboard of a signed-in user.
type AccountUsecase interface {
	// Dashboard loads the user's businesses, ads and the category list.
	Dashboard(ctx context.Context, user *entity.User) (*ProfilePage, error)

	// CreateBusiness creates a business owned by the user.
	CreateBusiness(ctx context.Context, user *entity.User, input *BusinessInput) (*entity.BusinessProfile, error)

	// DeleteBusiness deletes a business of the user; admins may delete any.
	DeleteBusiness(ctx context.Context, user *entity.User, id int64) error

	// CreateAd creates a pending ad for one of the user's businesses.
	CreateAd(ctx context.Context, user *entity.User, input *AdInput) (*entity.Ad, error)

	// DeleteAd deletes an ad of one of the user's businesses; admins may delete any.
	DeleteAd(ctx context.Context, user *entity.User, id int64) error
}
