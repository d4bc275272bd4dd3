// Package service defines the contracts of the collaborators the frontend talks to.
// Each marketplace resource is served by one interface whose methods map to a single REST call.
package service

import (
	"context"

	"otobiznes/internal/domain/entity"
)

// AdQuery holds the server-side filters of the ad listing.
type AdQuery struct {
	Search     string
	CategoryID int64
}

// RegisterInput is the payload of the registration call.
type RegisterInput struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      entity.Role `json:"role"`
}

// RegisterResult is what the API returns after registration.
// Token is empty when the API does not log the new account in.
type RegisterResult struct {
	User  *entity.User
	Token string
}

// UserUpdate carries the mutable fields of a user; nil fields are not sent.
type UserUpdate struct {
	FirstName *string      `json:"first_name,omitempty"`
	LastName  *string      `json:"last_name,omitempty"`
	Email     *string      `json:"email,omitempty"`
	Role      *entity.Role `json:"role,omitempty"`
}

// AuthService covers login, registration and the current-user lookup.
type AuthService interface {
	// Login exchanges credentials for an API bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates an account.
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	// CurrentUser returns the profile of the bearer token owner.
	CurrentUser(ctx context.Context) (*entity.User, error)
}

// AdService wraps the /ads resource.
type AdService interface {
	List(ctx context.Context, query AdQuery) ([]*entity.Ad, error)
	Get(ctx context.Context, id int64) (*entity.Ad, error)
	Create(ctx context.Context, ad *entity.Ad) (*entity.Ad, error)
	Update(ctx context.Context, id int64, ad *entity.Ad) (*entity.Ad, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]*entity.Ad, error)
	Approve(ctx context.Context, id int64) (*entity.Ad, error)
}

// BusinessService wraps the /businesses resource.
type BusinessService interface {
	List(ctx context.Context) ([]*entity.BusinessProfile, error)
	Get(ctx context.Context, id int64) (*entity.BusinessProfile, error)
	Create(ctx context.Context, business *entity.BusinessProfile) (*entity.BusinessProfile, error)
	Update(ctx context.Context, id int64, business *entity.BusinessProfile) (*entity.BusinessProfile, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]*entity.BusinessProfile, error)
	ListAds(ctx context.Context, id int64) ([]*entity.Ad, error)
}

// CategoryService wraps the /categories resource.
type CategoryService interface {
	List(ctx context.Context) (entity.Categories, error)
	Get(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, id int64, category *entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewService wraps the /reviews resource.
type ReviewService interface {
	List(ctx context.Context) ([]*entity.Review, error)
	Get(ctx context.Context, id int64) (*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	Update(ctx context.Context, id int64, review *entity.Review) (*entity.Review, error)
	Delete(ctx context.Context, id int64) error
	ListByAd(ctx context.Context, adID int64) ([]*entity.Review, error)
}

// UserService wraps the /users resource.
type UserService interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
