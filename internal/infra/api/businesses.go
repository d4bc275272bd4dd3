package api

import (
	"context"
	"net/http"

	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/service"
)

type businessService struct {
	client *Client
}

// NewBusinessService creates the BusinessService backed by /businesses.
func NewBusinessService(client *Client) service.BusinessService {
	return &businessService{client: client}
}

func (s *businessService) List(ctx context.Context) ([]*entity.BusinessProfile, error) {
	var businesses []*entity.BusinessProfile
	if err := s.client.Do(ctx, http.MethodGet, "/businesses", nil, nil, &businesses); err != nil {
		return nil, mapError(err)
	}

	return businesses, nil
}

func (s *businessService) Get(ctx context.Context, id int64) (*entity.BusinessProfile, error) {
	var business entity.BusinessProfile
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("businesses", id), nil, nil, &business); err != nil {
		return nil, mapError(err)
	}

	return &business, nil
}

func (s *businessService) Create(ctx context.Context, business *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	var created entity.BusinessProfile
	if err := s.client.Do(ctx, http.MethodPost, "/businesses", nil, business, &created); err != nil {
		return nil, mapError(err)
	}

	return &created, nil
}

func (s *businessService) Update(ctx context.Context, id int64, business *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	var updated entity.BusinessProfile
	if err := s.client.Do(ctx, http.MethodPut, resourcePath("businesses", id), nil, business, &updated); err != nil {
		return nil, mapError(err)
	}

	return &updated, nil
}

func (s *businessService) Delete(ctx context.Context, id int64) error {
	return mapError(s.client.Do(ctx, http.MethodDelete, resourcePath("businesses", id), nil, nil, nil))
}

func (s *businessService) ListByUser(ctx context.Context, userID int64) ([]*entity.BusinessProfile, error) {
	var businesses []*entity.BusinessProfile
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("businesses/user", userID), nil, nil, &businesses); err != nil {
		return nil, mapError(err)
	}

	return businesses, nil
}

func (s *businessService) ListAds(ctx context.Context, id int64) ([]*entity.Ad, error) {
	var ads []*entity.Ad
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("businesses", id, "ads"), nil, nil, &ads); err != nil {
		return nil, mapError(err)
	}

	return ads, nil
}
