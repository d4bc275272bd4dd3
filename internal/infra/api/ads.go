package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/service"
)

type adService struct {
	client *Client
}

// NewAdService creates the AdService backed by /ads.
func NewAdService(client *Client) service.AdService {
	return &adService{client: client}
}

func (s *adService) List(ctx context.Context, query service.AdQuery) ([]*entity.Ad, error) {
	params := url.Values{}
	if term := strings.TrimSpace(query.Search); term != "" {
		params.Set("search", term)
	}
	if query.CategoryID > 0 {
		params.Set("category_id", strconv.FormatInt(query.CategoryID, 10))
	}

	var ads []*entity.Ad
	if err := s.client.Do(ctx, http.MethodGet, "/ads", params, nil, &ads); err != nil {
		return nil, mapError(err)
	}

	return ads, nil
}

func (s *adService) Get(ctx context.Context, id int64) (*entity.Ad, error) {
	var ad entity.Ad
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("ads", id), nil, nil, &ad); err != nil {
		return nil, mapError(err)
	}

	return &ad, nil
}

func (s *adService) Create(ctx context.Context, ad *entity.Ad) (*entity.Ad, error) {
	var created entity.Ad
	if err := s.client.Do(ctx, http.MethodPost, "/ads", nil, ad, &created); err != nil {
		return nil, mapError(err)
	}

	return &created, nil
}

func (s *adService) Update(ctx context.Context, id int64, ad *entity.Ad) (*entity.Ad, error) {
	var updated entity.Ad
	if err := s.client.Do(ctx, http.MethodPut, resourcePath("ads", id), nil, ad, &updated); err != nil {
		return nil, mapError(err)
	}

	return &updated, nil
}

func (s *adService) Delete(ctx context.Context, id int64) error {
	return mapError(s.client.Do(ctx, http.MethodDelete, resourcePath("ads", id), nil, nil, nil))
}

func (s *adService) ListByUser(ctx context.Context, userID int64) ([]*entity.Ad, error) {
	var ads []*entity.Ad
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("ads/user", userID), nil, nil, &ads); err != nil {
		return nil, mapError(err)
	}

	return ads, nil
}

func (s *adService) Approve(ctx context.Context, id int64) (*entity.Ad, error) {
	var approved entity.Ad
	if err := s.client.Do(ctx, http.MethodPatch, resourcePath("ads", id, "approve"), nil, nil, &approved); err != nil {
		return nil, mapError(err)
	}

	return &approved, nil
}
