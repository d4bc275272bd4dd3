package api

import (
	"context"
	"net/http"

	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/service"
)

type reviewService struct {
	client *Client
}

// NewReviewService creates the ReviewService backed by /reviews.
func NewReviewService(client *Client) service.ReviewService {
	return &reviewService{client: client}
}

func (s *reviewService) List(ctx context.Context) ([]*entity.Review, error) {
	var reviews []*entity.Review
	if err := s.client.Do(ctx, http.MethodGet, "/reviews", nil, nil, &reviews); err != nil {
		return nil, mapError(err)
	}

	return reviews, nil
}

func (s *reviewService) Get(ctx context.Context, id int64) (*entity.Review, error) {
	var review entity.Review
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("reviews", id), nil, nil, &review); err != nil {
		return nil, mapError(err)
	}

	return &review, nil
}

func (s *reviewService) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	var created entity.Review
	if err := s.client.Do(ctx, http.MethodPost, "/reviews", nil, review, &created); err != nil {
		return nil, mapError(err)
	}

	return &created, nil
}

func (s *reviewService) Update(ctx context.Context, id int64, review *entity.Review) (*entity.Review, error) {
	var updated entity.Review
	if err := s.client.Do(ctx, http.MethodPut, resourcePath("reviews", id), nil, review, &updated); err != nil {
		return nil, mapError(err)
	}

	return &updated, nil
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	return mapError(s.client.Do(ctx, http.MethodDelete, resourcePath("reviews", id), nil, nil, nil))
}

func (s *reviewService) ListByAd(ctx context.Context, adID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("reviews/ad", adID), nil, nil, &reviews); err != nil {
		return nil, mapError(err)
	}

	return reviews, nil
}
