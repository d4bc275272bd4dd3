package api

import (
	"context"
	"net/http"

	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/service"
)

type categoryService struct {
	client *Client
}

// NewCategoryService creates the CategoryService backed by /categories.
func NewCategoryService(client *Client) service.CategoryService {
	return &categoryService{client: client}
}

func (s *categoryService) List(ctx context.Context) (entity.Categories, error) {
	var categories entity.Categories
	if err := s.client.Do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, mapError(err)
	}

	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*entity.Category, error) {
	var category entity.Category
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("categories", id), nil, nil, &category); err != nil {
		return nil, mapError(err)
	}

	return &category, nil
}

func (s *categoryService) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	var created entity.Category
	if err := s.client.Do(ctx, http.MethodPost, "/categories", nil, category, &created); err != nil {
		return nil, mapError(err)
	}

	return &created, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, category *entity.Category) (*entity.Category, error) {
	var updated entity.Category
	if err := s.client.Do(ctx, http.MethodPut, resourcePath("categories", id), nil, category, &updated); err != nil {
		return nil, mapError(err)
	}

	return &updated, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return mapError(s.client.Do(ctx, http.MethodDelete, resourcePath("categories", id), nil, nil, nil))
}
