package api

import (
	"context"
	"net/http"

	"otobiznes/internal/domain/entity"
	"otobiznes/internal/domain/service"
)

type userService struct {
	client *Client
}

// NewUserService creates the UserService backed by /users.
func NewUserService(client *Client) service.UserService {
	return &userService{client: client}
}

func (s *userService) List(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := s.client.Do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, mapError(err)
	}

	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	if err := s.client.Do(ctx, http.MethodGet, resourcePath("users", id), nil, nil, &user); err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

func (s *userService) Update(ctx context.Context, id int64, update service.UserUpdate) (*entity.User, error) {
	var updated entity.User
	if err := s.client.Do(ctx, http.MethodPut, resourcePath("users", id), nil, update, &updated); err != nil {
		return nil, mapError(err)
	}

	return &updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return mapError(s.client.Do(ctx, http.MethodDelete, resourcePath("users", id), nil, nil, nil))
}
