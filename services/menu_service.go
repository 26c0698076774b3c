package services

import (
	"context"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/models"
)

type MenuService struct {
	api *client.Client
}

func NewMenuService(api *client.Client) *MenuService {
	return &MenuService{api: api}
}

func (s *MenuService) GetItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.api.Get(ctx, client.EndpointMenuItems, &items)
	return items, err
}

func (s *MenuService) CreateItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	var created models.MenuItem
	err := s.api.Post(ctx, client.EndpointMenuItems, item, &created)
	return created, err
}

func (s *MenuService) UpdateItem(ctx context.Context, id uint, item models.MenuItem) (models.MenuItem, error) {
	var updated models.MenuItem
	err := s.api.Put(ctx, client.EndpointMenuItem(id), item, &updated)
	return updated, err
}

func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, client.EndpointMenuItem(id))
}

func (s *MenuService) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.api.Get(ctx, client.EndpointMenuCategories, &categories)
	return categories, err
}

func (s *MenuService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var created models.Category
	err := s.api.Post(ctx, client.EndpointMenuCategories, category, &created)
	return created, err
}

func (s *MenuService) UpdateCategory(ctx context.Context, id uint, category models.Category) (models.Category, error) {
	var updated models.Category
	err := s.api.Put(ctx, client.EndpointMenuCategory(id), category, &updated)
	return updated, err
}

func (s *MenuService) DeleteCategory(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, client.EndpointMenuCategory(id))
}
