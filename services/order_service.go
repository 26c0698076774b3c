package services

import (
	"context"
	"fmt"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/models"
)

type OrderService struct {
	api *client.Client
}

func NewOrderService(api *client.Client) *OrderService {
	return &OrderService{api: api}
}

func (s *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.api.Get(ctx, client.EndpointOrders, &orders)
	return orders, err
}

func (s *OrderService) GetOrdersByTable(ctx context.Context, tableID uint) ([]models.Order, error) {
	var orders []models.Order
	path := fmt.Sprintf("%s?table_id=%d", client.EndpointOrders, tableID)
	err := s.api.Get(ctx, path, &orders)
	return orders, err
}

func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	err := s.api.Post(ctx, client.EndpointOrders, order, &created)
	return created, err
}

func (s *OrderService) UpdateOrder(ctx context.Context, id uint, patch models.OrderPatch) (models.Order, error) {
	var updated models.Order
	err := s.api.Put(ctx, client.EndpointOrder(id), patch, &updated)
	return updated, err
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, client.EndpointOrder(id))
}
