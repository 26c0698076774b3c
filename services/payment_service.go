package services

import (
	"context"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/models"
)

type PaymentService struct {
	api *client.Client
}

func NewPaymentService(api *client.Client) *PaymentService {
	return &PaymentService{api: api}
}

func (s *PaymentService) GetPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.api.Get(ctx, client.EndpointPayments, &payments)
	return payments, err
}

func (s *PaymentService) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	var created models.Payment
	err := s.api.Post(ctx, client.EndpointPayments, payment, &created)
	return created, err
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id uint, payment models.Payment) (models.Payment, error) {
	var updated models.Payment
	err := s.api.Put(ctx, client.EndpointPayment(id), payment, &updated)
	return updated, err
}
