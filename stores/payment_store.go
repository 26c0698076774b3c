package stores

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/services"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

// PaymentStore caches payment records.
type PaymentStore struct {
	mu       sync.Mutex
	svc      *services.PaymentService
	payments []models.Payment
	loading  bool
	err      string
}

func NewPaymentStore(svc *services.PaymentService) *PaymentStore {
	return &PaymentStore{svc: svc}
}

func (s *PaymentStore) Payments() []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// PaymentsByOrder is a pure cache filter.
func (s *PaymentStore) PaymentsByOrder(orderID uint) []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(s.payments, func(p models.Payment, _ int) bool { return p.OrderID == orderID })
}

func (s *PaymentStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *PaymentStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *PaymentStore) Fetch(ctx context.Context) {
	s.begin()
	defer s.finish()

	payments, err := s.svc.GetPayments(ctx)
	if err != nil {
		s.fail("Failed to fetch payments", err)
		return
	}
	s.mu.Lock()
	s.payments = payments
	s.mu.Unlock()
}

func (s *PaymentStore) Add(ctx context.Context, payment models.Payment) (models.Payment, error) {
	s.begin()
	defer s.finish()

	created, err := s.svc.CreatePayment(ctx, payment)
	if err != nil {
		s.fail("Failed to add payment", err)
		return models.Payment{}, err
	}
	s.mu.Lock()
	s.payments = append(s.payments, created)
	s.mu.Unlock()
	utils.InfoLogger.Printf("Payment %d recorded for order %d (%s)", created.ID, created.OrderID, created.PaymentMethod)
	return created, nil
}

func (s *PaymentStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	s.begin()
	defer s.finish()

	payment, ok := lo.Find(s.Payments(), func(p models.Payment) bool { return p.ID == id })
	if !ok {
		s.fail("Failed to update payment status", ErrPaymentNotFound)
		return ErrPaymentNotFound
	}
	payment.Status = status

	updated, err := s.svc.UpdatePayment(ctx, id, payment)
	if err != nil {
		s.fail("Failed to update payment status", err)
		return err
	}
	s.mu.Lock()
	s.payments = lo.Map(s.payments, func(p models.Payment, _ int) models.Payment {
		if p.ID == id {
			return updated
		}
		return p
	})
	s.mu.Unlock()
	return nil
}

func (s *PaymentStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *PaymentStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *PaymentStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	utils.ErrorLogger.Printf("%s: %v", msg, err)
}
