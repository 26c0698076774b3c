package stores_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/stores"
)

func TestAddPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.payments.Add(ctx, models.Payment{
		OrderID:       3,
		AmountPaid:    480,
		PaymentMethod: models.PaymentCard,
		PaidAt:        time.Now(),
	})

	// The order must exist before a payment can land.
	assert.Error(t, err)

	order := placeOrder(t, env, 1, models.OrderItem{MenuItemID: 1, Quantity: 2, Price: 240})

	created, err = env.payments.Add(ctx, models.Payment{
		OrderID:       order.ID,
		AmountPaid:    480,
		PaymentMethod: models.PaymentCard,
		PaidAt:        time.Now(),
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.PaymentCompleted, created.Status)

	byOrder := env.payments.PaymentsByOrder(order.ID)
	assert.Len(t, byOrder, 1)
	assert.Equal(t, 480.0, byOrder[0].AmountPaid)
	assert.Empty(t, env.payments.PaymentsByOrder(999))
}

func TestUpdateStatusUnknownPayment(t *testing.T) {
	env := newTestEnv(t)

	err := env.payments.UpdateStatus(context.Background(), 77, models.PaymentFailed)
	assert.ErrorIs(t, err, stores.ErrPaymentNotFound)
	assert.NotEmpty(t, env.payments.Err())
	assert.False(t, env.payments.Loading())
}
