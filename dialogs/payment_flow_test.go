package dialogs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venkatakrishna06/restaurant-pos/dialogs"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/stores"
)

func servedOrder(t *testing.T, env *testEnv) (models.Table, models.Order) {
	t.Helper()
	ctx := context.Background()

	table, err := env.tables.Add(ctx, 4)
	assert.NoError(t, err)

	order, err := env.orders.Add(ctx, models.Order{
		TableID:    table.ID,
		CustomerID: 1,
		Items: []models.OrderItem{
			{MenuItemID: 1, Quantity: 2, Price: 150, Status: models.ItemServed},
			{MenuItemID: 2, Quantity: 1, Price: 80, Status: models.ItemServed},
		},
	})
	assert.NoError(t, err)

	assert.NoError(t, env.tables.AssignOrder(ctx, table.ID, order.ID))
	assert.NoError(t, env.orders.UpdateStatus(ctx, order.ID, models.OrderServed))

	updated, _ := env.orders.Order(order.ID)
	return table, updated
}

func TestPaymentFlowRejectsUnservedOrder(t *testing.T) {
	order := models.Order{Status: models.OrderPlaced}

	_, err := dialogs.NewPaymentFlow(order, nil, nil, nil)
	assert.ErrorIs(t, err, dialogs.ErrOrderNotServed)
}

func TestPaymentFlowMethodSelection(t *testing.T) {
	order := models.Order{Status: models.OrderServed}

	flow, err := dialogs.NewPaymentFlow(order, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, dialogs.StepMethod, flow.Step())
	assert.Equal(t, models.PaymentCash, flow.Method())

	assert.NoError(t, flow.SetMethod(models.PaymentCard))
	assert.Equal(t, models.PaymentCard, flow.Method())

	assert.ErrorIs(t, flow.SetMethod("cheque"), dialogs.ErrInvalidMethod)
}

func TestPaymentFlowTotalDerivedFromItems(t *testing.T) {
	order := models.Order{
		Status: models.OrderServed,
		Items: []models.OrderItem{
			{Quantity: 2, Price: 150, Status: models.ItemServed},
			{Quantity: 1, Price: 80, Status: models.ItemCancelled},
		},
	}

	flow, err := dialogs.NewPaymentFlow(order, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 300.0, flow.Total())
}

func TestPayFailureRevertsToMethodStep(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	table, _ := env.tables.Add(ctx, 4)
	assert.NoError(t, env.tables.AssignOrder(ctx, table.ID, 999))

	// The order was never persisted, so the payment POST is rejected and
	// nothing after it may run.
	ghost := models.Order{
		ID:      999,
		TableID: table.ID,
		Status:  models.OrderServed,
		Items: []models.OrderItem{
			{Quantity: 1, Price: 100, Status: models.ItemServed},
		},
	}

	flow, err := dialogs.NewPaymentFlow(ghost, env.payments, env.orders, env.tables)
	assert.NoError(t, err)

	err = flow.Pay(ctx)
	assert.Error(t, err)
	assert.Equal(t, dialogs.StepMethod, flow.Step())

	still, _ := env.tables.Table(table.ID)
	assert.Equal(t, models.TableOccupied, still.Status)
	assert.Empty(t, env.payments.PaymentsByOrder(999))

	// Back on the method step the flow is usable again.
	assert.NoError(t, flow.SetMethod(models.PaymentCash))
	assert.ErrorIs(t, flow.Close(), dialogs.ErrFlowNotComplete)
}

func TestPayPartialFailureNamesCompletedSteps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Real order, but its table does not exist: the payment lands and the
	// table release then fails.
	order, err := env.orders.Add(ctx, models.Order{
		TableID:    55,
		CustomerID: 1,
		Items: []models.OrderItem{
			{MenuItemID: 1, Quantity: 1, Price: 120, Status: models.ItemServed},
		},
	})
	assert.NoError(t, err)
	assert.NoError(t, env.orders.UpdateStatus(ctx, order.ID, models.OrderServed))
	served, _ := env.orders.Order(order.ID)

	flow, err := dialogs.NewPaymentFlow(served, env.payments, env.orders, env.tables)
	assert.NoError(t, err)

	err = flow.Pay(ctx)
	assert.Error(t, err)

	var partial *stores.PartialFailureError
	assert.ErrorAs(t, err, &partial)
	assert.Equal(t, "process payment", partial.Op)
	assert.Equal(t, []string{"record payment"}, partial.Completed)
	assert.Equal(t, "free table", partial.Failed)

	// The payment landed; the flow reverts so the caller can reconcile.
	assert.Len(t, env.payments.PaymentsByOrder(order.ID), 1)
	assert.Equal(t, dialogs.StepMethod, flow.Step())

	unpaid, _ := env.orders.Order(order.ID)
	assert.Equal(t, models.OrderServed, unpaid.Status)
}

func TestPaymentFlowSettlesOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	table, order := servedOrder(t, env)

	flow, err := dialogs.NewPaymentFlow(order, env.payments, env.orders, env.tables)
	assert.NoError(t, err)

	assert.ErrorIs(t, flow.Close(), dialogs.ErrFlowNotComplete)

	assert.NoError(t, flow.SetMethod(models.PaymentCard))
	assert.NoError(t, flow.Pay(ctx))
	assert.Equal(t, dialogs.StepComplete, flow.Step())

	paid, _ := env.orders.Order(order.ID)
	assert.Equal(t, models.OrderPaid, paid.Status)
	assert.False(t, paid.IsActive())

	freed, _ := env.tables.Table(table.ID)
	assert.Equal(t, models.TableAvailable, freed.Status)

	payments := env.payments.PaymentsByOrder(order.ID)
	assert.Len(t, payments, 1)
	assert.Equal(t, 380.0, payments[0].AmountPaid)
	assert.Equal(t, models.PaymentCard, payments[0].PaymentMethod)

	assert.NoError(t, flow.Close())

	// A completed flow never pays twice.
	assert.ErrorIs(t, flow.Pay(ctx), dialogs.ErrPaymentInFlight)
	assert.ErrorIs(t, flow.SetMethod(models.PaymentCash), dialogs.ErrPaymentInFlight)
}
