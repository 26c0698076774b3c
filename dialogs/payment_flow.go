package dialogs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/stores"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

// Payment flow steps.
type PaymentStep string

const (
	StepMethod     PaymentStep = "method"
	StepProcessing PaymentStep = "processing"
	StepComplete   PaymentStep = "complete"
)

var (
	ErrOrderNotServed  = errors.New("payment can only be initiated for a served order")
	ErrInvalidMethod   = errors.New("unknown payment method")
	ErrPaymentInFlight = errors.New("payment already in progress")
	ErrFlowNotComplete = errors.New("payment flow is not complete")
)

// PaymentFlow drives the method -> processing -> complete sequence for one
// order: record the payment, free the table, mark the order paid. The
// three server writes are not atomic; a failure after the payment landed
// is reported as a PartialFailureError so the caller can reconcile instead
// of silently continuing.
type PaymentFlow struct {
	mu       sync.Mutex
	payments *stores.PaymentStore
	orders   *stores.OrderStore
	tables   *stores.TableStore

	order  models.Order
	method string
	step   PaymentStep
}

func NewPaymentFlow(order models.Order, payments *stores.PaymentStore, orders *stores.OrderStore, tables *stores.TableStore) (*PaymentFlow, error) {
	if !order.Payable() {
		return nil, ErrOrderNotServed
	}
	return &PaymentFlow{
		payments: payments,
		orders:   orders,
		tables:   tables,
		order:    order,
		method:   models.PaymentCash,
		step:     StepMethod,
	}, nil
}

func (f *PaymentFlow) Step() PaymentStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *PaymentFlow) Method() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.method
}

// SetMethod selects cash or card; only meaningful before Pay.
func (f *PaymentFlow) SetMethod(method string) error {
	if method != models.PaymentCash && method != models.PaymentCard {
		return ErrInvalidMethod
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepMethod {
		return ErrPaymentInFlight
	}
	f.method = method
	return nil
}

// Total is the amount owed, derived from the order's item list.
func (f *PaymentFlow) Total() float64 {
	return f.order.ComputeTotal()
}

// Pay executes the settlement sequence. On success the flow lands in the
// complete step with the order paid and its table available; on failure it
// reverts to the method step and the caller surfaces the error.
func (f *PaymentFlow) Pay(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepMethod {
		f.mu.Unlock()
		return ErrPaymentInFlight
	}
	f.step = StepProcessing
	method := f.method
	f.mu.Unlock()

	payment := models.Payment{
		OrderID:       f.order.ID,
		AmountPaid:    f.Total(),
		PaymentMethod: method,
		PaidAt:        time.Now(),
		Status:        models.PaymentCompleted,
	}

	if _, err := f.payments.Add(ctx, payment); err != nil {
		f.revert()
		return err
	}

	if err := f.tables.UpdateStatus(ctx, f.order.TableID, models.TableAvailable); err != nil {
		f.revert()
		return &stores.PartialFailureError{
			Op:        "process payment",
			Completed: []string{"record payment"},
			Failed:    "free table",
			Err:       err,
		}
	}

	if err := f.orders.UpdateStatus(ctx, f.order.ID, models.OrderPaid); err != nil {
		f.revert()
		return &stores.PartialFailureError{
			Op:        "process payment",
			Completed: []string{"record payment", "free table"},
			Failed:    "mark order paid",
			Err:       err,
		}
	}

	f.mu.Lock()
	f.step = StepComplete
	f.mu.Unlock()
	utils.InfoLogger.Printf("Order %d paid: %s %s", f.order.ID, method, utils.FormatCurrency(payment.AmountPaid))
	return nil
}

// Close finishes the flow; only the terminal step offers it. Callers
// treat a successful close as fully done and release the selected order.
func (f *PaymentFlow) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepComplete {
		return ErrFlowNotComplete
	}
	return nil
}

func (f *PaymentFlow) revert() {
	f.mu.Lock()
	f.step = StepMethod
	f.mu.Unlock()
}
