package dialogs

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/stores"
)

var ErrItemInFlight = errors.New("another item action is still in progress")

// ViewOrders presents one table's orders split into active and history
// and routes the per-item actions, gated by order and item status. A
// single in-flight item action is allowed at a time, mirroring the
// per-item busy guard of the dialog it replaces.
type ViewOrders struct {
	mu         sync.Mutex
	orders     *stores.OrderStore
	tableID    uint
	processing uint // item id currently being acted on, 0 when idle
}

func NewViewOrders(tableID uint, orders *stores.OrderStore) *ViewOrders {
	return &ViewOrders{orders: orders, tableID: tableID}
}

// Active returns the table's orders that still occupy it.
func (v *ViewOrders) Active() []models.Order {
	return lo.Filter(v.orders.OrdersByTable(v.tableID), func(o models.Order, _ int) bool {
		return o.IsActive()
	})
}

// History returns the paid and cancelled orders.
func (v *ViewOrders) History() []models.Order {
	return lo.Filter(v.orders.OrdersByTable(v.tableID), func(o models.Order, _ int) bool {
		return !o.IsActive()
	})
}

// CanEditQuantity gates the quantity stepper: the order must still be
// placed and the line itself must not be served or cancelled.
func (v *ViewOrders) CanEditQuantity(order models.Order, item models.OrderItem) bool {
	return order.Status == models.OrderPlaced && item.Editable()
}

// CanActOnItem gates the per-item status actions (start preparing, mark
// served, cancel).
func (v *ViewOrders) CanActOnItem(item models.OrderItem) bool {
	return item.Editable()
}

// CanPay reports whether the Pay action is offered for the order.
func (v *ViewOrders) CanPay(order models.Order) bool {
	return order.Payable()
}

// ChangeQuantity steps one line's quantity. Dropping to zero or below
// removes the line entirely.
func (v *ViewOrders) ChangeQuantity(ctx context.Context, orderID, itemID uint, delta int) error {
	order, item, err := v.find(orderID, itemID)
	if err != nil {
		return err
	}
	if !v.CanEditQuantity(order, item) {
		return nil
	}

	if err := v.acquire(itemID); err != nil {
		return err
	}
	defer v.release()

	quantity := item.Quantity + delta
	if quantity <= 0 {
		return v.orders.RemoveOrderItem(ctx, orderID, itemID)
	}
	return v.orders.UpdateOrderItem(ctx, orderID, itemID, models.OrderItemPatch{Quantity: &quantity})
}

// MarkItem advances or cancels one line's preparation status.
func (v *ViewOrders) MarkItem(ctx context.Context, orderID, itemID uint, status string) error {
	_, item, err := v.find(orderID, itemID)
	if err != nil {
		return err
	}
	if !v.CanActOnItem(item) {
		return nil
	}

	if err := v.acquire(itemID); err != nil {
		return err
	}
	defer v.release()

	return v.orders.UpdateOrderItem(ctx, orderID, itemID, models.OrderItemPatch{Status: &status})
}

func (v *ViewOrders) find(orderID, itemID uint) (models.Order, models.OrderItem, error) {
	order, ok := v.orders.Order(orderID)
	if !ok {
		return models.Order{}, models.OrderItem{}, stores.ErrOrderNotFound
	}
	item, ok := lo.Find(order.Items, func(i models.OrderItem) bool { return i.ID == itemID })
	if !ok {
		return models.Order{}, models.OrderItem{}, stores.ErrOrderNotFound
	}
	return order, item, nil
}

func (v *ViewOrders) acquire(itemID uint) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.processing != 0 {
		return ErrItemInFlight
	}
	v.processing = itemID
	return nil
}

func (v *ViewOrders) release() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.processing = 0
}
