package stores

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/services"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

// OrderStore caches orders and owns the item-level mutations with their
// derived totals. Every item operation recomputes total_amount and
// persists the full item list; the response replaces the cached order.
type OrderStore struct {
	mu      sync.Mutex
	svc     *services.OrderService
	orders  []models.Order
	loading bool
	err     string
}

func NewOrderStore(svc *services.OrderService) *OrderStore {
	return &OrderStore{svc: svc}
}

func (s *OrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Order(id uint) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Find(s.orders, func(o models.Order) bool { return o.ID == id })
}

// OrdersByTable filters the cache; it never hits the network, so callers
// must have fetched orders already.
func (s *OrderStore) OrdersByTable(tableID uint) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(s.orders, func(o models.Order, _ int) bool { return o.TableID == tableID })
}

func (s *OrderStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *OrderStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *OrderStore) Fetch(ctx context.Context) {
	s.begin()
	defer s.finish()

	orders, err := s.svc.GetOrders(ctx)
	if err != nil {
		s.fail("Failed to fetch orders", err)
		return
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
}

// Add creates an order in placed status with its nested items.
func (s *OrderStore) Add(ctx context.Context, order models.Order) (models.Order, error) {
	s.begin()
	defer s.finish()

	if order.Status == "" {
		order.Status = models.OrderPlaced
	}
	created, err := s.svc.CreateOrder(ctx, order)
	if err != nil {
		s.fail("Failed to add order", err)
		return models.Order{}, err
	}
	s.mu.Lock()
	s.orders = append(s.orders, created)
	s.mu.Unlock()
	utils.InfoLogger.Printf("Order %d created for table %d (%d items)", created.ID, created.TableID, len(created.Items))
	return created, nil
}

func (s *OrderStore) Update(ctx context.Context, id uint, patch models.OrderPatch) (models.Order, error) {
	s.begin()
	defer s.finish()
	return s.update(ctx, id, patch, "Failed to update order")
}

// UpdateStatus is a convenience wrapper over the generic update.
func (s *OrderStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	s.begin()
	defer s.finish()
	_, err := s.update(ctx, id, models.OrderPatch{Status: &status}, "Failed to update order")
	return err
}

func (s *OrderStore) Delete(ctx context.Context, id uint) error {
	s.begin()
	defer s.finish()

	if err := s.svc.DeleteOrder(ctx, id); err != nil {
		s.fail("Failed to delete order", err)
		return err
	}
	s.mu.Lock()
	s.orders = lo.Filter(s.orders, func(o models.Order, _ int) bool { return o.ID != id })
	s.mu.Unlock()
	return nil
}

// AddItemsToOrder merges new items into the order's list by item id:
// quantities accumulate for ids already present, new ids append. The
// recomputed total and the merged list are persisted in one update.
func (s *OrderStore) AddItemsToOrder(ctx context.Context, orderID uint, newItems []models.OrderItem) error {
	s.begin()
	defer s.finish()

	order, ok := s.Order(orderID)
	if !ok {
		s.fail("Failed to update order", ErrOrderNotFound)
		return ErrOrderNotFound
	}

	merged := make([]models.OrderItem, len(order.Items))
	copy(merged, order.Items)
	for _, item := range newItems {
		// Items without a server id are drafts; they always append, the
		// server assigns their identity on persist.
		_, idx, found := lo.FindIndexOf(merged, func(i models.OrderItem) bool {
			return item.ID != 0 && i.ID == item.ID
		})
		if found {
			merged[idx].Quantity += item.Quantity
		} else {
			merged = append(merged, item)
		}
	}

	return s.persistItems(ctx, orderID, merged)
}

// UpdateOrderItem applies a partial patch (status and/or quantity) to one
// item. An item whose resulting quantity is zero or less is dropped
// entirely, matching the minus-button-deletes-at-zero convention.
func (s *OrderStore) UpdateOrderItem(ctx context.Context, orderID, itemID uint, patch models.OrderItemPatch) error {
	s.begin()
	defer s.finish()

	order, ok := s.Order(orderID)
	if !ok {
		s.fail("Failed to update order", ErrOrderNotFound)
		return ErrOrderNotFound
	}

	updated := lo.Map(order.Items, func(item models.OrderItem, _ int) models.OrderItem {
		if item.ID != itemID {
			return item
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Status != nil {
			item.Status = *patch.Status
		}
		if patch.Notes != nil {
			item.Notes = *patch.Notes
		}
		return item
	})
	updated = lo.Filter(updated, func(item models.OrderItem, _ int) bool { return item.Quantity > 0 })

	return s.persistItems(ctx, orderID, updated)
}

// RemoveOrderItem deletes one line by id. Removing an absent id persists
// the unchanged list, so the operation is idempotent.
func (s *OrderStore) RemoveOrderItem(ctx context.Context, orderID, itemID uint) error {
	s.begin()
	defer s.finish()

	order, ok := s.Order(orderID)
	if !ok {
		s.fail("Failed to update order", ErrOrderNotFound)
		return ErrOrderNotFound
	}

	remaining := lo.Filter(order.Items, func(item models.OrderItem, _ int) bool { return item.ID != itemID })
	return s.persistItems(ctx, orderID, remaining)
}

func (s *OrderStore) persistItems(ctx context.Context, orderID uint, items []models.OrderItem) error {
	total := models.ItemsTotal(items)
	_, err := s.update(ctx, orderID, models.OrderPatch{
		Items:       items,
		TotalAmount: &total,
	}, "Failed to update order")
	return err
}

// update runs the service call and splices the authoritative response into
// the cache. Callers hold the loading flag.
func (s *OrderStore) update(ctx context.Context, id uint, patch models.OrderPatch, failMsg string) (models.Order, error) {
	updated, err := s.svc.UpdateOrder(ctx, id, patch)
	if err != nil {
		s.fail(failMsg, err)
		return models.Order{}, err
	}
	s.mu.Lock()
	s.orders = lo.Map(s.orders, func(o models.Order, _ int) models.Order {
		if o.ID == updated.ID {
			return updated
		}
		return o
	})
	s.mu.Unlock()
	return updated, nil
}

func (s *OrderStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *OrderStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *OrderStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	utils.ErrorLogger.Printf("%s: %v", msg, err)
}
