package dialogs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/stores"
)

// Walk-in orders not tied to a registered diner use this customer id.
const walkInCustomerID = 1

var ErrEmptyDraft = errors.New("order has no items")

// DraftItem is a client-only order line awaiting submission. It carries a
// generated ClientID instead of a server id, so draft and persisted
// identities can never be confused; the server assigns real ids once the
// order is created or updated.
type DraftItem struct {
	ClientID   string
	MenuItemID uint
	Name       string
	Price      float64
	Quantity   int
	Notes      string
}

// CreateOrderSession drives the create/update-order dialog: a filtered
// menu grid with a per-item quantity stepper building a draft list, then
// a submit that either creates a new placed order or merges the draft
// into an existing one.
type CreateOrderSession struct {
	mu     sync.Mutex
	orders *stores.OrderStore
	menu   *stores.MenuStore
	staff  *stores.StaffStore
	tables *stores.TableStore

	tableID  uint
	existing *models.Order

	category   uint // 0 means all categories
	search     string
	draft      []DraftItem
	submitting bool
}

func NewCreateOrderSession(tableID uint, existing *models.Order, orders *stores.OrderStore, menu *stores.MenuStore, staff *stores.StaffStore, tables *stores.TableStore) *CreateOrderSession {
	return &CreateOrderSession{
		orders:   orders,
		menu:     menu,
		staff:    staff,
		tables:   tables,
		tableID:  tableID,
		existing: existing,
	}
}

func (s *CreateOrderSession) SetCategory(categoryID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = categoryID
}

func (s *CreateOrderSession) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
}

// FilteredItems returns the menu items matching the category filter and
// the search text. Unavailable items are never offered.
func (s *CreateOrderSession) FilteredItems() []models.MenuItem {
	s.mu.Lock()
	category, search := s.category, strings.ToLower(s.search)
	s.mu.Unlock()

	return lo.Filter(s.menu.Items(), func(item models.MenuItem, _ int) bool {
		if !item.Available {
			return false
		}
		if category != 0 && item.CategoryID != category {
			return false
		}
		return search == "" || strings.Contains(strings.ToLower(item.Name), search)
	})
}

// ChangeQuantity steps a menu item's draft quantity by delta. A first
// increment creates the draft line; a decrement to zero or below removes
// it.
func (s *CreateOrderSession) ChangeQuantity(item models.MenuItem, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, found := lo.FindIndexOf(s.draft, func(d DraftItem) bool { return d.MenuItemID == item.ID })
	if found {
		s.draft[idx].Quantity += delta
		if s.draft[idx].Quantity <= 0 {
			s.draft = append(s.draft[:idx], s.draft[idx+1:]...)
		}
		return
	}
	if delta > 0 {
		s.draft = append(s.draft, DraftItem{
			ClientID:   uuid.NewString(),
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   1,
		})
	}
}

// Quantity reports the current draft quantity of a menu item.
func (s *CreateOrderSession) Quantity(menuItemID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := lo.Find(s.draft, func(d DraftItem) bool { return d.MenuItemID == menuItemID })
	if !ok {
		return 0
	}
	return d.Quantity
}

func (s *CreateOrderSession) Draft() []DraftItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DraftItem, len(s.draft))
	copy(out, s.draft)
	return out
}

// Total sums the draft.
func (s *CreateOrderSession) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.SumBy(s.draft, func(d DraftItem) float64 { return d.Price * float64(d.Quantity) })
}

// Submit persists the draft: a new placed order when none was passed in,
// otherwise a merge into the existing order. After creating a new order
// the table is marked occupied with the order assigned. The draft is
// reset only on success so a failed submit keeps the form intact.
func (s *CreateOrderSession) Submit(ctx context.Context) (models.Order, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return models.Order{}, ErrSubmitInFlight
	}
	if len(s.draft) == 0 {
		s.mu.Unlock()
		return models.Order{}, ErrEmptyDraft
	}
	s.submitting = true
	draft := make([]DraftItem, len(s.draft))
	copy(draft, s.draft)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	items := lo.Map(draft, func(d DraftItem, _ int) models.OrderItem {
		return models.OrderItem{
			MenuItemID: d.MenuItemID,
			Quantity:   d.Quantity,
			Notes:      d.Notes,
			Price:      d.Price,
			Name:       d.Name,
			Status:     models.ItemPlaced,
		}
	})

	if s.existing != nil {
		if err := s.orders.AddItemsToOrder(ctx, s.existing.ID, items); err != nil {
			return models.Order{}, err
		}
		updated, _ := s.orders.Order(s.existing.ID)
		s.reset()
		return updated, nil
	}

	staffID := uint(1)
	if current := s.staff.CurrentStaff(); current != nil {
		staffID = current.ID
	}

	created, err := s.orders.Add(ctx, models.Order{
		TableID:    s.tableID,
		CustomerID: walkInCustomerID,
		StaffID:    staffID,
		Status:     models.OrderPlaced,
		OrderTime:  time.Now(),
		Items:      items,
	})
	if err != nil {
		return models.Order{}, err
	}

	if err := s.tables.AssignOrder(ctx, s.tableID, created.ID); err != nil {
		return created, &stores.PartialFailureError{
			Op:        "create order",
			Completed: []string{"create order"},
			Failed:    "occupy table",
			Err:       err,
		}
	}

	s.reset()
	return created, nil
}

func (s *CreateOrderSession) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	s.search = ""
	s.category = 0
}
