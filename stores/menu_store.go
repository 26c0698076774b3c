package stores

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/services"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

// MenuStore caches menu items and categories.
type MenuStore struct {
	mu         sync.Mutex
	svc        *services.MenuService
	items      []models.MenuItem
	categories []models.Category
	loading    bool
	err        string
}

func NewMenuStore(svc *services.MenuService) *MenuStore {
	return &MenuStore{svc: svc}
}

func (s *MenuStore) Items() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MenuStore) Item(id uint) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Find(s.items, func(i models.MenuItem) bool { return i.ID == id })
}

func (s *MenuStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *MenuStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *MenuStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *MenuStore) FetchItems(ctx context.Context) {
	s.begin()
	defer s.finish()

	items, err := s.svc.GetItems(ctx)
	if err != nil {
		s.fail("Failed to fetch menu items", err)
		return
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *MenuStore) FetchCategories(ctx context.Context) {
	s.begin()
	defer s.finish()

	categories, err := s.svc.GetCategories(ctx)
	if err != nil {
		s.fail("Failed to fetch categories", err)
		return
	}
	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
}

func (s *MenuStore) AddItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	s.begin()
	defer s.finish()

	created, err := s.svc.CreateItem(ctx, item)
	if err != nil {
		s.fail("Failed to add menu item", err)
		return models.MenuItem{}, err
	}
	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

func (s *MenuStore) UpdateItem(ctx context.Context, id uint, item models.MenuItem) (models.MenuItem, error) {
	s.begin()
	defer s.finish()
	return s.updateItem(ctx, id, item)
}

func (s *MenuStore) DeleteItem(ctx context.Context, id uint) error {
	s.begin()
	defer s.finish()

	if err := s.svc.DeleteItem(ctx, id); err != nil {
		s.fail("Failed to delete menu item", err)
		return err
	}
	s.mu.Lock()
	s.items = lo.Filter(s.items, func(i models.MenuItem, _ int) bool { return i.ID != id })
	s.mu.Unlock()
	return nil
}

// ToggleItemAvailability flips whether the item is offered in the
// ordering flow.
func (s *MenuStore) ToggleItemAvailability(ctx context.Context, id uint) error {
	item, ok := s.Item(id)
	if !ok {
		return nil
	}
	item.Available = !item.Available

	s.begin()
	defer s.finish()
	_, err := s.updateItem(ctx, id, item)
	return err
}

func (s *MenuStore) AddCategory(ctx context.Context, category models.Category) (models.Category, error) {
	s.begin()
	defer s.finish()

	created, err := s.svc.CreateCategory(ctx, category)
	if err != nil {
		s.fail("Failed to add category", err)
		return models.Category{}, err
	}
	s.mu.Lock()
	s.categories = append(s.categories, created)
	s.mu.Unlock()
	return created, nil
}

func (s *MenuStore) UpdateCategory(ctx context.Context, id uint, category models.Category) (models.Category, error) {
	s.begin()
	defer s.finish()

	updated, err := s.svc.UpdateCategory(ctx, id, category)
	if err != nil {
		s.fail("Failed to update category", err)
		return models.Category{}, err
	}
	s.mu.Lock()
	s.categories = lo.Map(s.categories, func(c models.Category, _ int) models.Category {
		if c.ID == id {
			return updated
		}
		return c
	})
	s.mu.Unlock()
	return updated, nil
}

// DeleteCategory removes the category and drops its items from the cache;
// the server cascades on its side.
func (s *MenuStore) DeleteCategory(ctx context.Context, id uint) error {
	s.begin()
	defer s.finish()

	if err := s.svc.DeleteCategory(ctx, id); err != nil {
		s.fail("Failed to delete category", err)
		return err
	}
	s.mu.Lock()
	s.categories = lo.Filter(s.categories, func(c models.Category, _ int) bool { return c.ID != id })
	s.items = lo.Filter(s.items, func(i models.MenuItem, _ int) bool { return i.CategoryID != id })
	s.mu.Unlock()
	return nil
}

func (s *MenuStore) updateItem(ctx context.Context, id uint, item models.MenuItem) (models.MenuItem, error) {
	updated, err := s.svc.UpdateItem(ctx, id, item)
	if err != nil {
		s.fail("Failed to update menu item", err)
		return models.MenuItem{}, err
	}
	s.mu.Lock()
	s.items = lo.Map(s.items, func(i models.MenuItem, _ int) models.MenuItem {
		if i.ID == id {
			return updated
		}
		return i
	})
	s.mu.Unlock()
	return updated, nil
}

func (s *MenuStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *MenuStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *MenuStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	utils.ErrorLogger.Printf("%s: %v", msg, err)
}
