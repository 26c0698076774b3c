package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/services"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

// TableStore caches the table collection and runs the mutations with
// server side effects. The cache is only modified after a successful
// response; the server copy is authoritative.
type TableStore struct {
	mu      sync.Mutex
	svc     *services.TableService
	tables  []models.Table
	loading bool
	err     string
}

func NewTableStore(svc *services.TableService) *TableStore {
	return &TableStore{svc: svc}
}

// Tables returns a snapshot of the cached collection.
func (s *TableStore) Tables() []models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *TableStore) Table(id uint) (models.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Find(s.tables, func(t models.Table) bool { return t.ID == id })
}

func (s *TableStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *TableStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch reloads the full collection. Transport errors are recorded in the
// store, never returned: list screens render the stale cache plus the
// error banner and offer a retry.
func (s *TableStore) Fetch(ctx context.Context) {
	s.begin()
	defer s.finish()

	tables, err := s.svc.GetTables(ctx)
	if err != nil {
		s.fail("Failed to fetch tables", err)
		return
	}
	s.mu.Lock()
	s.tables = tables
	s.mu.Unlock()
}

// Add creates a table with the next sequential table number and status
// available.
func (s *TableStore) Add(ctx context.Context, capacity int) (models.Table, error) {
	s.begin()
	defer s.finish()

	table := models.Table{
		TableNumber: s.nextTableNumber(),
		Capacity:    capacity,
		Status:      models.TableAvailable,
	}
	created, err := s.svc.CreateTable(ctx, table)
	if err != nil {
		s.fail("Failed to add table", err)
		return models.Table{}, err
	}

	s.mu.Lock()
	s.tables = append(s.tables, created)
	s.mu.Unlock()
	utils.InfoLogger.Printf("Table %d added (capacity=%d)", created.TableNumber, created.Capacity)
	return created, nil
}

func (s *TableStore) Delete(ctx context.Context, id uint) error {
	s.begin()
	defer s.finish()

	if err := s.svc.DeleteTable(ctx, id); err != nil {
		s.fail("Failed to delete table", err)
		return err
	}
	s.mu.Lock()
	s.tables = lo.Filter(s.tables, func(t models.Table, _ int) bool { return t.ID != id })
	s.mu.Unlock()
	return nil
}

// UpdateStatus performs the single-field status update used when an order
// is paid (available) or assigned (occupied).
func (s *TableStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	s.begin()
	defer s.finish()

	updated, err := s.svc.UpdateTable(ctx, id, models.TablePatch{Status: &status})
	if err != nil {
		s.fail("Failed to update table status", err)
		return err
	}
	s.replace(updated)
	return nil
}

// MergeTables combines the selected tables: ids[0] survives as the main
// table with the summed capacity, the rest are marked occupied and
// cross-reference the main table. The full collection is refetched
// afterwards rather than patching the cache from stale sub-fields.
func (s *TableStore) MergeTables(ctx context.Context, ids []uint) error {
	if len(ids) < 2 {
		return ErrNotEnoughTables
	}

	s.begin()
	defer s.finish()

	s.mu.Lock()
	main, ok := lo.Find(s.tables, func(t models.Table) bool { return t.ID == ids[0] })
	selected := lo.Filter(s.tables, func(t models.Table, _ int) bool { return lo.Contains(ids, t.ID) })
	s.mu.Unlock()
	if !ok {
		s.fail("Failed to merge tables", ErrTableNotFound)
		return ErrTableNotFound
	}

	totalCapacity := lo.SumBy(selected, func(t models.Table) int { return t.Capacity })
	partners := ids[1:]

	var completed []string
	if _, err := s.svc.UpdateTable(ctx, main.ID, models.TablePatch{
		Capacity:   &totalCapacity,
		MergedWith: partners,
	}); err != nil {
		s.fail("Failed to merge tables", err)
		return &PartialFailureError{Op: "merge tables", Failed: "update main table", Err: err}
	}
	completed = append(completed, "update main table")

	occupied := models.TableOccupied
	for _, id := range partners {
		if _, err := s.svc.UpdateTable(ctx, id, models.TablePatch{
			Status:     &occupied,
			MergedWith: []uint{main.ID},
		}); err != nil {
			s.fail("Failed to merge tables", err)
			return &PartialFailureError{
				Op:        "merge tables",
				Completed: completed,
				Failed:    fmt.Sprintf("mark table %d occupied", id),
				Err:       err,
			}
		}
		completed = append(completed, fmt.Sprintf("mark table %d occupied", id))
	}

	tables, err := s.svc.GetTables(ctx)
	if err != nil {
		s.fail("Failed to merge tables", err)
		return &PartialFailureError{Op: "merge tables", Completed: completed, Failed: "reload tables", Err: err}
	}
	s.mu.Lock()
	s.tables = tables
	s.mu.Unlock()
	utils.InfoLogger.Printf("Merged %d tables into table %d (capacity=%d)", len(ids), main.ID, totalCapacity)
	return nil
}

// SplitTable carves newCapacity seats out of a table into a new available
// table. The new table records its parent via split_from.
func (s *TableStore) SplitTable(ctx context.Context, id uint, newCapacity int) (models.Table, error) {
	s.begin()
	defer s.finish()

	s.mu.Lock()
	original, ok := lo.Find(s.tables, func(t models.Table) bool { return t.ID == id })
	s.mu.Unlock()
	if !ok {
		s.fail("Failed to split table", ErrTableNotFound)
		return models.Table{}, ErrTableNotFound
	}
	if newCapacity <= 0 {
		s.fail("Failed to split table", ErrInvalidCapacity)
		return models.Table{}, ErrInvalidCapacity
	}
	if newCapacity >= original.Capacity {
		s.fail("Failed to split table", ErrCapacityTooLarge)
		return models.Table{}, ErrCapacityTooLarge
	}

	parentID := original.ID
	created, err := s.svc.CreateTable(ctx, models.Table{
		TableNumber: s.nextTableNumber(),
		Capacity:    newCapacity,
		Status:      models.TableAvailable,
		SplitFrom:   &parentID,
	})
	if err != nil {
		s.fail("Failed to split table", err)
		return models.Table{}, &PartialFailureError{Op: "split table", Failed: "create split table", Err: err}
	}

	remaining := original.Capacity - newCapacity
	updated, err := s.svc.UpdateTable(ctx, original.ID, models.TablePatch{Capacity: &remaining})
	if err != nil {
		s.fail("Failed to split table", err)
		return models.Table{}, &PartialFailureError{
			Op:        "split table",
			Completed: []string{"create split table"},
			Failed:    "reduce original capacity",
			Err:       err,
		}
	}

	s.mu.Lock()
	s.tables = append(lo.Map(s.tables, func(t models.Table, _ int) models.Table {
		if t.ID == original.ID {
			return updated
		}
		return t
	}), created)
	s.mu.Unlock()
	utils.InfoLogger.Printf("Table %d split: new table %d (capacity=%d)", original.ID, created.ID, newCapacity)
	return created, nil
}

// AssignOrder marks the table occupied by the given order.
func (s *TableStore) AssignOrder(ctx context.Context, tableID, orderID uint) error {
	s.begin()
	defer s.finish()

	occupied := models.TableOccupied
	updated, err := s.svc.UpdateTable(ctx, tableID, models.TablePatch{
		Status:         &occupied,
		CurrentOrderID: &orderID,
	})
	if err != nil {
		s.fail("Failed to assign order to table", err)
		return err
	}
	s.replace(updated)
	return nil
}

// ClearTable resets a table to cleaning and drops its order and
// merge/split references.
func (s *TableStore) ClearTable(ctx context.Context, id uint) error {
	s.begin()
	defer s.finish()

	cleaning := models.TableCleaning
	updated, err := s.svc.UpdateTable(ctx, id, models.TablePatch{
		Status:    &cleaning,
		ClearRefs: true,
	})
	if err != nil {
		s.fail("Failed to clear table", err)
		return err
	}
	s.replace(updated)
	return nil
}

func (s *TableStore) nextTableNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	max := 0
	for _, t := range s.tables {
		if t.TableNumber > max {
			max = t.TableNumber
		}
	}
	return max + 1
}

func (s *TableStore) replace(table models.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = lo.Map(s.tables, func(t models.Table, _ int) models.Table {
		if t.ID == table.ID {
			return table
		}
		return t
	})
}

func (s *TableStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *TableStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *TableStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	utils.ErrorLogger.Printf("%s: %v", msg, err)
}
