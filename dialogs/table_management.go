package dialogs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/stores"
)

// Table management actions.
type TableAction string

const (
	ActionAdd   TableAction = "add"
	ActionMerge TableAction = "merge"
	ActionSplit TableAction = "split"
)

const (
	minCapacity = 1
	maxCapacity = 20
)

var (
	ErrSubmitInFlight   = errors.New("submission already in progress")
	ErrNoTableSelected  = errors.New("no table selected for splitting")
	ErrTableUnavailable = errors.New("only available tables can be merged")
)

// TableManagementForm is the three-mode form behind add/merge/split. Field
// rules (capacity ranges) live in validate; the cross-field guards that a
// declarative schema cannot express (new capacity below the current one,
// at least two merge selections) run as explicit pre-submit checks.
type TableManagementForm struct {
	mu            sync.Mutex
	action        TableAction
	tables        *stores.TableStore
	selectedTable *models.Table

	capacity   int
	selected   []uint
	submitting bool
}

// NewTableManagementForm prepares a form for the given action.
// selectedTable is required for split and ignored otherwise; the split
// capacity defaults to half the table, the add capacity to four seats.
func NewTableManagementForm(action TableAction, tables *stores.TableStore, selectedTable *models.Table) *TableManagementForm {
	f := &TableManagementForm{
		action:        action,
		tables:        tables,
		selectedTable: selectedTable,
		capacity:      4,
	}
	if action == ActionSplit && selectedTable != nil {
		f.capacity = selectedTable.Capacity / 2
	}
	return f
}

func (f *TableManagementForm) Action() TableAction {
	return f.action
}

func (f *TableManagementForm) SetCapacity(capacity int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.capacity = capacity
}

func (f *TableManagementForm) Capacity() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.capacity
}

// AvailableTables lists the merge candidates: only available tables are
// offered for selection.
func (f *TableManagementForm) AvailableTables() []models.Table {
	return lo.Filter(f.tables.Tables(), func(t models.Table, _ int) bool {
		return t.Status == models.TableAvailable
	})
}

// ToggleSelection adds or removes a merge candidate. Tables that are not
// available are never selectable.
func (f *TableManagementForm) ToggleSelection(id uint) error {
	table, ok := f.tables.Table(id)
	if !ok {
		return stores.ErrTableNotFound
	}
	if table.Status != models.TableAvailable {
		return ErrTableUnavailable
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if lo.Contains(f.selected, id) {
		f.selected = lo.Filter(f.selected, func(s uint, _ int) bool { return s != id })
	} else {
		f.selected = append(f.selected, id)
	}
	return nil
}

func (f *TableManagementForm) Selected() []uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]uint, len(f.selected))
	copy(out, f.selected)
	return out
}

// RemainingCapacity is the live "the original table will keep N seats"
// figure shown while the split capacity is being typed.
func (f *TableManagementForm) RemainingCapacity() int {
	if f.selectedTable == nil {
		return 0
	}
	return f.selectedTable.Capacity - f.Capacity()
}

// CanSubmit mirrors the submit button's enabled state.
func (f *TableManagementForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	if f.action == ActionMerge {
		return len(f.selected) >= 2
	}
	return true
}

// Validate runs the declarative field rules for the current action.
func (f *TableManagementForm) Validate() error {
	switch f.action {
	case ActionAdd:
		capacity := f.Capacity()
		if capacity < minCapacity {
			return fmt.Errorf("capacity must be at least %d", minCapacity)
		}
		if capacity > maxCapacity {
			return fmt.Errorf("capacity cannot exceed %d", maxCapacity)
		}
	case ActionSplit:
		if f.Capacity() < minCapacity {
			return fmt.Errorf("new capacity must be at least %d", minCapacity)
		}
	}
	return nil
}

// Submit runs the selected action: idle -> submitting -> idle. Schema
// validation first, then the cross-field guards, then the store call.
func (f *TableManagementForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if err := f.Validate(); err != nil {
		return err
	}

	switch f.action {
	case ActionAdd:
		_, err := f.tables.Add(ctx, f.Capacity())
		return err

	case ActionMerge:
		selected := f.Selected()
		if len(selected) < 2 {
			return stores.ErrNotEnoughTables
		}
		return f.tables.MergeTables(ctx, selected)

	case ActionSplit:
		if f.selectedTable == nil {
			return ErrNoTableSelected
		}
		// Not expressible in the field schema: depends on the table.
		if f.Capacity() >= f.selectedTable.Capacity {
			return stores.ErrCapacityTooLarge
		}
		_, err := f.tables.SplitTable(ctx, f.selectedTable.ID, f.Capacity())
		return err
	}
	return fmt.Errorf("unknown action %q", f.action)
}
