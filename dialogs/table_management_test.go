package dialogs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venkatakrishna06/restaurant-pos/dialogs"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/stores"
)

func TestAddFormCapacityBounds(t *testing.T) {
	form := dialogs.NewTableManagementForm(dialogs.ActionAdd, nil, nil)
	assert.Equal(t, 4, form.Capacity())

	form.SetCapacity(0)
	assert.Error(t, form.Validate())

	form.SetCapacity(21)
	assert.Error(t, form.Validate())

	form.SetCapacity(20)
	assert.NoError(t, form.Validate())
}

func TestAddFormCreatesTable(t *testing.T) {
	env := newTestEnv(t)

	form := dialogs.NewTableManagementForm(dialogs.ActionAdd, env.tables, nil)
	form.SetCapacity(6)

	assert.True(t, form.CanSubmit())
	assert.NoError(t, form.Submit(context.Background()))

	tables := env.tables.Tables()
	assert.Len(t, tables, 1)
	assert.Equal(t, 6, tables[0].Capacity)
}

func TestMergeFormNeedsTwoSelections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t1, _ := env.tables.Add(ctx, 4)
	env.tables.Add(ctx, 6)

	form := dialogs.NewTableManagementForm(dialogs.ActionMerge, env.tables, nil)
	assert.False(t, form.CanSubmit())

	assert.NoError(t, form.ToggleSelection(t1.ID))
	assert.False(t, form.CanSubmit())
	assert.ErrorIs(t, form.Submit(ctx), stores.ErrNotEnoughTables)
}

func TestMergeFormSelectionRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t1, _ := env.tables.Add(ctx, 4)
	t2, _ := env.tables.Add(ctx, 6)
	assert.NoError(t, env.tables.UpdateStatus(ctx, t2.ID, models.TableOccupied))

	form := dialogs.NewTableManagementForm(dialogs.ActionMerge, env.tables, nil)

	assert.ErrorIs(t, form.ToggleSelection(t2.ID), dialogs.ErrTableUnavailable)
	assert.ErrorIs(t, form.ToggleSelection(999), stores.ErrTableNotFound)

	// Only the available table is offered as a candidate.
	candidates := form.AvailableTables()
	assert.Len(t, candidates, 1)
	assert.Equal(t, t1.ID, candidates[0].ID)

	// Toggling twice deselects.
	assert.NoError(t, form.ToggleSelection(t1.ID))
	assert.Len(t, form.Selected(), 1)
	assert.NoError(t, form.ToggleSelection(t1.ID))
	assert.Empty(t, form.Selected())
}

func TestMergeFormCombinesTables(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t1, _ := env.tables.Add(ctx, 4)
	t2, _ := env.tables.Add(ctx, 6)

	form := dialogs.NewTableManagementForm(dialogs.ActionMerge, env.tables, nil)
	assert.NoError(t, form.ToggleSelection(t1.ID))
	assert.NoError(t, form.ToggleSelection(t2.ID))
	assert.True(t, form.CanSubmit())

	assert.NoError(t, form.Submit(ctx))

	main, _ := env.tables.Table(t1.ID)
	assert.Equal(t, 10, main.Capacity)

	partner, _ := env.tables.Table(t2.ID)
	assert.Equal(t, models.TableOccupied, partner.Status)
}

func TestSplitFormDefaultsToHalf(t *testing.T) {
	table := models.Table{ID: 1, Capacity: 8}

	form := dialogs.NewTableManagementForm(dialogs.ActionSplit, nil, &table)
	assert.Equal(t, 4, form.Capacity())
	assert.Equal(t, 4, form.RemainingCapacity())

	form.SetCapacity(3)
	assert.Equal(t, 5, form.RemainingCapacity())
}

func TestSplitFormGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	table, _ := env.tables.Add(ctx, 6)

	noTable := dialogs.NewTableManagementForm(dialogs.ActionSplit, env.tables, nil)
	noTable.SetCapacity(2)
	assert.ErrorIs(t, noTable.Submit(ctx), dialogs.ErrNoTableSelected)

	form := dialogs.NewTableManagementForm(dialogs.ActionSplit, env.tables, &table)
	form.SetCapacity(0)
	assert.Error(t, form.Submit(ctx))

	form.SetCapacity(6)
	assert.ErrorIs(t, form.Submit(ctx), stores.ErrCapacityTooLarge)
}

func TestSplitFormCreatesNewTable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	table, _ := env.tables.Add(ctx, 8)

	form := dialogs.NewTableManagementForm(dialogs.ActionSplit, env.tables, &table)
	form.SetCapacity(3)
	assert.NoError(t, form.Submit(ctx))

	tables := env.tables.Tables()
	assert.Len(t, tables, 2)

	reduced, _ := env.tables.Table(table.ID)
	assert.Equal(t, 5, reduced.Capacity)
}

// Floor rearrangement end to end: split one table, then merge two others,
// and check every capacity lands where expected.
func TestFloorRearrangement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t1, _ := env.tables.Add(ctx, 4)
	t2, _ := env.tables.Add(ctx, 8)
	t3, _ := env.tables.Add(ctx, 6)

	split := dialogs.NewTableManagementForm(dialogs.ActionSplit, env.tables, &t2)
	split.SetCapacity(3)
	assert.NoError(t, split.Submit(ctx))

	merge := dialogs.NewTableManagementForm(dialogs.ActionMerge, env.tables, nil)
	assert.NoError(t, merge.ToggleSelection(t1.ID))
	assert.NoError(t, merge.ToggleSelection(t3.ID))
	assert.NoError(t, merge.Submit(ctx))

	assert.Len(t, env.tables.Tables(), 4)

	main, _ := env.tables.Table(t1.ID)
	assert.Equal(t, 10, main.Capacity)

	reduced, _ := env.tables.Table(t2.ID)
	assert.Equal(t, 5, reduced.Capacity)

	partner, _ := env.tables.Table(t3.ID)
	assert.Equal(t, models.TableOccupied, partner.Status)
	assert.Equal(t, []uint{t1.ID}, partner.MergedWith)
}
