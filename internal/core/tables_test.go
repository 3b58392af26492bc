package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro-pos/internal/models"
)

func tableStatus(t *testing.T, store *Store, id string) models.TableDisplayStatus {
	t.Helper()
	view, err := store.TableByID(id)
	require.NoError(t, err)
	return view.DisplayStatus
}

func TestTableDisplayStatusDerivation(t *testing.T) {
	store, _ := newTestStore()

	assert.Equal(t, models.TableAvailable, tableStatus(t, store, "t1"))

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)
	assert.Equal(t, models.TableOccupied, tableStatus(t, store, "t1"), "draft order occupies the table")

	kot, err := store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TablePreparing, tableStatus(t, store, "t1"))

	_, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusPreparing)
	require.NoError(t, err)
	_, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusReady)
	require.NoError(t, err)
	assert.Equal(t, models.TableReady, tableStatus(t, store, "t1"), "a ready ticket wins over order status")

	_, err = store.GenerateBill(waiterID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TableReady, tableStatus(t, store, "t1"))

	_, err = store.ProcessPayment(cashierID, order.ID, models.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, tableStatus(t, store, "t1"))
}

func TestTableBilledStatusWithoutReadyTicket(t *testing.T) {
	store, _ := newTestStore()

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)
	_, err = store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	_, err = store.GenerateBill(waiterID, order.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TableBilled, tableStatus(t, store, "t1"))
}

// A table binding pointing at a completed order can arrive in a loaded
// dataset. It must read as free, not occupied.
func TestStaleBindingToCompletedOrderReadsAvailable(t *testing.T) {
	store, _ := newTestStore()

	snap := testSnapshot()
	orderID := "ORD-STALE"
	snap.Orders = []models.Order{{
		ID:     orderID,
		Status: models.OrderStatusCompleted,
	}}
	snap.Tables[0].OrderID = &orderID
	store.Bootstrap(snap)

	assert.Equal(t, models.TableAvailable, tableStatus(t, store, "t1"))

	_, ok, err := store.ActiveOrderForTable("t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMoveTableClampsToCanvas(t *testing.T) {
	store, _ := newTestStore()
	store.SetCanvas(800, 600)

	table, err := store.MoveTable(managerID, "t1", 120, 340)
	require.NoError(t, err)
	assert.Equal(t, 120, table.X)
	assert.Equal(t, 340, table.Y)

	table, err = store.MoveTable(managerID, "t1", -40, 9000)
	require.NoError(t, err)
	assert.Equal(t, 0, table.X)
	assert.Equal(t, 600, table.Y)
}

func TestMoveTableRequiresPermission(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.MoveTable(waiterID, "t1", 10, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestActiveOrderForTable(t *testing.T) {
	store, _ := newTestStore()

	_, ok, err := store.ActiveOrderForTable("t1")
	require.NoError(t, err)
	assert.False(t, ok)

	created, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)

	active, ok, err := store.ActiveOrderForTable("t1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, active.ID)

	_, _, err = store.ActiveOrderForTable("nope")
	assert.ErrorIs(t, err, ErrTableNotFound)
}
