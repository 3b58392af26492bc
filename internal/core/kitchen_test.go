package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro-pos/internal/models"
)

func TestSendToKitchenWithNothingUnsentIsNoOp(t *testing.T) {
	store, _ := newTestStore()

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)

	kot, err := store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	require.NotNil(t, kot)

	// Everything is sent now; a second send must not create a ticket or
	// touch the order.
	kot, err = store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	assert.Nil(t, kot)
	assert.Len(t, store.KOTs(""), 1)

	after, err := store.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, after.Status)
}

func TestSendToKitchenSnapshotsOnlyTheUnsentWave(t *testing.T) {
	store, _ := newTestStore()

	order, err := store.AddItem(waiterID, "t1", 7, mediumRareFries())
	require.NoError(t, err)

	first, err := store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, models.KOTStatusNew, first.Status)
	assert.Equal(t, "T1", first.TableName)
	assert.Equal(t, "Main Dining", first.POSCenterName)
	assert.Equal(t, "Ribeye Steak (12oz)", first.Items[0].Name)
	assert.Equal(t, mediumRareFries()[0].Value, first.Items[0].Customizations[0].Value)

	// Second wave carries only the items added after the first send.
	_, err = store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)
	_, err = store.AddItem(waiterID, "t1", 9, nil)
	require.NoError(t, err)

	second, err := store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.KOTs(""), 2)

	after, err := store.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Empty(t, UnsentItems(after))
}

func TestSendToKitchenMovesDraftToPending(t *testing.T) {
	store, _ := newTestStore()

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDraft, order.Status)

	_, err = store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)

	after, err := store.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, after.Status)

	// A later wave keeps the order Pending.
	_, err = store.AddItem(waiterID, "t1", 9, nil)
	require.NoError(t, err)
	_, err = store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	after, err = store.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, after.Status)
}

func TestSendToKitchenRequiresPermission(t *testing.T) {
	store, _ := newTestStore()

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)

	_, err = store.SendToKitchen(cashierID, order.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, store.KOTs(""))
}

func TestAdvanceKOTIsMonotonic(t *testing.T) {
	store, _ := newTestStore()

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)
	kot, err := store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)

	// Skipping a step is rejected.
	_, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusReady)
	assert.ErrorIs(t, err, ErrInvalidKOTTransition)

	updated, err := store.AdvanceKOT(chefID, kot.ID, models.KOTStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.KOTStatusPreparing, updated.Status)

	updated, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusReady)
	require.NoError(t, err)
	assert.Equal(t, models.KOTStatusReady, updated.Status)

	// Ready is terminal: no reopening, no repeat.
	_, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidKOTTransition)
	_, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusNew)
	assert.ErrorIs(t, err, ErrInvalidKOTTransition)
}

func TestKOTListenerFires(t *testing.T) {
	store, _ := newTestStore()

	var events []models.KOT
	store.SetKOTListener(func(kot models.KOT) { events = append(events, kot) })

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)
	kot, err := store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)
	_, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusPreparing)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, models.KOTStatusNew, events[0].Status)
	assert.Equal(t, models.KOTStatusPreparing, events[1].Status)
}

func TestKOTFilterByStatus(t *testing.T) {
	store, _ := newTestStore()

	order, err := store.AddItem(waiterID, "t1", 11, nil)
	require.NoError(t, err)
	kot, err := store.SendToKitchen(waiterID, order.ID)
	require.NoError(t, err)

	assert.Len(t, store.KOTs(models.KOTStatusNew), 1)
	_, err = store.AdvanceKOT(chefID, kot.ID, models.KOTStatusPreparing)
	require.NoError(t, err)
	assert.Empty(t, store.KOTs(models.KOTStatusNew))
	assert.Len(t, store.KOTs(models.KOTStatusPreparing), 1)
}
