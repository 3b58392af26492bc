package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro-pos/internal/models"
)

func TestMemoryGatewayRoundTrip(t *testing.T) {
	gw := NewMemoryGateway()

	saved := []models.Category{{ID: 1, Name: "Steaks"}, {ID: 2, Name: "Dessert"}}
	require.NoError(t, gw.SaveCollection(CollectionCategories, saved))

	var loaded []models.Category
	require.NoError(t, gw.LoadCollection(CollectionCategories, &loaded))
	assert.Equal(t, saved, loaded)
}

func TestMemoryGatewaySaveReplacesWholeCollection(t *testing.T) {
	gw := NewMemoryGateway()
	require.NoError(t, gw.SaveCollection(CollectionCategories, []models.Category{{ID: 1}, {ID: 2}}))
	require.NoError(t, gw.SaveCollection(CollectionCategories, []models.Category{{ID: 3}}))

	var loaded []models.Category
	require.NoError(t, gw.LoadCollection(CollectionCategories, &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, 3, loaded[0].ID)
}

func TestMemoryGatewayMissingCollectionLeavesOutUntouched(t *testing.T) {
	gw := NewMemoryGateway()
	var loaded []models.Category
	require.NoError(t, gw.LoadCollection("neverSaved", &loaded))
	assert.Nil(t, loaded)
}
