package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro-pos/internal/models"
)

func ribeye() models.MenuItem {
	return models.MenuItem{
		ID: 7, Name: "Ribeye Steak (12oz)", Price: 38.00,
		CustomizationTemplate: []models.CustomizationTemplate{
			{Type: models.CustomizationNotes, Label: "Cooking Temperature"},
			{Type: models.CustomizationSize, Label: "Side Dish", Options: []models.CustomizationOption{
				{Name: "Fries", Price: 0},
				{Name: "Mashed Potatoes", Price: 0},
				{Name: "Grilled Asparagus", Price: 2.00},
			}},
		},
	}
}

func pizza() models.MenuItem {
	return models.MenuItem{
		ID: 9, Name: "Margherita Pizza", Price: 15.99,
		CustomizationTemplate: []models.CustomizationTemplate{
			{Type: models.CustomizationToppings, Label: "Add Toppings", MaxSelections: 3, Options: []models.CustomizationOption{
				{Name: "Extra Cheese", Price: 1.50},
				{Name: "Mushrooms", Price: 0.75},
				{Name: "Pepperoni", Price: 1.25},
				{Name: "Olives", Price: 1.00},
			}},
		},
	}
}

func TestResolveFillsAuthoritativePrices(t *testing.T) {
	resolved, err := Resolve(ribeye(), []models.SelectedCustomization{
		{Label: "Cooking Temperature", Value: "Medium Rare", Price: 99}, // client price ignored
		{Label: "Side Dish", Value: "Grilled Asparagus"},
	})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, 0.0, resolved[0].Price, "notes contribute zero")
	assert.Equal(t, 2.00, resolved[1].Price)
	assert.Equal(t, 40.00, FinalPrice(ribeye(), resolved))
}

func TestResolveRejectsUnknownLabelAndOption(t *testing.T) {
	_, err := Resolve(ribeye(), []models.SelectedCustomization{{Label: "Sauce", Value: "Pesto"}})
	assert.ErrorIs(t, err, ErrUnknownCustomization)

	_, err = Resolve(ribeye(), []models.SelectedCustomization{{Label: "Side Dish", Value: "Caviar"}})
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestResolveRejectsDoubleSizeSelection(t *testing.T) {
	_, err := Resolve(ribeye(), []models.SelectedCustomization{
		{Label: "Side Dish", Value: "Fries"},
		{Label: "Side Dish", Value: "Mashed Potatoes"},
	})
	assert.ErrorIs(t, err, ErrDuplicateSize)
}

func TestResolveEnforcesToppingsCap(t *testing.T) {
	ok := []models.SelectedCustomization{
		{Label: "Add Toppings", Value: "Extra Cheese"},
		{Label: "Add Toppings", Value: "Mushrooms"},
		{Label: "Add Toppings", Value: "Pepperoni"},
	}
	_, err := Resolve(pizza(), ok)
	require.NoError(t, err)

	_, err = Resolve(pizza(), append(ok, models.SelectedCustomization{Label: "Add Toppings", Value: "Extra Cheese"}))
	assert.ErrorIs(t, err, ErrTooManyToppings)
}

func TestToggleToppingCapIsNoOp(t *testing.T) {
	tpl := pizza().CustomizationTemplate[0]

	sel := []string{}
	for _, name := range []string{"Extra Cheese", "Mushrooms", "Pepperoni"} {
		sel = ToggleTopping(tpl, sel, name)
	}
	require.Len(t, sel, 3)

	// A fourth topping would breach the cap, so the toggle is ignored
	// and the set, and therefore the price, stays unchanged.
	after := ToggleTopping(tpl, sel, "Olives")
	assert.Equal(t, sel, after)

	// Toggling an existing topping removes it.
	after = ToggleTopping(tpl, sel, "Mushrooms")
	assert.Equal(t, []string{"Extra Cheese", "Pepperoni"}, after)
}

func TestOrderTotals(t *testing.T) {
	items := []models.OrderItem{
		{FinalPrice: 38.00, Quantity: 1},
		{FinalPrice: 5.99, Quantity: 2},
	}
	vat := &models.Tax{Name: "VAT", Rate: 10, IsDefault: true}

	subtotal, details, total := OrderTotals(items, vat)
	assert.InDelta(t, 49.98, subtotal, 1e-9)
	require.NotNil(t, details)
	assert.InDelta(t, 4.998, details.Amount, 1e-9)
	assert.InDelta(t, subtotal+details.Amount, total, 1e-9)

	subtotal, details, total = OrderTotals(nil, nil)
	assert.Zero(t, subtotal)
	assert.Nil(t, details)
	assert.Zero(t, total)
}

func TestCustomizationsEqualIsOrderIndependent(t *testing.T) {
	a := []models.SelectedCustomization{
		{Label: "Size", Value: "Large", Price: 2},
		{Label: "Add Toppings", Value: "Mushrooms", Price: 0.75},
	}
	b := []models.SelectedCustomization{
		{Label: "Add Toppings", Value: "Mushrooms", Price: 0.75},
		{Label: "Size", Value: "Large", Price: 2},
	}
	assert.True(t, CustomizationsEqual(a, b))

	small := []models.SelectedCustomization{
		{Label: "Size", Value: "Small"},
		{Label: "Add Toppings", Value: "Mushrooms"},
	}
	assert.False(t, CustomizationsEqual(a, small))
	assert.False(t, CustomizationsEqual(a, a[:1]))
}
