// Package pricing computes frozen item prices and order totals.
//
// Prices are computed exactly once, when an order line is saved; later
// changes to the underlying menu item never reach frozen lines. Totals
// are always recomputed from scratch on mutation, never patched
// incrementally, so they cannot drift.
package pricing

import (
	"errors"
	"fmt"
	"sort"

	"bistro-pos/internal/models"
)

var (
	ErrUnknownCustomization = errors.New("customization does not match any template")
	ErrUnknownOption        = errors.New("customization value is not an option of its template")
	ErrDuplicateSize        = errors.New("size template accepts a single option")
	ErrTooManyToppings      = errors.New("toppings selection exceeds the template cap")
)

// Resolve validates a raw selection set against the menu item's
// customization templates and returns a copy with authoritative price
// deltas filled in. Client-supplied prices are ignored: the delta always
// comes from the template option, and notes contribute zero.
func Resolve(item models.MenuItem, selections []models.SelectedCustomization) ([]models.SelectedCustomization, error) {
	resolved := make([]models.SelectedCustomization, 0, len(selections))
	perLabel := make(map[string]int)

	for _, sel := range selections {
		tpl, ok := item.TemplateByLabel(sel.Label)
		if !ok {
			return nil, fmt.Errorf("%w: %q on %q", ErrUnknownCustomization, sel.Label, item.Name)
		}
		perLabel[sel.Label]++

		switch tpl.Type {
		case models.CustomizationNotes:
			resolved = append(resolved, models.SelectedCustomization{Label: sel.Label, Value: sel.Value})
		case models.CustomizationSize:
			if perLabel[sel.Label] > 1 {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSize, sel.Label)
			}
			opt, ok := optionByName(tpl, sel.Value)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not a %q option", ErrUnknownOption, sel.Value, sel.Label)
			}
			resolved = append(resolved, models.SelectedCustomization{Label: sel.Label, Value: opt.Name, Price: opt.Price})
		case models.CustomizationToppings:
			if tpl.MaxSelections > 0 && perLabel[sel.Label] > tpl.MaxSelections {
				return nil, fmt.Errorf("%w: %q allows %d", ErrTooManyToppings, sel.Label, tpl.MaxSelections)
			}
			opt, ok := optionByName(tpl, sel.Value)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not a %q option", ErrUnknownOption, sel.Value, sel.Label)
			}
			resolved = append(resolved, models.SelectedCustomization{Label: sel.Label, Value: opt.Name, Price: opt.Price})
		default:
			return nil, fmt.Errorf("%w: %q has unsupported type %q", ErrUnknownCustomization, sel.Label, tpl.Type)
		}
	}
	return resolved, nil
}

func optionByName(tpl models.CustomizationTemplate, name string) (models.CustomizationOption, bool) {
	for _, opt := range tpl.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return models.CustomizationOption{}, false
}

// FinalPrice is the item base price plus every resolved delta.
func FinalPrice(item models.MenuItem, resolved []models.SelectedCustomization) float64 {
	price := item.Price
	for _, sel := range resolved {
		price += sel.Price
	}
	return price
}

// ToggleTopping adds or removes a topping from the current selection for
// one template. Adding past the template's MaxSelections cap is a no-op:
// the selection set comes back unchanged, so the displayed price cannot
// climb past the cap either.
func ToggleTopping(tpl models.CustomizationTemplate, current []string, option string) []string {
	for i, name := range current {
		if name == option {
			return append(append([]string(nil), current[:i]...), current[i+1:]...)
		}
	}
	if tpl.MaxSelections > 0 && len(current) >= tpl.MaxSelections {
		return current
	}
	return append(append([]string(nil), current...), option)
}

// OrderTotals recomputes subtotal, tax and total for an item set.
// The tax parameter is the current default tax, or nil for none.
func OrderTotals(items []models.OrderItem, tax *models.Tax) (subtotal float64, details *models.TaxDetails, total float64) {
	for _, item := range items {
		subtotal += item.FinalPrice * float64(item.Quantity)
	}
	total = subtotal
	if tax != nil {
		details = &models.TaxDetails{
			Name:   tax.Name,
			Rate:   tax.Rate,
			Amount: subtotal * tax.Rate / 100,
		}
		total += details.Amount
	}
	return subtotal, details, total
}

// CustomizationsEqual compares two selection sets as multisets of
// label+value pairs; list order does not matter. Used by the merge rule
// when an added item may collapse into an existing unsent line.
func CustomizationsEqual(a, b []models.SelectedCustomization) bool {
	if len(a) != len(b) {
		return false
	}
	key := func(sel models.SelectedCustomization) string {
		return sel.Label + "\x00" + sel.Value
	}
	ka := make([]string, len(a))
	kb := make([]string, len(b))
	for i := range a {
		ka[i] = key(a[i])
		kb[i] = key(b[i])
	}
	sort.Strings(ka)
	sort.Strings(kb)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}
