package models

// CustomizationType discriminates the shape of a customization template.
type CustomizationType string

const (
	CustomizationSize     CustomizationType = "size"
	CustomizationToppings CustomizationType = "toppings"
	CustomizationNotes    CustomizationType = "notes"
)

// CustomizationOption is one selectable choice and its price delta.
type CustomizationOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CustomizationTemplate describes how a menu item may be customized.
// Size templates take exactly one option, toppings templates take up to
// MaxSelections options, notes templates take free text and never change
// the price. Templates are immutable once attached to a menu item.
type CustomizationTemplate struct {
	Type          CustomizationType     `json:"type"`
	Label         string                `json:"label"`
	Options       []CustomizationOption `json:"options,omitempty"`
	MaxSelections int                   `json:"maxSelections,omitempty"`
}

// SelectedCustomization is a customer's resolved choice for one template.
// Price is the delta contributed to the item's final price.
type SelectedCustomization struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Price float64 `json:"price"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MenuItem is a sellable item. Stock is mutated only by the inventory
// ledger: decremented when an order completes, incremented when a
// purchase order is received.
type MenuItem struct {
	ID                    int                     `json:"id"`
	Name                  string                  `json:"name"`
	CategoryID            int                     `json:"categoryId"`
	Price                 float64                 `json:"price"`
	Stock                 int                     `json:"stock"`
	LowStockThreshold     int                     `json:"lowStockThreshold"`
	UnitOfMeasurement     string                  `json:"unitOfMeasurement"`
	ImageURL              string                  `json:"imageUrl,omitempty"`
	CustomizationTemplate []CustomizationTemplate `json:"customizationTemplate,omitempty"`
}

// IsLowStock reports whether the item is at or below its reorder level.
func (mi MenuItem) IsLowStock() bool {
	return mi.Stock <= mi.LowStockThreshold
}

// TemplateByLabel looks up a customization template by its label.
func (mi MenuItem) TemplateByLabel(label string) (CustomizationTemplate, bool) {
	for _, tpl := range mi.CustomizationTemplate {
		if tpl.Label == label {
			return tpl, true
		}
	}
	return CustomizationTemplate{}, false
}
