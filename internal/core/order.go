package core

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bistro-pos/internal/metrics"
	"bistro-pos/internal/models"
	"bistro-pos/internal/pricing"
	"bistro-pos/internal/storage"
)

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// recomputeTotals rebuilds subtotal/tax/total from the item set using
// the current default tax. Called after every item-set mutation; totals
// are never patched incrementally.
func (s *Store) recomputeTotals(order *models.Order) {
	order.Subtotal, order.TaxDetails, order.Total = pricing.OrderTotals(order.Items, s.defaultTax())
}

// mutableOrder fetches an order and checks its item set may still change.
func (s *Store) mutableOrder(orderID string) (*models.Order, error) {
	order := s.findOrder(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.Mutable() {
		metrics.RejectedActions.WithLabelValues("invalid_order_state").Inc()
		return nil, ErrInvalidOrderState
	}
	return order, nil
}

func findItem(order *models.Order, orderItemID int) (*models.OrderItem, error) {
	for i := range order.Items {
		if order.Items[i].OrderItemID == orderItemID {
			return &order.Items[i], nil
		}
	}
	return nil, ErrOrderItemNotFound
}

// AddItem adds a menu item with the given customizations to the table's
// order, creating a Draft order and binding it to the table if the table
// is empty. A table carries at most one live order, so the add always
// routes to the existing one when present.
//
// When an unsent line for the same menu item with an equal customization
// multiset already exists, its quantity is incremented instead of
// appending a duplicate row.
func (s *Store) AddItem(staffID int, tableID string, menuItemID int, selections []models.SelectedCustomization) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermAccessPOS); err != nil {
		return models.Order{}, err
	}
	table := s.findTable(tableID)
	if table == nil {
		return models.Order{}, ErrTableNotFound
	}
	menuItem := s.findMenuItem(menuItemID)
	if menuItem == nil {
		return models.Order{}, ErrMenuItemNotFound
	}
	if menuItem.Stock <= 0 {
		metrics.RejectedActions.WithLabelValues("out_of_stock").Inc()
		return models.Order{}, ErrOutOfStock
	}

	resolved, err := pricing.Resolve(*menuItem, selections)
	if err != nil {
		return models.Order{}, err
	}
	finalPrice := pricing.FinalPrice(*menuItem, resolved)

	if table.OrderID == nil {
		order := models.Order{
			ID:          newOrderID(),
			CreatedDate: time.Now(),
			Status:      models.OrderStatusDraft,
			TableID:     &table.ID,
			POSCenterID: table.POSCenterID,
			Items: []models.OrderItem{{
				OrderItemID:            s.takeItemID(),
				MenuItem:               *menuItem,
				SelectedCustomizations: resolved,
				FinalPrice:             finalPrice,
				Quantity:               1,
			}},
		}
		s.recomputeTotals(&order)
		s.orders = append(s.orders, order)
		table.OrderID = &order.ID
		s.persist(storage.CollectionOrders, storage.CollectionTables)
		s.log.Info("add_item", "opened draft order",
			slog.String("order_id", order.ID), slog.String("table_id", tableID),
			slog.String("item", menuItem.Name))
		return order, nil
	}

	order, err := s.mutableOrder(*table.OrderID)
	if err != nil {
		return models.Order{}, err
	}

	merged := false
	for i := range order.Items {
		line := &order.Items[i]
		if !line.SentToKitchen && line.MenuItem.ID == menuItemID &&
			pricing.CustomizationsEqual(line.SelectedCustomizations, resolved) {
			line.Quantity++
			merged = true
			break
		}
	}
	if !merged {
		order.Items = append(order.Items, models.OrderItem{
			OrderItemID:            s.takeItemID(),
			MenuItem:               *menuItem,
			SelectedCustomizations: resolved,
			FinalPrice:             finalPrice,
			Quantity:               1,
		})
	}
	s.recomputeTotals(order)
	s.persist(storage.CollectionOrders)
	s.log.Info("add_item", "added to order",
		slog.String("order_id", order.ID), slog.String("item", menuItem.Name),
		slog.Bool("merged", merged))
	return *order, nil
}

func (s *Store) takeItemID() int {
	id := s.nextItemID
	s.nextItemID++
	return id
}

// EditItem replaces an unsent line's customizations and refreezes its
// final price. Sent lines are locked.
func (s *Store) EditItem(staffID int, orderID string, orderItemID int, selections []models.SelectedCustomization) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermAccessPOS); err != nil {
		return models.Order{}, err
	}
	order, err := s.mutableOrder(orderID)
	if err != nil {
		return models.Order{}, err
	}
	line, err := findItem(order, orderItemID)
	if err != nil {
		return models.Order{}, err
	}
	if line.SentToKitchen {
		metrics.RejectedActions.WithLabelValues("locked_item").Inc()
		return models.Order{}, ErrLockedItem
	}

	resolved, err := pricing.Resolve(line.MenuItem, selections)
	if err != nil {
		return models.Order{}, err
	}
	line.SelectedCustomizations = resolved
	line.FinalPrice = pricing.FinalPrice(line.MenuItem, resolved)

	s.recomputeTotals(order)
	s.persist(storage.CollectionOrders)
	return *order, nil
}

// ToggleItemTopping flips one topping on an unsent line and refreezes
// its price. Selecting a new topping past the template's cap is ignored:
// the line comes back unchanged rather than failing, which is how the
// order screen treats a tap on a full toppings group.
func (s *Store) ToggleItemTopping(staffID int, orderID string, orderItemID int, label, option string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermAccessPOS); err != nil {
		return models.Order{}, err
	}
	order, err := s.mutableOrder(orderID)
	if err != nil {
		return models.Order{}, err
	}
	line, err := findItem(order, orderItemID)
	if err != nil {
		return models.Order{}, err
	}
	if line.SentToKitchen {
		metrics.RejectedActions.WithLabelValues("locked_item").Inc()
		return models.Order{}, ErrLockedItem
	}

	tpl, ok := line.MenuItem.TemplateByLabel(label)
	if !ok || tpl.Type != models.CustomizationToppings {
		return models.Order{}, fmt.Errorf("%w: %q is not a toppings template on %q",
			pricing.ErrUnknownCustomization, label, line.MenuItem.Name)
	}

	var current []string
	kept := make([]models.SelectedCustomization, 0, len(line.SelectedCustomizations))
	for _, sel := range line.SelectedCustomizations {
		if sel.Label == label {
			current = append(current, sel.Value)
		} else {
			kept = append(kept, sel)
		}
	}
	for _, value := range pricing.ToggleTopping(tpl, current, option) {
		kept = append(kept, models.SelectedCustomization{Label: label, Value: value})
	}

	resolved, err := pricing.Resolve(line.MenuItem, kept)
	if err != nil {
		return models.Order{}, err
	}
	line.SelectedCustomizations = resolved
	line.FinalPrice = pricing.FinalPrice(line.MenuItem, resolved)

	s.recomputeTotals(order)
	s.persist(storage.CollectionOrders)
	return *order, nil
}

// ChangeQuantity applies a delta to an unsent line's quantity; dropping
// to zero or below removes the line.
func (s *Store) ChangeQuantity(staffID int, orderID string, orderItemID, delta int) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermAccessPOS); err != nil {
		return models.Order{}, err
	}
	order, err := s.mutableOrder(orderID)
	if err != nil {
		return models.Order{}, err
	}
	line, err := findItem(order, orderItemID)
	if err != nil {
		return models.Order{}, err
	}
	if line.SentToKitchen {
		metrics.RejectedActions.WithLabelValues("locked_item").Inc()
		return models.Order{}, ErrLockedItem
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		s.dropItem(order, orderItemID)
	}
	s.recomputeTotals(order)
	s.persist(storage.CollectionOrders)
	return *order, nil
}

// RemoveItem deletes an unsent line from the order.
func (s *Store) RemoveItem(staffID int, orderID string, orderItemID int) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermAccessPOS); err != nil {
		return models.Order{}, err
	}
	order, err := s.mutableOrder(orderID)
	if err != nil {
		return models.Order{}, err
	}
	line, err := findItem(order, orderItemID)
	if err != nil {
		return models.Order{}, err
	}
	if line.SentToKitchen {
		metrics.RejectedActions.WithLabelValues("locked_item").Inc()
		return models.Order{}, ErrLockedItem
	}

	s.dropItem(order, orderItemID)
	s.recomputeTotals(order)
	s.persist(storage.CollectionOrders)
	return *order, nil
}

// ClearUnsentItems removes every line that has not reached the kitchen.
// Sent lines stay: they are locked by the same rule as any other
// mutation.
func (s *Store) ClearUnsentItems(staffID int, orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermAccessPOS); err != nil {
		return models.Order{}, err
	}
	order, err := s.mutableOrder(orderID)
	if err != nil {
		return models.Order{}, err
	}

	kept := order.Items[:0]
	for _, line := range order.Items {
		if line.SentToKitchen {
			kept = append(kept, line)
		}
	}
	order.Items = kept
	s.recomputeTotals(order)
	s.persist(storage.CollectionOrders)
	return *order, nil
}

func (s *Store) dropItem(order *models.Order, orderItemID int) {
	for i := range order.Items {
		if order.Items[i].OrderItemID == orderItemID {
			order.Items = append(order.Items[:i], order.Items[i+1:]...)
			return
		}
	}
}
