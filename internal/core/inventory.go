package core

import (
	"log/slog"

	"bistro-pos/internal/metrics"
	"bistro-pos/internal/models"
	"bistro-pos/internal/storage"
)

// decrementStock applies the sale to the inventory ledger: each line
// reduces its menu item's stock by the ordered quantity. This runs only
// on the Billed -> Completed transition, exactly once per order. Stock
// is allowed to go negative — nothing was reserved while the order was
// open — so oversell is a warning, never a failure.
// Must be called with the store mutex held.
func (s *Store) decrementStock(order models.Order) {
	for _, line := range order.Items {
		item := s.findMenuItem(line.MenuItem.ID)
		if item == nil {
			// Item was removed from the menu after ordering; the sale
			// stands, there is just no stock row to reduce.
			s.log.Warn("inventory", "menu item missing at decrement",
				slog.Int("menu_item_id", line.MenuItem.ID))
			continue
		}
		item.Stock -= line.Quantity
		if item.Stock <= 0 {
			metrics.OversellWarnings.Inc()
			s.log.Warn("inventory", "stock at or below zero",
				slog.String("item", item.Name), slog.Int("stock", item.Stock),
				slog.String("order_id", order.ID))
		}
	}
}

// ReceivePurchaseOrder marks a pending purchase order received and adds
// its quantities to stock. Replenishment is a plain addition, so receives
// and sale decrements compose in any order. Receiving twice is rejected.
func (s *Store) ReceivePurchaseOrder(staffID int, poID string) (models.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermReceivePurchases); err != nil {
		return models.PurchaseOrder{}, err
	}

	for i := range s.purchaseOrders {
		po := &s.purchaseOrders[i]
		if po.ID != poID {
			continue
		}
		if po.Status == models.PurchaseOrderReceived {
			return models.PurchaseOrder{}, ErrAlreadyReceived
		}
		for _, line := range po.Items {
			if item := s.findMenuItem(line.MenuItemID); item != nil {
				item.Stock += line.Quantity
			}
		}
		po.Status = models.PurchaseOrderReceived

		s.persist(storage.CollectionPurchaseOrders, storage.CollectionMenuItems)
		s.log.Info("receive_po", "purchase order received",
			slog.String("po_id", po.ID), slog.Int("lines", len(po.Items)))
		return *po, nil
	}
	return models.PurchaseOrder{}, ErrPONotFound
}
