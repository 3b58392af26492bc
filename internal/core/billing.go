package core

import (
	"log/slog"
	"time"

	"bistro-pos/internal/metrics"
	"bistro-pos/internal/models"
	"bistro-pos/internal/storage"
)

// GenerateBill moves a Pending order to Billed, freezing the item set.
// An order with any unsent item cannot be billed: everything must have
// reached the kitchen first.
func (s *Store) GenerateBill(staffID int, orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermGenerateBills); err != nil {
		return models.Order{}, err
	}
	order := s.findOrder(orderID)
	if order == nil {
		return models.Order{}, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending || len(UnsentItems(*order)) > 0 {
		metrics.RejectedActions.WithLabelValues("invalid_order_state").Inc()
		return models.Order{}, ErrInvalidOrderState
	}

	now := time.Now()
	order.Status = models.OrderStatusBilled
	order.BilledDate = &now

	s.persist(storage.CollectionOrders)
	s.log.Info("generate_bill", "order billed",
		slog.String("order_id", order.ID), slog.Float64("total", order.Total))
	return *order, nil
}

// ProcessPayment completes a Billed order: records the payment method
// and completion date, decrements stock for every line exactly once, and
// detaches the order from its table. The transition is terminal.
func (s *Store) ProcessPayment(staffID int, orderID string, method models.PaymentMethod) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermProcessPayments); err != nil {
		return models.Order{}, err
	}
	order := s.findOrder(orderID)
	if order == nil {
		return models.Order{}, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusBilled {
		metrics.RejectedActions.WithLabelValues("invalid_order_state").Inc()
		return models.Order{}, ErrInvalidOrderState
	}

	now := time.Now()
	order.Status = models.OrderStatusCompleted
	order.PaymentMethod = method
	order.CompletedDate = &now

	s.decrementStock(*order)

	if order.TableID != nil {
		if table := s.findTable(*order.TableID); table != nil {
			table.OrderID = nil
		}
		order.TableID = nil
	}

	s.persist(storage.CollectionOrders, storage.CollectionTables, storage.CollectionMenuItems)
	metrics.OrdersCompleted.Inc()
	metrics.RevenueCollected.Add(order.Total)
	s.log.Info("process_payment", "order completed",
		slog.String("order_id", order.ID), slog.String("method", string(method)),
		slog.Float64("total", order.Total))
	return *order, nil
}

// SalesBetween returns completed orders whose completion date falls in
// [start, end). Backing query for the sales report.
func (s *Store) SalesBetween(start, end time.Time) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		if order.Status != models.OrderStatusCompleted || order.CompletedDate == nil {
			continue
		}
		done := *order.CompletedDate
		if !done.Before(start) && done.Before(end) {
			out = append(out, order)
		}
	}
	return out
}
