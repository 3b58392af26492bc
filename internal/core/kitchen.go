package core

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bistro-pos/internal/metrics"
	"bistro-pos/internal/models"
	"bistro-pos/internal/storage"
)

// UnsentItems is the single source of truth for kitchen eligibility:
// send-to-kitchen snapshots exactly this subset, and display code counts
// it. Keeping it in one function stops the two from drifting.
func UnsentItems(order models.Order) []models.OrderItem {
	var unsent []models.OrderItem
	for _, line := range order.Items {
		if !line.SentToKitchen {
			unsent = append(unsent, line)
		}
	}
	return unsent
}

// SendToKitchen snapshots the order's currently-unsent items into one
// new KOT, marks them sent, and moves the order to Pending. With zero
// unsent items the call is a no-op: it returns (nil, nil) and neither a
// ticket nor a status change is produced. Each send over an order's life
// yields one ticket per wave.
func (s *Store) SendToKitchen(staffID int, orderID string) (*models.KOT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermSendToKitchen); err != nil {
		return nil, err
	}
	order, err := s.mutableOrder(orderID)
	if err != nil {
		return nil, err
	}

	unsent := UnsentItems(*order)
	if len(unsent) == 0 {
		s.log.Info("send_to_kitchen", "no unsent items, ignoring",
			slog.String("order_id", orderID))
		return nil, nil
	}

	var tableID, tableName, posCenterName string
	if order.TableID != nil {
		if table := s.findTable(*order.TableID); table != nil {
			tableID, tableName = table.ID, table.Name
		}
	}
	posCenterName = s.posCenterName(order.POSCenterID)

	kot := models.KOT{
		ID:            "KOT-" + strings.ToUpper(uuid.NewString()[:8]),
		OrderID:       order.ID,
		TableID:       tableID,
		TableName:     tableName,
		POSCenterName: posCenterName,
		Status:        models.KOTStatusNew,
		CreatedAt:     time.Now(),
	}
	for _, line := range unsent {
		kot.Items = append(kot.Items, models.KOTItem{
			OrderItemID:    line.OrderItemID,
			Name:           line.MenuItem.Name,
			Quantity:       line.Quantity,
			Customizations: line.SelectedCustomizations,
		})
	}

	for i := range order.Items {
		order.Items[i].SentToKitchen = true
	}
	order.Status = models.OrderStatusPending
	s.kots = append(s.kots, kot)

	s.persist(storage.CollectionOrders, storage.CollectionKOTs)
	metrics.KOTsCreated.Inc()
	s.log.Info("send_to_kitchen", "kot created",
		slog.String("kot_id", kot.ID), slog.String("order_id", order.ID),
		slog.Int("items", len(kot.Items)))

	if s.onKOT != nil {
		s.onKOT(kot)
	}
	return &kot, nil
}

// kotNext holds the only legal status steps; anything else is a skip,
// a reversal or a reopen.
var kotNext = map[models.KOTStatus]models.KOTStatus{
	models.KOTStatusNew:       models.KOTStatusPreparing,
	models.KOTStatusPreparing: models.KOTStatusReady,
}

// AdvanceKOT moves a ticket one step forward. Ready is terminal; KOTs
// are never reopened and never deleted, and billing or paying the order
// does not touch them.
func (s *Store) AdvanceKOT(staffID int, kotID string, next models.KOTStatus) (models.KOT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermViewKitchenDisplay); err != nil {
		return models.KOT{}, err
	}

	for i := range s.kots {
		if s.kots[i].ID != kotID {
			continue
		}
		if kotNext[s.kots[i].Status] != next {
			metrics.RejectedActions.WithLabelValues("invalid_kot_transition").Inc()
			return models.KOT{}, ErrInvalidKOTTransition
		}
		s.kots[i].Status = next
		s.persist(storage.CollectionKOTs)
		s.log.Info("advance_kot", "kot status updated",
			slog.String("kot_id", kotID), slog.String("status", string(next)))
		if s.onKOT != nil {
			s.onKOT(s.kots[i])
		}
		return s.kots[i], nil
	}
	return models.KOT{}, ErrKOTNotFound
}

// KOTs returns tickets, optionally filtered by status, newest last.
func (s *Store) KOTs(status models.KOTStatus) []models.KOT {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.KOT, 0, len(s.kots))
	for _, kot := range s.kots {
		if status == "" || kot.Status == status {
			out = append(out, kot)
		}
	}
	return out
}

func (s *Store) kotsForOrder(orderID string) []models.KOT {
	var out []models.KOT
	for _, kot := range s.kots {
		if kot.OrderID == orderID {
			out = append(out, kot)
		}
	}
	return out
}
