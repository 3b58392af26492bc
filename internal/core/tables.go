package core

import (
	"bistro-pos/internal/models"
	"bistro-pos/internal/storage"
)

// TableView is a table plus its derived display status.
type TableView struct {
	models.Table
	DisplayStatus models.TableDisplayStatus `json:"displayStatus"`
}

// displayStatus derives what the floor plan shows for a table. Never
// stored: recomputed on read from the bound order and its tickets.
func (s *Store) displayStatus(table models.Table) models.TableDisplayStatus {
	if table.OrderID == nil {
		return models.TableAvailable
	}
	order := s.findOrder(*table.OrderID)
	if order == nil || !order.Live() {
		return models.TableAvailable
	}
	for _, kot := range s.kotsForOrder(order.ID) {
		if kot.Status == models.KOTStatusReady {
			return models.TableReady
		}
	}
	switch order.Status {
	case models.OrderStatusBilled:
		return models.TableBilled
	case models.OrderStatusPending:
		return models.TablePreparing
	default:
		return models.TableOccupied
	}
}

// Tables returns every table with its display status.
func (s *Store) Tables() []TableView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TableView, 0, len(s.tables))
	for _, table := range s.tables {
		out = append(out, TableView{Table: table, DisplayStatus: s.displayStatus(table)})
	}
	return out
}

// TableByID returns one table with its display status.
func (s *Store) TableByID(id string) (TableView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.findTable(id)
	if table == nil {
		return TableView{}, ErrTableNotFound
	}
	return TableView{Table: *table, DisplayStatus: s.displayStatus(*table)}, nil
}

// ActiveOrderForTable returns the live order bound to a table, if any.
func (s *Store) ActiveOrderForTable(tableID string) (models.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.findTable(tableID)
	if table == nil {
		return models.Order{}, false, ErrTableNotFound
	}
	if table.OrderID == nil {
		return models.Order{}, false, nil
	}
	if order := s.findOrder(*table.OrderID); order != nil && order.Live() {
		return *order, true, nil
	}
	return models.Order{}, false, nil
}

// MoveTable updates floor-plan coordinates, clamped to the canvas.
// Position carries no business meaning beyond last write wins.
func (s *Store) MoveTable(staffID int, tableID string, x, y int) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(staffID, models.PermEditFloorPlan); err != nil {
		return models.Table{}, err
	}
	table := s.findTable(tableID)
	if table == nil {
		return models.Table{}, ErrTableNotFound
	}

	table.X = clamp(x, 0, s.canvasWidth)
	table.Y = clamp(y, 0, s.canvasHeight)

	s.persist(storage.CollectionTables)
	return *table, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
