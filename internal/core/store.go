// Package core is the order/table/kitchen workflow engine. A single
// Store owns every collection; all mutation goes through its methods so
// the lifecycle invariants are enforced in one place. Each staff action
// runs as one atomic unit under the store mutex: authorize, validate
// against the current state, mutate, recompute totals, then hand the
// affected collections to the persistence gateway. Persistence is
// fire-and-forget relative to the transition — a failed save is logged,
// never rolled back.
package core

import (
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"bistro-pos/internal/authz"
	"bistro-pos/internal/logger"
	"bistro-pos/internal/metrics"
	"bistro-pos/internal/models"
	"bistro-pos/internal/storage"
)

type Store struct {
	mu  sync.Mutex
	gw  storage.Gateway
	log *logger.Logger

	menuItems      []models.MenuItem
	categories     []models.Category
	orders         []models.Order
	kots           []models.KOT
	tables         []models.Table
	staff          []models.Staff
	roles          []models.Role
	taxes          []models.Tax
	posCenters     []models.POSCenter
	suppliers      []models.Supplier
	purchaseOrders []models.PurchaseOrder

	canvasWidth  int
	canvasHeight int
	nextItemID   int

	onKOT func(models.KOT)
}

func New(gw storage.Gateway, log *logger.Logger) *Store {
	return &Store{
		gw:           gw,
		log:          log,
		canvasWidth:  800,
		canvasHeight: 600,
		nextItemID:   1,
	}
}

// SetCanvas bounds floor-plan coordinates for MoveTable.
func (s *Store) SetCanvas(width, height int) {
	s.canvasWidth, s.canvasHeight = width, height
}

// SetKOTListener registers the callback invoked after every committed
// KOT create or status change (the kitchen display feed).
func (s *Store) SetKOTListener(fn func(models.KOT)) {
	s.onKOT = fn
}

// Load pulls every collection from the gateway and rebuilds the order
// item id counter.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pairs := []struct {
		name string
		out  any
	}{
		{storage.CollectionMenuItems, &s.menuItems},
		{storage.CollectionCategories, &s.categories},
		{storage.CollectionOrders, &s.orders},
		{storage.CollectionKOTs, &s.kots},
		{storage.CollectionTables, &s.tables},
		{storage.CollectionStaff, &s.staff},
		{storage.CollectionRoles, &s.roles},
		{storage.CollectionTaxes, &s.taxes},
		{storage.CollectionPOSCenters, &s.posCenters},
		{storage.CollectionSuppliers, &s.suppliers},
		{storage.CollectionPurchaseOrders, &s.purchaseOrders},
	}
	for _, p := range pairs {
		if err := s.gw.LoadCollection(p.name, p.out); err != nil {
			return err
		}
	}

	for _, order := range s.orders {
		for _, item := range order.Items {
			if item.OrderItemID >= s.nextItemID {
				s.nextItemID = item.OrderItemID + 1
			}
		}
	}
	return nil
}

// Empty reports whether the store carries no menu yet (first run).
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.menuItems) == 0
}

// Snapshot is a full dataset handed to Bootstrap on first run.
type Snapshot struct {
	MenuItems      []models.MenuItem
	Categories     []models.Category
	Orders         []models.Order
	KOTs           []models.KOT
	Tables         []models.Table
	Staff          []models.Staff
	Roles          []models.Role
	Taxes          []models.Tax
	POSCenters     []models.POSCenter
	Suppliers      []models.Supplier
	PurchaseOrders []models.PurchaseOrder
}

// Bootstrap installs a snapshot and persists every collection.
func (s *Store) Bootstrap(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.menuItems = snap.MenuItems
	s.categories = snap.Categories
	s.orders = snap.Orders
	s.kots = snap.KOTs
	s.tables = snap.Tables
	s.staff = snap.Staff
	s.roles = snap.Roles
	s.taxes = snap.Taxes
	s.posCenters = snap.POSCenters
	s.suppliers = snap.Suppliers
	s.purchaseOrders = snap.PurchaseOrders

	s.persist(
		storage.CollectionMenuItems, storage.CollectionCategories,
		storage.CollectionOrders, storage.CollectionKOTs,
		storage.CollectionTables, storage.CollectionStaff,
		storage.CollectionRoles, storage.CollectionTaxes,
		storage.CollectionPOSCenters, storage.CollectionSuppliers,
		storage.CollectionPurchaseOrders,
	)
	s.log.Info("bootstrap", "installed initial dataset",
		slog.Int("menu_items", len(s.menuItems)),
		slog.Int("tables", len(s.tables)))
}

// persist writes the named collections through the gateway. Must be
// called with the store mutex held. Errors are logged only: the
// in-memory transition has already committed.
func (s *Store) persist(names ...string) {
	for _, name := range names {
		var err error
		switch name {
		case storage.CollectionMenuItems:
			err = s.gw.SaveCollection(name, s.menuItems)
		case storage.CollectionCategories:
			err = s.gw.SaveCollection(name, s.categories)
		case storage.CollectionOrders:
			err = s.gw.SaveCollection(name, s.orders)
		case storage.CollectionKOTs:
			err = s.gw.SaveCollection(name, s.kots)
		case storage.CollectionTables:
			err = s.gw.SaveCollection(name, s.tables)
		case storage.CollectionStaff:
			err = s.gw.SaveCollection(name, s.staff)
		case storage.CollectionRoles:
			err = s.gw.SaveCollection(name, s.roles)
		case storage.CollectionTaxes:
			err = s.gw.SaveCollection(name, s.taxes)
		case storage.CollectionPOSCenters:
			err = s.gw.SaveCollection(name, s.posCenters)
		case storage.CollectionSuppliers:
			err = s.gw.SaveCollection(name, s.suppliers)
		case storage.CollectionPurchaseOrders:
			err = s.gw.SaveCollection(name, s.purchaseOrders)
		}
		if err != nil {
			s.log.Error("persist", "collection save failed", err, slog.String("collection", name))
		}
	}
}

// authorize is the hard precondition in front of every gated action.
func (s *Store) authorize(staffID int, perm models.Permission) (models.Staff, error) {
	for _, member := range s.staff {
		if member.ID == staffID {
			if authz.Allowed(member, s.roles, perm) {
				return member, nil
			}
			break
		}
	}
	metrics.RejectedActions.WithLabelValues("unauthorized").Inc()
	s.log.Warn("authorize", "action refused",
		slog.Int("staff_id", staffID), slog.String("permission", string(perm)))
	return models.Staff{}, ErrUnauthorized
}

// HasPermission answers the external authorization query.
func (s *Store) HasPermission(staffID int, perm models.Permission) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.authorize(staffID, perm)
	return err == nil
}

// AuthenticateByPIN matches a PIN against active staff.
func (s *Store) AuthenticateByPIN(pin string) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, member := range s.staff {
		if member.Status != models.StaffActive {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(member.PinHash), []byte(pin)) == nil {
			return member, nil
		}
	}
	return models.Staff{}, ErrBadCredentials
}

// StaffByID returns the staff member, or false if unknown.
func (s *Store) StaffByID(id int) (models.Staff, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, member := range s.staff {
		if member.ID == id {
			return member, true
		}
	}
	return models.Staff{}, false
}

// RoleByID returns the role, or false if unknown.
func (s *Store) RoleByID(id int) (models.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, role := range s.roles {
		if role.ID == id {
			return role, true
		}
	}
	return models.Role{}, false
}

func (s *Store) defaultTax() *models.Tax {
	for i := range s.taxes {
		if s.taxes[i].IsDefault {
			tax := s.taxes[i]
			return &tax
		}
	}
	return nil
}

func (s *Store) findOrder(id string) *models.Order {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *Store) findTable(id string) *models.Table {
	for i := range s.tables {
		if s.tables[i].ID == id {
			return &s.tables[i]
		}
	}
	return nil
}

func (s *Store) findMenuItem(id int) *models.MenuItem {
	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			return &s.menuItems[i]
		}
	}
	return nil
}

func (s *Store) posCenterName(id int) string {
	for _, pc := range s.posCenters {
		if pc.ID == id {
			return pc.Name
		}
	}
	return ""
}

// MenuItems returns a copy of the menu.
func (s *Store) MenuItems() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MenuItem(nil), s.menuItems...)
}

// Categories returns a copy of the menu categories.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category(nil), s.categories...)
}

// Orders returns orders, optionally filtered by status.
func (s *Store) Orders(status models.OrderStatus) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if status == "" || order.Status == status {
			out = append(out, order)
		}
	}
	return out
}

// OrderByID returns the order, or ErrOrderNotFound.
func (s *Store) OrderByID(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order := s.findOrder(id); order != nil {
		return *order, nil
	}
	return models.Order{}, ErrOrderNotFound
}

// PurchaseOrders returns a copy of all purchase orders.
func (s *Store) PurchaseOrders() []models.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PurchaseOrder(nil), s.purchaseOrders...)
}
