// Package storage is the persistence gateway: bulk load/save of whole
// entity collections keyed by collection name. The workflow engine never
// issues partial updates; every committed mutation rewrites the affected
// collections in full.
package storage

// Collection names. The gateway treats each as an opaque document.
const (
	CollectionMenuItems      = "menuItems"
	CollectionCategories     = "categories"
	CollectionOrders         = "orders"
	CollectionKOTs           = "kots"
	CollectionTables         = "tables"
	CollectionStaff          = "staff"
	CollectionRoles          = "roles"
	CollectionTaxes          = "taxes"
	CollectionPOSCenters     = "posCenters"
	CollectionSuppliers      = "suppliers"
	CollectionPurchaseOrders = "purchaseOrders"
)

// Gateway replaces and retrieves entire named collections.
type Gateway interface {
	// SaveCollection replaces the named collection with items.
	SaveCollection(name string, items any) error
	// LoadCollection unmarshals the named collection into out, which
	// must be a pointer to a slice. A collection that was never saved
	// leaves out untouched.
	LoadCollection(name string, out any) error
}
