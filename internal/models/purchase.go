package models

import "time"

type PurchaseOrderStatus string

const (
	PurchaseOrderPending  PurchaseOrderStatus = "Pending"
	PurchaseOrderReceived PurchaseOrderStatus = "Received"
)

type Supplier struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PurchaseOrderItem struct {
	MenuItemID int     `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Cost       float64 `json:"cost"`
}

// PurchaseOrder replenishes stock when received. Receiving is the only
// stock increment attributable to purchasing and is idempotent per PO.
type PurchaseOrder struct {
	ID         string              `json:"id"`
	SupplierID int                 `json:"supplierId"`
	Date       time.Time           `json:"date"`
	Items      []PurchaseOrderItem `json:"items"`
	TotalCost  float64             `json:"totalCost"`
	Status     PurchaseOrderStatus `json:"status"`
}
