package models

import "time"

// KOTStatus advances monotonically: New -> Preparing -> Ready. Ready is
// terminal; tickets are never reopened or deleted.
type KOTStatus string

const (
	KOTStatusNew       KOTStatus = "New"
	KOTStatusPreparing KOTStatus = "Preparing"
	KOTStatusReady     KOTStatus = "Ready"
)

// KOTItem is a snapshot of an order line at send time, not a live
// reference. Later edits to the order never reach the kitchen copy.
type KOTItem struct {
	OrderItemID    int                     `json:"orderItemId"`
	Name           string                  `json:"name"`
	Quantity       int                     `json:"quantity"`
	Customizations []SelectedCustomization `json:"customizations"`
}

// KOT is one kitchen order ticket: the wave of items that were unsent
// when a send-to-kitchen action ran. An order accumulates one KOT per
// wave over its lifetime.
type KOT struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	TableID       string    `json:"tableId"`
	TableName     string    `json:"tableName"`
	POSCenterName string    `json:"posCenterName"`
	Items         []KOTItem `json:"items"`
	Status        KOTStatus `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
