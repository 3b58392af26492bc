package models

import "time"

// OrderStatus is the linear lifecycle of an order. Transitions only move
// forward: Draft -> Pending -> Billed -> Completed.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "Draft"
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusBilled    OrderStatus = "Billed"
	OrderStatusCompleted OrderStatus = "Completed"
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "Cash"
	PaymentCard  PaymentMethod = "Card"
	PaymentOther PaymentMethod = "Other"
)

// OrderItem is one line of an order. MenuItem is a snapshot taken at
// selection time; later menu edits never touch it. FinalPrice is frozen
// when the line is saved. Once SentToKitchen is true the line is locked.
type OrderItem struct {
	OrderItemID            int                     `json:"orderItemId"`
	MenuItem               MenuItem                `json:"menuItem"`
	SelectedCustomizations []SelectedCustomization `json:"selectedCustomizations"`
	FinalPrice             float64                 `json:"finalPrice"`
	Quantity               int                     `json:"quantity"`
	SentToKitchen          bool                    `json:"sentToKitchen"`
}

// TaxDetails is the default tax materialized onto an order at the moment
// totals were last recomputed.
type TaxDetails struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

type Order struct {
	ID            string        `json:"id"`
	CreatedDate   time.Time     `json:"createdDate"`
	BilledDate    *time.Time    `json:"billedDate,omitempty"`
	CompletedDate *time.Time    `json:"completedDate,omitempty"`
	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	TaxDetails    *TaxDetails   `json:"taxDetails"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	TableID       *string       `json:"tableId"`
	POSCenterID   int           `json:"posCenterId"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
}

// Live reports whether the order still occupies its table.
func (o Order) Live() bool {
	return o.Status != OrderStatusCompleted
}

// Mutable reports whether the item set may still change.
func (o Order) Mutable() bool {
	return o.Status == OrderStatusDraft || o.Status == OrderStatusPending
}
