package models

type TableShape string

const (
	TableShapeSquare TableShape = "square"
	TableShapeCircle TableShape = "circle"
)

// TableDisplayStatus is derived on read from the bound order and its
// KOTs; it is never stored.
type TableDisplayStatus string

const (
	TableAvailable TableDisplayStatus = "available"
	TableOccupied  TableDisplayStatus = "occupied"
	TablePreparing TableDisplayStatus = "preparing"
	TableReady     TableDisplayStatus = "ready"
	TableBilled    TableDisplayStatus = "billed"
)

// Table is a physical seat on the floor plan. OrderID is non-nil exactly
// when a non-Completed order is bound to the table.
type Table struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Capacity    int        `json:"capacity"`
	Shape       TableShape `json:"shape"`
	X           int        `json:"x"`
	Y           int        `json:"y"`
	OrderID     *string    `json:"orderId"`
	POSCenterID int        `json:"posCenterId"`
}

type POSCenter struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
