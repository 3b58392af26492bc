package models

// Permission is a single granted action token. Every workflow operation
// is gated by one of these, independent of anything the UI hides.
type Permission string

const (
	PermViewDashboard      Permission = "view_dashboard"
	PermAccessPOS          Permission = "access_pos"
	PermViewTables         Permission = "view_tables"
	PermEditFloorPlan      Permission = "edit_floor_plan"
	PermViewOrders         Permission = "view_orders"
	PermViewInventory      Permission = "view_inventory"
	PermManageItems        Permission = "manage_items"
	PermReceivePurchases   Permission = "receive_purchases"
	PermManageStaff        Permission = "manage_staff"
	PermManageSettings     Permission = "manage_settings"
	PermManagePOSCenters   Permission = "manage_pos_centers"
	PermViewSalesReports   Permission = "view_sales_reports"
	PermGenerateBills      Permission = "generate_bills"
	PermProcessPayments    Permission = "process_payments"
	PermViewBilling        Permission = "view_billing"
	PermViewKitchenDisplay Permission = "view_kitchen_display"
	PermSendToKitchen      Permission = "send_orders_to_kitchen"
)

// Role owns a flat permission set. There is no inheritance between roles
// and no per-staff override.
type Role struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"
)

type Staff struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	// PinHash is a bcrypt hash. It travels through the persistence
	// gateway but must never be echoed by an API handler.
	PinHash string      `json:"pinHash"`
	RoleID  int         `json:"roleId"`
	Status  StaffStatus `json:"status"`
}

// Tax is a percentage applied to order subtotals. Exactly one tax is
// flagged default at a time; the pricing engine uses it at computation
// time and materializes it into the order's TaxDetails.
type Tax struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Rate      float64 `json:"rate"`
	IsDefault bool    `json:"isDefault"`
}
