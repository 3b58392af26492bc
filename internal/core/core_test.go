package core

import (
	"golang.org/x/crypto/bcrypt"

	"bistro-pos/internal/logger"
	"bistro-pos/internal/models"
	"bistro-pos/internal/storage"
)

// Staff ids used across the engine tests.
const (
	managerID = 1
	waiterID  = 2
	cashierID = 3
	chefID    = 4
	formerID  = 9 // inactive
)

func hashPin(pin string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func testSnapshot() Snapshot {
	allPerms := []models.Permission{
		models.PermViewDashboard, models.PermAccessPOS, models.PermViewTables,
		models.PermEditFloorPlan, models.PermViewOrders, models.PermViewInventory,
		models.PermManageItems, models.PermReceivePurchases, models.PermManageStaff,
		models.PermManageSettings, models.PermManagePOSCenters, models.PermViewSalesReports,
		models.PermGenerateBills, models.PermProcessPayments, models.PermViewBilling,
		models.PermViewKitchenDisplay, models.PermSendToKitchen,
	}
	return Snapshot{
		Roles: []models.Role{
			{ID: 1, Name: "Manager", Permissions: allPerms},
			{ID: 2, Name: "Waiter", Permissions: []models.Permission{
				models.PermAccessPOS, models.PermViewTables, models.PermViewOrders,
				models.PermGenerateBills, models.PermSendToKitchen,
			}},
			{ID: 3, Name: "Cashier", Permissions: []models.Permission{
				models.PermAccessPOS, models.PermProcessPayments, models.PermViewBilling,
			}},
			{ID: 5, Name: "Kitchen Staff", Permissions: []models.Permission{
				models.PermViewKitchenDisplay,
			}},
		},
		Staff: []models.Staff{
			{ID: managerID, Name: "Admin", PinHash: hashPin("1234"), RoleID: 1, Status: models.StaffActive},
			{ID: waiterID, Name: "John Doe", PinHash: hashPin("1111"), RoleID: 2, Status: models.StaffActive},
			{ID: cashierID, Name: "Jane Smith", PinHash: hashPin("2222"), RoleID: 3, Status: models.StaffActive},
			{ID: chefID, Name: "Chef Mike", PinHash: hashPin("5555"), RoleID: 5, Status: models.StaffActive},
			{ID: formerID, Name: "Chris Green", PinHash: hashPin("9999"), RoleID: 2, Status: models.StaffInactive},
		},
		Taxes: []models.Tax{
			{ID: 1, Name: "VAT", Rate: 10, IsDefault: true},
			{ID: 2, Name: "Service Charge", Rate: 5},
		},
		POSCenters: []models.POSCenter{
			{ID: 1, Name: "Main Dining", Status: "Enabled"},
		},
		Categories: []models.Category{
			{ID: 4, Name: "Steaks"}, {ID: 6, Name: "Pizza"}, {ID: 8, Name: "Side Dish"},
		},
		MenuItems: []models.MenuItem{
			{ID: 7, Name: "Ribeye Steak (12oz)", CategoryID: 4, Price: 38.00, Stock: 15, LowStockThreshold: 5, UnitOfMeasurement: "item",
				CustomizationTemplate: []models.CustomizationTemplate{
					{Type: models.CustomizationNotes, Label: "Cooking Temperature"},
					{Type: models.CustomizationSize, Label: "Side Dish", Options: []models.CustomizationOption{
						{Name: "Fries", Price: 0}, {Name: "Mashed Potatoes", Price: 0}, {Name: "Grilled Asparagus", Price: 2.00},
					}},
				}},
			{ID: 9, Name: "Margherita Pizza", CategoryID: 6, Price: 15.99, Stock: 40, LowStockThreshold: 10, UnitOfMeasurement: "pcs",
				CustomizationTemplate: []models.CustomizationTemplate{
					{Type: models.CustomizationToppings, Label: "Add Toppings", MaxSelections: 3, Options: []models.CustomizationOption{
						{Name: "Extra Cheese", Price: 1.50}, {Name: "Mushrooms", Price: 0.75},
						{Name: "Pepperoni", Price: 1.25}, {Name: "Olives", Price: 1.00},
					}},
				}},
			{ID: 6, Name: "Iced Latte", CategoryID: 8, Price: 4.50, Stock: 100, LowStockThreshold: 10, UnitOfMeasurement: "item",
				CustomizationTemplate: []models.CustomizationTemplate{
					{Type: models.CustomizationSize, Label: "Size", Options: []models.CustomizationOption{
						{Name: "Small", Price: 0}, {Name: "Large", Price: 1.00},
					}},
				}},
			{ID: 11, Name: "French Fries", CategoryID: 8, Price: 5.99, Stock: 100, LowStockThreshold: 20, UnitOfMeasurement: "kg"},
			{ID: 3, Name: "Grilled Octopus", CategoryID: 4, Price: 18.00, Stock: 0, LowStockThreshold: 5, UnitOfMeasurement: "item"},
			{ID: 16, Name: "Mojito", CategoryID: 8, Price: 12.00, Stock: 1, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		},
		Tables: []models.Table{
			{ID: "t1", Name: "T1", Capacity: 4, Shape: models.TableShapeSquare, X: 50, Y: 50, POSCenterID: 1},
			{ID: "t2", Name: "T2", Capacity: 2, Shape: models.TableShapeCircle, X: 200, Y: 80, POSCenterID: 1},
		},
		Suppliers: []models.Supplier{{ID: 4, Name: "Prime Meats Inc."}},
		PurchaseOrders: []models.PurchaseOrder{
			{ID: "PO-001", SupplierID: 4, Status: models.PurchaseOrderPending,
				Items: []models.PurchaseOrderItem{{MenuItemID: 7, Quantity: 10, Cost: 15.00}}, TotalCost: 150.00},
		},
	}
}

func newTestStore() (*Store, *storage.MemoryGateway) {
	gw := storage.NewMemoryGateway()
	store := New(gw, logger.Discard())
	store.Bootstrap(testSnapshot())
	return store, gw
}

// mediumRareFries is the customization set from the happy-path scenario.
func mediumRareFries() []models.SelectedCustomization {
	return []models.SelectedCustomization{
		{Label: "Cooking Temperature", Value: "Medium Rare"},
		{Label: "Side Dish", Value: "Fries"},
	}
}
