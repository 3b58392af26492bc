// Package seed provides the first-run dataset: roles, staff, the menu,
// the floor plan and open purchase orders. Orders and kitchen tickets
// always start empty.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"bistro-pos/internal/core"
	"bistro-pos/internal/models"
)

var allPermissions = []models.Permission{
	models.PermViewDashboard, models.PermAccessPOS, models.PermViewTables,
	models.PermEditFloorPlan, models.PermProcessPayments, models.PermViewOrders,
	models.PermViewInventory, models.PermManageItems, models.PermReceivePurchases,
	models.PermManageStaff, models.PermManageSettings, models.PermManagePOSCenters,
	models.PermViewSalesReports, models.PermGenerateBills, models.PermViewBilling,
	models.PermViewKitchenDisplay, models.PermSendToKitchen,
}

func hashPIN(pin string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// Snapshot builds the bootstrap dataset.
func Snapshot() core.Snapshot {
	return core.Snapshot{
		Roles:          roles(),
		Staff:          staff(),
		Categories:     categories(),
		MenuItems:      menuItems(),
		Tables:         tables(),
		POSCenters:     posCenters(),
		Taxes:          taxes(),
		Suppliers:      suppliers(),
		PurchaseOrders: purchaseOrders(),
	}
}

func roles() []models.Role {
	return []models.Role{
		{ID: 1, Name: "Manager", Permissions: allPermissions},
		{ID: 2, Name: "Waiter", Permissions: []models.Permission{
			models.PermAccessPOS, models.PermViewTables, models.PermViewOrders,
			models.PermGenerateBills, models.PermSendToKitchen,
		}},
		{ID: 3, Name: "Cashier", Permissions: []models.Permission{
			models.PermAccessPOS, models.PermProcessPayments, models.PermViewDashboard,
			models.PermViewOrders, models.PermViewBilling,
		}},
		{ID: 4, Name: "Inventory Manager", Permissions: []models.Permission{
			models.PermViewInventory, models.PermManageItems,
			models.PermReceivePurchases, models.PermViewSalesReports,
		}},
		{ID: 5, Name: "Kitchen Staff", Permissions: []models.Permission{
			models.PermViewKitchenDisplay,
		}},
		{ID: 6, Name: "Bartender", Permissions: []models.Permission{
			models.PermAccessPOS, models.PermViewTables, models.PermViewOrders,
			models.PermSendToKitchen,
		}},
		{ID: 7, Name: "Host", Permissions: []models.Permission{
			models.PermViewTables, models.PermEditFloorPlan,
		}},
	}
}

func staff() []models.Staff {
	return []models.Staff{
		{ID: 1, Name: "Admin", PinHash: hashPIN("1234"), RoleID: 1, Status: models.StaffActive},
		{ID: 2, Name: "John Doe", PinHash: hashPIN("1111"), RoleID: 2, Status: models.StaffActive},
		{ID: 3, Name: "Jane Smith", PinHash: hashPIN("2222"), RoleID: 3, Status: models.StaffActive},
		{ID: 4, Name: "Chef Mike", PinHash: hashPIN("5555"), RoleID: 5, Status: models.StaffActive},
		{ID: 5, Name: "Sara Lee", PinHash: hashPIN("6666"), RoleID: 6, Status: models.StaffActive},
		{ID: 6, Name: "Tom Allen", PinHash: hashPIN("7777"), RoleID: 7, Status: models.StaffActive},
		{ID: 7, Name: "Emily White", PinHash: hashPIN("8888"), RoleID: 2, Status: models.StaffActive},
		{ID: 8, Name: "Chris Green", PinHash: hashPIN("9999"), RoleID: 2, Status: models.StaffInactive},
	}
}

func categories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Appetizer"},
		{ID: 2, Name: "Soups & Salads"},
		{ID: 3, Name: "Pasta"},
		{ID: 4, Name: "Steaks"},
		{ID: 5, Name: "Seafood"},
		{ID: 6, Name: "Pizza"},
		{ID: 7, Name: "Burgers"},
		{ID: 8, Name: "Side Dish"},
		{ID: 9, Name: "Dessert"},
		{ID: 10, Name: "Cocktails"},
		{ID: 11, Name: "Wines"},
		{ID: 12, Name: "Beverage"},
	}
}

func menuItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Bruschetta", CategoryID: 1, Price: 9.50, Stock: 50, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		{ID: 2, Name: "Calamari Fritti", CategoryID: 1, Price: 13.00, Stock: 35, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		{ID: 3, Name: "Grilled Octopus", CategoryID: 1, Price: 18.00, Stock: 0, LowStockThreshold: 5, UnitOfMeasurement: "item"},
		{ID: 4, Name: "Caesar Salad", CategoryID: 2, Price: 10.50, Stock: 40, LowStockThreshold: 10, UnitOfMeasurement: "item",
			CustomizationTemplate: []models.CustomizationTemplate{
				{Type: models.CustomizationToppings, Label: "Add Protein", Options: []models.CustomizationOption{
					{Name: "Chicken", Price: 4.00}, {Name: "Shrimp", Price: 6.00},
				}},
			}},
		{ID: 5, Name: "Spaghetti Carbonara", CategoryID: 3, Price: 17.00, Stock: 30, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		{ID: 6, Name: "Build Your Own Pasta", CategoryID: 3, Price: 14.00, Stock: 100, LowStockThreshold: 20, UnitOfMeasurement: "item",
			CustomizationTemplate: []models.CustomizationTemplate{
				{Type: models.CustomizationSize, Label: "Pasta", Options: []models.CustomizationOption{
					{Name: "Penne"}, {Name: "Spaghetti"}, {Name: "Fettuccine"},
				}},
				{Type: models.CustomizationSize, Label: "Sauce", Options: []models.CustomizationOption{
					{Name: "Marinara"}, {Name: "Alfredo", Price: 2.00}, {Name: "Pesto", Price: 2.50},
				}},
				{Type: models.CustomizationToppings, Label: "Add-ons", MaxSelections: 4, Options: []models.CustomizationOption{
					{Name: "Meatballs", Price: 3.00}, {Name: "Chicken", Price: 4.00},
					{Name: "Mushrooms", Price: 1.50}, {Name: "Spinach", Price: 1.00},
				}},
			}},
		{ID: 7, Name: "Ribeye Steak (12oz)", CategoryID: 4, Price: 38.00, Stock: 15, LowStockThreshold: 5, UnitOfMeasurement: "item",
			CustomizationTemplate: []models.CustomizationTemplate{
				{Type: models.CustomizationNotes, Label: "Cooking Temperature"},
				{Type: models.CustomizationSize, Label: "Side Dish", Options: []models.CustomizationOption{
					{Name: "Fries"}, {Name: "Mashed Potatoes"}, {Name: "Grilled Asparagus", Price: 2.00},
				}},
			}},
		{ID: 8, Name: "Pan Seared Salmon", CategoryID: 5, Price: 26.00, Stock: 25, LowStockThreshold: 8, UnitOfMeasurement: "item"},
		{ID: 9, Name: "Margherita Pizza", CategoryID: 6, Price: 15.99, Stock: 40, LowStockThreshold: 10, UnitOfMeasurement: "pcs",
			CustomizationTemplate: []models.CustomizationTemplate{
				{Type: models.CustomizationToppings, Label: "Add Toppings", MaxSelections: 3, Options: []models.CustomizationOption{
					{Name: "Extra Cheese", Price: 1.50}, {Name: "Mushrooms", Price: 0.75}, {Name: "Pepperoni", Price: 1.25},
				}},
			}},
		{ID: 10, Name: "Classic Burger", CategoryID: 7, Price: 16.00, Stock: 20, LowStockThreshold: 10, UnitOfMeasurement: "item",
			CustomizationTemplate: []models.CustomizationTemplate{
				{Type: models.CustomizationNotes, Label: "Cooking Instructions (e.g., well-done)"},
			}},
		{ID: 11, Name: "French Fries", CategoryID: 8, Price: 5.99, Stock: 100, LowStockThreshold: 20, UnitOfMeasurement: "kg"},
		{ID: 12, Name: "Garlic Bread", CategoryID: 8, Price: 6.50, Stock: 50, LowStockThreshold: 15, UnitOfMeasurement: "item"},
		{ID: 13, Name: "Chocolate Lava Cake", CategoryID: 9, Price: 8.99, Stock: 30, LowStockThreshold: 8, UnitOfMeasurement: "pcs"},
		{ID: 14, Name: "Tiramisu", CategoryID: 9, Price: 9.50, Stock: 25, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		{ID: 15, Name: "Old Fashioned", CategoryID: 10, Price: 14.00, Stock: 100, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		{ID: 16, Name: "Mojito", CategoryID: 10, Price: 12.00, Stock: 8, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		{ID: 17, Name: "Cabernet Sauvignon (Glass)", CategoryID: 11, Price: 15.00, Stock: 20, LowStockThreshold: 5, UnitOfMeasurement: "item"},
		{ID: 18, Name: "Iced Latte", CategoryID: 12, Price: 4.50, Stock: 100, LowStockThreshold: 10, UnitOfMeasurement: "item"},
		{ID: 19, Name: "Sparkling Water", CategoryID: 12, Price: 3.00, Stock: 200, LowStockThreshold: 50, UnitOfMeasurement: "item"},
	}
}

func tables() []models.Table {
	return []models.Table{
		{ID: "t1", Name: "T1", Capacity: 4, Shape: models.TableShapeSquare, X: 50, Y: 50, POSCenterID: 1},
		{ID: "t2", Name: "T2", Capacity: 2, Shape: models.TableShapeCircle, X: 200, Y: 80, POSCenterID: 1},
		{ID: "t3", Name: "T3", Capacity: 6, Shape: models.TableShapeSquare, X: 80, Y: 200, POSCenterID: 1},
		{ID: "t4", Name: "T4", Capacity: 4, Shape: models.TableShapeSquare, X: 250, Y: 200, POSCenterID: 1},
		{ID: "t5", Name: "T5", Capacity: 2, Shape: models.TableShapeCircle, X: 400, Y: 50, POSCenterID: 1},
		{ID: "t6", Name: "T6", Capacity: 8, Shape: models.TableShapeSquare, X: 450, Y: 250, POSCenterID: 1},
		{ID: "b1", Name: "Bar 1", Capacity: 2, Shape: models.TableShapeCircle, X: 50, Y: 50, POSCenterID: 2},
		{ID: "b2", Name: "Bar 2", Capacity: 2, Shape: models.TableShapeCircle, X: 150, Y: 50, POSCenterID: 2},
		{ID: "b3", Name: "Lounge 1", Capacity: 6, Shape: models.TableShapeSquare, X: 50, Y: 150, POSCenterID: 2},
		{ID: "p1", Name: "P1", Capacity: 4, Shape: models.TableShapeSquare, X: 50, Y: 50, POSCenterID: 3},
		{ID: "p2", Name: "P2", Capacity: 4, Shape: models.TableShapeSquare, X: 150, Y: 50, POSCenterID: 3},
		{ID: "p3", Name: "P3", Capacity: 2, Shape: models.TableShapeCircle, X: 50, Y: 150, POSCenterID: 3},
		{ID: "p4", Name: "P4", Capacity: 2, Shape: models.TableShapeCircle, X: 150, Y: 150, POSCenterID: 3},
		{ID: "p5", Name: "P5", Capacity: 6, Shape: models.TableShapeSquare, X: 250, Y: 100, POSCenterID: 3},
		{ID: "p6", Name: "P6", Capacity: 4, Shape: models.TableShapeSquare, X: 400, Y: 100, POSCenterID: 3},
	}
}

func posCenters() []models.POSCenter {
	return []models.POSCenter{
		{ID: 1, Name: "Main Dining", Status: "Enabled"},
		{ID: 2, Name: "Rooftop Bar", Status: "Enabled"},
		{ID: 3, Name: "Patio", Status: "Enabled"},
		{ID: 4, Name: "Private Room", Status: "Disabled"},
	}
}

func taxes() []models.Tax {
	return []models.Tax{
		{ID: 1, Name: "VAT", Rate: 10, IsDefault: true},
		{ID: 2, Name: "Service Charge", Rate: 5, IsDefault: false},
	}
}

func suppliers() []models.Supplier {
	return []models.Supplier{
		{ID: 1, Name: "Fresh Produce Co."},
		{ID: 2, Name: "Artisan Breads & Co."},
		{ID: 3, Name: "Ocean Delights Seafood"},
		{ID: 4, Name: "Prime Meats Inc."},
	}
}

func purchaseOrders() []models.PurchaseOrder {
	return []models.PurchaseOrder{
		{
			ID: "PO-001", SupplierID: 1, Date: time.Now().AddDate(0, 0, -1),
			Items:     []models.PurchaseOrderItem{{MenuItemID: 1, Quantity: 30, Cost: 3.00}},
			TotalCost: 90.00, Status: models.PurchaseOrderPending,
		},
		{
			ID: "PO-002", SupplierID: 3, Date: time.Now().AddDate(0, 0, -3),
			Items: []models.PurchaseOrderItem{
				{MenuItemID: 3, Quantity: 15, Cost: 9.50},
				{MenuItemID: 16, Quantity: 24, Cost: 4.00},
			},
			TotalCost: 238.50, Status: models.PurchaseOrderPending,
		},
	}
}
