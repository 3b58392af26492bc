package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/middleware"
	"bistro-pos/internal/models"
)

// GetMenu returns the categories and sellable items together, the shape
// the order screen loads in one request.
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.Store.Categories(),
		"items":      h.Store.MenuItems(),
	})
}

// InventoryRow is a menu item with its derived reorder flag.
type InventoryRow struct {
	models.MenuItem
	LowStock bool `json:"lowStock"`
}

// GetInventory returns current stock levels. ?low=true narrows the list
// to items at or below their reorder threshold.
func (h *Handler) GetInventory(c *gin.Context) {
	lowOnly := c.Query("low") == "true"

	rows := []InventoryRow{}
	for _, item := range h.Store.MenuItems() {
		if lowOnly && !item.IsLowStock() {
			continue
		}
		rows = append(rows, InventoryRow{MenuItem: item, LowStock: item.IsLowStock()})
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListPurchaseOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.PurchaseOrders())
}

// ReceivePurchaseOrder books a pending purchase order into stock.
// Receiving the same order twice is rejected.
func (h *Handler) ReceivePurchaseOrder(c *gin.Context) {
	po, err := h.Store.ReceivePurchaseOrder(middleware.StaffID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}
