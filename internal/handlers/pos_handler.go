package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/middleware"
	"bistro-pos/internal/models"
)

type addItemRequest struct {
	TableID        string                         `json:"tableId" binding:"required"`
	MenuItemID     int                            `json:"menuItemId" binding:"required"`
	Customizations []models.SelectedCustomization `json:"customizations"`
}

type editItemRequest struct {
	Customizations []models.SelectedCustomization `json:"customizations"`
}

type toggleToppingRequest struct {
	Label  string `json:"label" binding:"required"`
	Option string `json:"option" binding:"required"`
}

type quantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type paymentRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

// ListOrders returns live orders, optionally filtered by ?status=.
func (h *Handler) ListOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	c.JSON(http.StatusOK, h.Store.Orders(status))
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.Store.OrderByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddItem adds a line to the table's live order, creating a draft order
// bound to the table when none exists.
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Store.AddItem(middleware.StaffID(c), req.TableID, req.MenuItemID, req.Customizations)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) EditItem(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}
	var req editItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Store.EditItem(middleware.StaffID(c), c.Param("id"), itemID, req.Customizations)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ToggleTopping flips one topping on an unsent line. Adding past the
// template's cap is not an error; the line comes back unchanged.
func (h *Handler) ToggleTopping(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}
	var req toggleToppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Store.ToggleItemTopping(middleware.StaffID(c), c.Param("id"), itemID, req.Label, req.Option)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ChangeQuantity adjusts a line's quantity by a signed delta. Dropping
// to zero or below removes the line.
func (h *Handler) ChangeQuantity(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Store.ChangeQuantity(middleware.StaffID(c), c.Param("id"), itemID, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}

	order, err := h.Store.RemoveItem(middleware.StaffID(c), c.Param("id"), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ClearUnsentItems(c *gin.Context) {
	order, err := h.Store.ClearUnsentItems(middleware.StaffID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SendToKitchen fires a ticket for the order's unsent lines. With
// nothing unsent the call succeeds without creating a ticket.
func (h *Handler) SendToKitchen(c *gin.Context) {
	kot, err := h.Store.SendToKitchen(middleware.StaffID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if kot == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no unsent items"})
		return
	}
	c.JSON(http.StatusCreated, kot)
}

func (h *Handler) GenerateBill(c *gin.Context) {
	order, err := h.Store.GenerateBill(middleware.StaffID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ProcessPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Store.ProcessPayment(middleware.StaffID(c), c.Param("id"), req.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
