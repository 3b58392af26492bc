package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/middleware"
)

type positionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ListTables returns all tables with their derived display status.
func (h *Handler) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Tables())
}

func (h *Handler) GetTable(c *gin.Context) {
	table, err := h.Store.TableByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// GetTableOrder returns the live order bound to a table, or 204 when
// the table is free.
func (h *Handler) GetTableOrder(c *gin.Context) {
	order, ok, err := h.Store.ActiveOrderForTable(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, order)
}

// MoveTable repositions a table on the floor plan. Coordinates are
// clamped to the canvas.
func (h *Handler) MoveTable(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.Store.MoveTable(middleware.StaffID(c), c.Param("id"), req.X, req.Y)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
