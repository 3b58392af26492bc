package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/middleware"
	"bistro-pos/internal/models"
)

type kotStatusRequest struct {
	Status models.KOTStatus `json:"status" binding:"required"`
}

// ListKOTs returns kitchen tickets, optionally filtered by ?status=.
func (h *Handler) ListKOTs(c *gin.Context) {
	status := models.KOTStatus(c.Query("status"))
	c.JSON(http.StatusOK, h.Store.KOTs(status))
}

// AdvanceKOT moves a ticket one step along New, Preparing, Ready.
func (h *Handler) AdvanceKOT(c *gin.Context) {
	var req kotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kot, err := h.Store.AdvanceKOT(middleware.StaffID(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, kot)
}
