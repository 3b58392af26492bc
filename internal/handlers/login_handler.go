package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/auth"
)

type loginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// Login exchanges a staff PIN for a session token. The PIN is matched
// against every active staff member, so PINs must be unique.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pin is required"})
		return
	}

	staff, err := h.Store.AuthenticateByPIN(req.PIN)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid PIN"})
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, staff.ID, staff.RoleID, h.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	role, _ := h.Store.RoleByID(staff.RoleID)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"staff": gin.H{
			"id":     staff.ID,
			"name":   staff.Name,
			"roleId": staff.RoleID,
			"role":   role.Name,
		},
	})
}
