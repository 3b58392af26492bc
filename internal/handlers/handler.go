// Package handlers is the HTTP surface over the workflow engine. Every
// handler binds input, calls one engine method and maps the rejection
// taxonomy onto status codes; no business rules live here.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/core"
	"bistro-pos/internal/pricing"
)

type Handler struct {
	Store     *core.Store
	JWTSecret []byte
	TokenTTL  time.Duration
}

func New(store *core.Store, jwtSecret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{Store: store, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

// respondError translates engine rejections into HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrInvalidOrderState),
		errors.Is(err, core.ErrLockedItem),
		errors.Is(err, core.ErrInvalidKOTTransition),
		errors.Is(err, core.ErrAlreadyReceived),
		errors.Is(err, core.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrOrderNotFound),
		errors.Is(err, core.ErrOrderItemNotFound),
		errors.Is(err, core.ErrTableNotFound),
		errors.Is(err, core.ErrMenuItemNotFound),
		errors.Is(err, core.ErrKOTNotFound),
		errors.Is(err, core.ErrPONotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrUnknownCustomization),
		errors.Is(err, pricing.ErrUnknownOption),
		errors.Is(err, pricing.ErrDuplicateSize),
		errors.Is(err, pricing.ErrTooManyToppings):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// intParam parses a numeric path parameter, writing the 400 itself on
// failure.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}
