package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipehub-api/services"
)

// respondServiceError translates service-layer sentinel errors into HTTP
// responses: NotFound -> 404, InvalidArgument -> 400, Conflict -> 409,
// anything else -> 500 with the error detail passed through.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
	}
}
