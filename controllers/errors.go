package controllers

import (
	"errors"
	"net/http"

	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses:
// ValidationError -> 400, ErrNotFound -> 404, anything else -> 500.
func respondError(c *gin.Context, err error) {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
