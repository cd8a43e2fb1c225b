package controllers

import (
	"errors"
	"net/http"

	"github.com/Voisew/foodgram-st/services"

	"github.com/gin-gonic/gin"
)

// serviceError maps the service error taxonomy onto HTTP statuses.
// A missing relation row is a client error (400), a missing entity is 404.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrAlreadyExists),
		errors.Is(err, services.ErrSelfFollow),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
