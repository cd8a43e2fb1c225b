package controllers

import (
	"net/http"
	"strconv"

	"github.com/Voisew/foodgram-st/config"
	"github.com/Voisew/foodgram-st/services"

	"github.com/gin-gonic/gin"
)

// GET /api/ingredients?name=fl
func ListIngredients(c *gin.Context) {
	ingSvc := services.NewIngredientService(config.DB)
	ingredients, err := ingSvc.List(c.Query("name"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func GetIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingSvc := services.NewIngredientService(config.DB)
	ingredient, err := ingSvc.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}
