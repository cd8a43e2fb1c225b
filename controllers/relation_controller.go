package controllers

import (
	"net/http"
	"strconv"

	"github.com/Voisew/foodgram-st/config"
	"github.com/Voisew/foodgram-st/services"

	"github.com/gin-gonic/gin"
)

func addRelation(c *gin.Context, kind services.RelationKind) {
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	relSvc := services.NewRelationService(config.DB)
	view, err := relSvc.Add(c.GetUint("userID"), uint(recipeID), kind)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func removeRelation(c *gin.Context, kind services.RelationKind) {
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	relSvc := services.NewRelationService(config.DB)
	if err := relSvc.Remove(c.GetUint("userID"), uint(recipeID), kind); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func AddFavorite(c *gin.Context)    { addRelation(c, services.KindFavorite) }
func RemoveFavorite(c *gin.Context) { removeRelation(c, services.KindFavorite) }

func AddToShoppingCart(c *gin.Context)      { addRelation(c, services.KindShoppingCart) }
func RemoveFromShoppingCart(c *gin.Context) { removeRelation(c, services.KindShoppingCart) }

// GET /api/recipes/download_shopping_cart
func DownloadShoppingCart(c *gin.Context) {
	listSvc := services.NewShoppingListService(config.DB)
	rows, err := listSvc.Build(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(listSvc.Render(rows)))
}
