package controllers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/Voisew/foodgram-st/config"
	"github.com/Voisew/foodgram-st/services"
	"github.com/Voisew/foodgram-st/utils"

	"github.com/gin-gonic/gin"
)

func recipeService() *services.RecipeService {
	return services.NewRecipeService(config.DB, utils.S3Uploader{})
}

// GET /api/recipes?author=&is_favorited=&is_in_shopping_cart=&page=&limit=
func ListRecipes(c *gin.Context) {
	viewerID := c.GetUint("userID")

	author, _ := strconv.ParseUint(c.Query("author"), 10, 32)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := services.RecipeFilter{
		AuthorID:  uint(author),
		Favorited: c.Query("is_favorited") == "1",
		InCart:    c.Query("is_in_shopping_cart") == "1",
		ViewerID:  viewerID,
		Page:      page,
		Limit:     limit,
	}

	recipes, err := recipeService().List(filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	rc, err := services.NewRenderContext(config.DB, viewerID)
	if err != nil {
		serviceError(c, err)
		return
	}

	views := make([]services.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, rc.RecipeView(r))
	}
	c.JSON(http.StatusOK, gin.H{"results": views})
}

func CreateRecipe(c *gin.Context) {
	var input services.RecipeCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	recipe, err := recipeService().Create(userID, input)
	if err != nil {
		serviceError(c, err)
		return
	}

	rc, err := services.NewRenderContext(config.DB, userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rc.RecipeView(*recipe))
}

func GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := recipeService().Get(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	rc, err := services.NewRenderContext(config.DB, c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rc.RecipeView(*recipe))
}

func UpdateRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var input services.RecipeUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	recipe, err := recipeService().Update(userID, uint(id), input)
	if err != nil {
		serviceError(c, err)
		return
	}

	rc, err := services.NewRenderContext(config.DB, userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rc.RecipeView(*recipe))
}

func DeleteRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := recipeService().Delete(c.GetUint("userID"), uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/recipes/:id/get-link
func GetShortLink(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := recipeService().Get(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://" + c.Request.Host
	}
	c.JSON(http.StatusOK, gin.H{"short-link": fmt.Sprintf("%s/s/%s", base, recipe.ShortCode)})
}

// GET /s/:code
func ResolveShortLink(c *gin.Context) {
	recipe, err := recipeService().GetByShortCode(c.Param("code"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/recipes/%d", recipe.ID))
}
