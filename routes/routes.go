package routes

import (
	"github.com/Voisew/foodgram-st/controllers"
	"github.com/Voisew/foodgram-st/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Short-link redirects live outside /api
	r.GET("/s/:code", controllers.ResolveShortLink)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", controllers.ListIngredients)
		ingredients.GET("/:id", controllers.GetIngredient)
	}

	users := api.Group("/users")
	{
		users.GET("", middlewares.OptionalAuthMiddleware(), controllers.ListUsers)
		users.GET("/me", middlewares.AuthMiddleware(), controllers.Me)
		users.GET("/subscriptions", middlewares.AuthMiddleware(), controllers.ListSubscriptions)
		users.POST("/set_password", middlewares.AuthMiddleware(), controllers.SetPassword)
		users.PUT("/me/avatar", middlewares.AuthMiddleware(), controllers.UpdateAvatar)
		users.DELETE("/me/avatar", middlewares.AuthMiddleware(), controllers.DeleteAvatar)
		users.GET("/:id", middlewares.OptionalAuthMiddleware(), controllers.GetUser)
		users.POST("/:id/subscribe", middlewares.AuthMiddleware(), controllers.Subscribe)
		users.DELETE("/:id/subscribe", middlewares.AuthMiddleware(), controllers.Unsubscribe)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", middlewares.OptionalAuthMiddleware(), controllers.ListRecipes)
		recipes.POST("", middlewares.AuthMiddleware(), controllers.CreateRecipe)
		recipes.GET("/download_shopping_cart", middlewares.AuthMiddleware(), controllers.DownloadShoppingCart)
		recipes.GET("/:id", middlewares.OptionalAuthMiddleware(), controllers.GetRecipe)
		recipes.PATCH("/:id", middlewares.AuthMiddleware(), controllers.UpdateRecipe)
		recipes.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteRecipe)
		recipes.GET("/:id/get-link", middlewares.OptionalAuthMiddleware(), controllers.GetShortLink)
		recipes.POST("/:id/favorite", middlewares.AuthMiddleware(), controllers.AddFavorite)
		recipes.DELETE("/:id/favorite", middlewares.AuthMiddleware(), controllers.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", middlewares.AuthMiddleware(), controllers.AddToShoppingCart)
		recipes.DELETE("/:id/shopping_cart", middlewares.AuthMiddleware(), controllers.RemoveFromShoppingCart)
	}

	return r
}
