package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Voisew/foodgram-st/config"
	"github.com/Voisew/foodgram-st/models"
	"github.com/Voisew/foodgram-st/routes"
	"github.com/Voisew/foodgram-st/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupAPI points the global config.DB at a per-test in-memory database
// and builds the real router, JWT middleware included.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.ShoppingCartEntry{},
	))
	config.DB = db

	return routes.SetupRouter()
}

func seedUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	user := models.User{
		Email:    username + "@example.com",
		Username: username,
		Password: hashed,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)
	return &user, token
}

func seedRecipe(t *testing.T, authorID uint, name string) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "https://cdn.test/recipes/" + name + ".png",
		CookingTime: 15,
		ShortCode:   utils.GenerateRandomToken(8),
	}
	require.NoError(t, config.DB.Create(&recipe).Error)
	return &recipe
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFavoriteEndpointStatuses(t *testing.T) {
	r := setupAPI(t)
	_, token := seedUser(t, "alice")
	author, _ := seedUser(t, "bob")
	recipe := seedRecipe(t, author.ID, "borscht")

	path := fmt.Sprintf("/api/recipes/%d/favorite", recipe.ID)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodPost, path, "", "").Code)

	w := doRequest(r, http.MethodPost, path, "", token)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "borscht")

	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodPost, path, "", token).Code)
	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodDelete, path, "", token).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodDelete, path, "", token).Code)

	assert.Equal(t, http.StatusNotFound,
		doRequest(r, http.MethodPost, "/api/recipes/9999/favorite", "", token).Code)
}

func TestShoppingCartDownload(t *testing.T) {
	r := setupAPI(t)
	user, token := seedUser(t, "alice")
	author, _ := seedUser(t, "bob")

	flour := models.Ingredient{Name: "Flour", MeasurementUnit: "g"}
	require.NoError(t, config.DB.Create(&flour).Error)

	recipe := seedRecipe(t, author.ID, "bread")
	require.NoError(t, config.DB.Create(&models.RecipeIngredient{
		RecipeID: recipe.ID, IngredientID: flour.ID, Amount: 500,
	}).Error)

	// Empty cart is a client-visible condition, not a server fault.
	w := doRequest(r, http.MethodGet, "/api/recipes/download_shopping_cart", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, config.DB.Create(&models.ShoppingCartEntry{
		UserID: user.ID, RecipeID: recipe.ID,
	}).Error)

	w = doRequest(r, http.MethodGet, "/api/recipes/download_shopping_cart", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "shopping_cart.txt")
	assert.Equal(t, "Flour - 500 (g)", w.Body.String())
}

func TestSubscribeEndpointStatuses(t *testing.T) {
	r := setupAPI(t)
	alice, token := seedUser(t, "alice")
	bob, _ := seedUser(t, "bob")
	seedRecipe(t, bob.ID, "bread")

	self := fmt.Sprintf("/api/users/%d/subscribe", alice.ID)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodPost, self, "", token).Code)

	path := fmt.Sprintf("/api/users/%d/subscribe", bob.ID)
	w := doRequest(r, http.MethodPost, path, "", token)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"recipes_count":1`)

	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodPost, path, "", token).Code)

	// Non-numeric recipes_limit means no cap, not an error.
	w = doRequest(r, http.MethodGet, "/api/users/subscriptions?recipes_limit=abc", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)

	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodDelete, path, "", token).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodDelete, path, "", token).Code)
}

func TestRecipeOwnershipOverHTTP(t *testing.T) {
	r := setupAPI(t)
	author, _ := seedUser(t, "alice")
	_, strangerToken := seedUser(t, "mallory")
	recipe := seedRecipe(t, author.ID, "borscht")

	path := fmt.Sprintf("/api/recipes/%d", recipe.ID)
	body := `{"name":"stolen","ingredients":[{"id":1,"amount":1}]}`

	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodPatch, path, body, strangerToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodDelete, path, "", strangerToken).Code)
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupAPI(t)

	body := `{"email":"new@example.com","username":"newbie","first_name":"New","last_name":"User","password":"secret123"}`
	assert.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/auth/register", body, "").Code)

	// Duplicate email conflicts at the unique index.
	dup := `{"email":"new@example.com","username":"other","first_name":"New","last_name":"User","password":"secret123"}`
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodPost, "/api/auth/register", dup, "").Code)

	login := `{"email":"new@example.com","password":"secret123"}`
	w := doRequest(r, http.MethodPost, "/api/auth/login", login, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "auth_token")

	bad := `{"email":"new@example.com","password":"wrong"}`
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodPost, "/api/auth/login", bad, "").Code)
}

func TestShortLink(t *testing.T) {
	r := setupAPI(t)
	author, _ := seedUser(t, "alice")
	recipe := seedRecipe(t, author.ID, "borscht")

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/recipes/%d/get-link", recipe.ID), "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/s/"+recipe.ShortCode)

	w = doRequest(r, http.MethodGet, "/s/"+recipe.ShortCode, "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/api/recipes/%d", recipe.ID), w.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/s/nope1234", "", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/api/recipes/9999/get-link", "", "").Code)
}
