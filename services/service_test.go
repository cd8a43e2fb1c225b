package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Voisew/foodgram-st/models"
	"github.com/Voisew/foodgram-st/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database with the production
// schema. cache=shared keeps the database alive across the pool's
// connections; the test name keeps databases isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Email:     username + "@example.com",
		Username:  username,
		Password:  "x",
		FirstName: username,
		LastName:  "Tester",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ing := models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(&ing).Error)
	return &ing
}

func createRecipe(t *testing.T, db *gorm.DB, authorID uint, name string, lines ...models.RecipeIngredient) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        "test recipe",
		Image:       "https://cdn.test/recipes/" + name + ".png",
		CookingTime: 10,
		ShortCode:   utils.GenerateRandomToken(8),
	}
	require.NoError(t, db.Create(&recipe).Error)
	for i := range lines {
		lines[i].RecipeID = recipe.ID
	}
	if len(lines) > 0 {
		require.NoError(t, db.Create(&lines).Error)
	}
	return &recipe
}

// fakeUploader stands in for S3 in service tests.
type fakeUploader struct{}

func (fakeUploader) UploadBase64(data, prefix string) (string, error) {
	if !strings.HasPrefix(data, "data:") {
		return "", fmt.Errorf("invalid base64 image")
	}
	return "https://cdn.test/" + prefix + "/uploaded.png", nil
}
