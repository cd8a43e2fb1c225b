package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Voisew/foodgram-st/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	// TranslateError makes unique-index violations surface as
	// gorm.ErrDuplicatedKey, which the relation services depend on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.ShoppingCartEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedIngredients(DB); err != nil {
		log.Fatalf("Ingredient seed failed: %v", err)
	}
}

// SeedIngredients loads the reference ingredient catalog from the JSON
// file named by INGREDIENTS_FILE. Runs only once, against an empty table.
func SeedIngredients(db *gorm.DB) error {
	path := os.Getenv("INGREDIENTS_FILE")
	if path == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var entries []struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	ingredients := make([]models.Ingredient, 0, len(entries))
	for _, e := range entries {
		ingredients = append(ingredients, models.Ingredient{
			Name:            e.Name,
			MeasurementUnit: e.MeasurementUnit,
		})
	}
	if len(ingredients) == 0 {
		return nil
	}

	if err := db.CreateInBatches(ingredients, 500).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d ingredients from %s", len(ingredients), path)
	return nil
}
