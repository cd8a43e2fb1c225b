package services

import (
	"errors"
	"strings"

	"github.com/Voisew/foodgram-st/models"

	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// List supports a case-insensitive starts-with filter on the name.
func (s *IngredientService) List(namePrefix string) ([]models.Ingredient, error) {
	q := s.db.Order("name")
	if namePrefix != "" {
		q = q.Where("LOWER(name) LIKE ?", strings.ToLower(namePrefix)+"%")
	}
	var ingredients []models.Ingredient
	if err := q.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}
