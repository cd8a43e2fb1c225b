package services

import (
	"errors"
	"fmt"

	"github.com/Voisew/foodgram-st/models"

	"gorm.io/gorm"
)

type RelationKind string

const (
	KindFavorite     RelationKind = "favorite"
	KindShoppingCart RelationKind = "shopping_cart"
)

// RelationService toggles (user, recipe) relation rows. Idempotency is
// enforced by the composite unique index on each relation table: the
// insert itself is the existence check, so two concurrent identical
// adds end as one success and one conflict.
type RelationService struct {
	db *gorm.DB
}

func NewRelationService(db *gorm.DB) *RelationService {
	return &RelationService{db: db}
}

func (s *RelationService) Add(userID, recipeID uint, kind RelationKind) (*RecipeShortView, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	var record interface{}
	switch kind {
	case KindFavorite:
		record = &models.Favorite{UserID: userID, RecipeID: recipeID}
	case KindShoppingCart:
		record = &models.ShoppingCartEntry{UserID: userID, RecipeID: recipeID}
	default:
		return nil, fmt.Errorf("unknown relation kind %q", kind)
	}

	if err := s.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: recipe already added", ErrAlreadyExists)
		}
		return nil, err
	}

	view := RecipeShort(recipe)
	return &view, nil
}

func (s *RelationService) Remove(userID, recipeID uint, kind RelationKind) error {
	var exists int64
	if err := s.db.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return ErrRecipeNotFound
	}

	var res *gorm.DB
	switch kind {
	case KindFavorite:
		res = s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	case KindShoppingCart:
		res = s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.ShoppingCartEntry{})
	default:
		return fmt.Errorf("unknown relation kind %q", kind)
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: recipe is not in the list", ErrNotFound)
	}
	return nil
}
