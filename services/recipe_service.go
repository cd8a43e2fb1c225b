package services

import (
	"errors"
	"fmt"

	"github.com/Voisew/foodgram-st/models"
	"github.com/Voisew/foodgram-st/utils"

	"gorm.io/gorm"
)

// ImageUploader stores a base64 data-URL image and returns its public
// URL. The production implementation is utils.S3Uploader.
type ImageUploader interface {
	UploadBase64(data, prefix string) (string, error)
}

type RecipeService struct {
	db     *gorm.DB
	images ImageUploader
}

func NewRecipeService(db *gorm.DB, images ImageUploader) *RecipeService {
	return &RecipeService{db: db, images: images}
}

type IngredientLineInput struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

type RecipeCreateInput struct {
	Name        string                `json:"name" binding:"required"`
	Text        string                `json:"text"`
	Image       string                `json:"image"`
	CookingTime int                   `json:"cooking_time"`
	Ingredients []IngredientLineInput `json:"ingredients"`
}

// RecipeUpdateInput uses pointers so an omitted field is
// distinguishable from a zero value. Every field keeps its old value
// when omitted, except Ingredients: the line set must be resupplied in
// full on every update.
type RecipeUpdateInput struct {
	Name        *string                `json:"name"`
	Text        *string                `json:"text"`
	Image       *string                `json:"image"`
	CookingTime *int                   `json:"cooking_time"`
	Ingredients *[]IngredientLineInput `json:"ingredients"`
}

func (s *RecipeService) validateLines(lines []IngredientLineInput) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: at least one ingredient is required", ErrValidation)
	}

	seen := make(map[uint]bool, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if line.Amount < 1 {
			return fmt.Errorf("%w: ingredient amount must be at least 1", ErrValidation)
		}
		if seen[line.ID] {
			return fmt.Errorf("%w: duplicate ingredient %d", ErrValidation, line.ID)
		}
		seen[line.ID] = true
		ids = append(ids, line.ID)
	}

	var count int64
	if err := s.db.Model(&models.Ingredient{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return fmt.Errorf("%w: unknown ingredient id", ErrValidation)
	}
	return nil
}

func (s *RecipeService) Create(authorID uint, in RecipeCreateInput) (*models.Recipe, error) {
	if in.CookingTime < 1 {
		return nil, fmt.Errorf("%w: cooking time must be at least 1", ErrValidation)
	}
	if in.Image == "" {
		return nil, fmt.Errorf("%w: image is required", ErrValidation)
	}
	if err := s.validateLines(in.Ingredients); err != nil {
		return nil, err
	}

	imageURL, err := s.images.UploadBase64(in.Image, "recipes")
	if err != nil {
		return nil, fmt.Errorf("%w: bad image payload", ErrValidation)
	}

	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        in.Name,
		Text:        in.Text,
		Image:       imageURL,
		CookingTime: in.CookingTime,
		ShortCode:   utils.GenerateRandomToken(8),
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		lines := buildLines(recipe.ID, in.Ingredients)
		return tx.Create(&lines).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(recipe.ID)
}

func (s *RecipeService) Update(userID, recipeID uint, in RecipeUpdateInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, fmt.Errorf("%w: only the author can edit a recipe", ErrForbidden)
	}

	// Partial updates must always resupply the full line set; silently
	// keeping the old lines hides client bugs.
	if in.Ingredients == nil {
		return nil, fmt.Errorf("%w: ingredients field is required", ErrValidation)
	}
	if err := s.validateLines(*in.Ingredients); err != nil {
		return nil, err
	}

	if in.Name != nil {
		recipe.Name = *in.Name
	}
	if in.Text != nil {
		recipe.Text = *in.Text
	}
	if in.CookingTime != nil {
		if *in.CookingTime < 1 {
			return nil, fmt.Errorf("%w: cooking time must be at least 1", ErrValidation)
		}
		recipe.CookingTime = *in.CookingTime
	}
	if in.Image != nil {
		if *in.Image == "" {
			return nil, fmt.Errorf("%w: image cannot be empty", ErrValidation)
		}
		imageURL, err := s.images.UploadBase64(*in.Image, "recipes")
		if err != nil {
			return nil, fmt.Errorf("%w: bad image payload", ErrValidation)
		}
		recipe.Image = imageURL
	}

	// Delete-all-then-insert inside one transaction: a failed replace
	// rolls back and leaves the prior line set intact.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		lines := buildLines(recipe.ID, *in.Ingredients)
		return tx.Create(&lines).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(recipe.ID)
}

func (s *RecipeService) Delete(userID, recipeID uint) error {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID != userID {
		return fmt.Errorf("%w: only the author can delete a recipe", ErrForbidden)
	}

	// Hard delete, lines and relation rows first, so no orphans survive
	// regardless of engine-level cascade support.
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.ShoppingCartEntry{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&recipe).Error
	})
}

func (s *RecipeService) Get(recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		First(&recipe, recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) GetByShortCode(code string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("short_code = ?", code).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

type RecipeFilter struct {
	AuthorID  uint
	Favorited bool // restrict to the viewer's favorites
	InCart    bool // restrict to the viewer's cart
	ViewerID  uint
	Page      int
	Limit     int
}

func (s *RecipeService) List(f RecipeFilter) ([]models.Recipe, error) {
	q := s.db.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Order("recipes.id DESC")

	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.Favorited && f.ViewerID != 0 {
		q = q.Where("recipes.id IN (?)",
			s.db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", f.ViewerID))
	}
	if f.InCart && f.ViewerID != 0 {
		q = q.Where("recipes.id IN (?)",
			s.db.Model(&models.ShoppingCartEntry{}).Select("recipe_id").Where("user_id = ?", f.ViewerID))
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
		if f.Page > 1 {
			q = q.Offset((f.Page - 1) * f.Limit)
		}
	}

	var recipes []models.Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func buildLines(recipeID uint, lines []IngredientLineInput) []models.RecipeIngredient {
	out := make([]models.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		out = append(out, models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: line.ID,
			Amount:       line.Amount,
		})
	}
	return out
}
