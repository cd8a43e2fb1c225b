package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type ShoppingListService struct {
	db *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

type ShoppingListRow struct {
	Name            string
	MeasurementUnit string
	Total           int
}

// Build flattens the ingredient lines of every recipe in the user's
// cart, grouped by (name, unit) with summed amounts. Grouping is by
// name+unit rather than ingredient id because that is the display key.
// Ordered by name then unit so output is deterministic.
func (s *ShoppingListService) Build(userID uint) ([]ShoppingListRow, error) {
	var rows []ShoppingListRow
	err := s.db.
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_entries ON shopping_cart_entries.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyCart
	}
	return rows, nil
}

// Render formats the list as the downloadable text payload.
func (s *ShoppingListService) Render(rows []ShoppingListRow) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s - %d (%s)", row.Name, row.Total, row.MeasurementUnit))
	}
	return strings.Join(lines, "\n")
}
