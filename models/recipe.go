package models

import (
	"time"

	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	AuthorID    uint   `gorm:"not null;index"`
	Author      User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string `gorm:"size:256;not null"`
	Text        string `gorm:"type:text"`
	Image       string `gorm:"not null"` // public URL
	CookingTime int    `gorm:"not null"` // minutes, >= 1
	ShortCode   string `gorm:"size:16;uniqueIndex;not null"`

	Ingredients []RecipeIngredient
}

// One (ingredient, amount) line of a recipe. The composite unique index
// is the authoritative guard against duplicate ingredients in a recipe.
type RecipeIngredient struct {
	ID           uint `gorm:"primaryKey"`
	RecipeID     uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       int  `gorm:"not null"` // >= 1
	CreatedAt    time.Time

	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}
