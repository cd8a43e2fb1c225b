package models

import "time"

// Favorite and ShoppingCartEntry are the two user<->recipe relation kinds.
// Both rely on their composite unique index for idempotency: concurrent
// identical adds race at the index, not in application code.

type Favorite struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_favorites_user_recipe"`
	RecipeID  uint `gorm:"not null;uniqueIndex:idx_favorites_user_recipe"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type ShoppingCartEntry struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  uint `gorm:"not null;uniqueIndex:idx_cart_user_recipe"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}
