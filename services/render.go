package services

import (
	"github.com/Voisew/foodgram-st/models"

	"gorm.io/gorm"
)

// RenderContext carries the viewer-specific id sets that decorate
// responses (is_favorited, is_in_shopping_cart, is_subscribed). It is
// built once per request so list rendering does one query per set
// instead of one per row.
type RenderContext struct {
	ViewerID      uint // 0 for anonymous
	FavoritedIDs  map[uint]bool
	CartIDs       map[uint]bool
	SubscribedIDs map[uint]bool
}

func NewRenderContext(db *gorm.DB, viewerID uint) (*RenderContext, error) {
	rc := &RenderContext{
		ViewerID:      viewerID,
		FavoritedIDs:  map[uint]bool{},
		CartIDs:       map[uint]bool{},
		SubscribedIDs: map[uint]bool{},
	}
	if viewerID == 0 {
		return rc, nil
	}

	var ids []uint
	if err := db.Model(&models.Favorite{}).Where("user_id = ?", viewerID).Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		rc.FavoritedIDs[id] = true
	}

	ids = ids[:0]
	if err := db.Model(&models.ShoppingCartEntry{}).Where("user_id = ?", viewerID).Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		rc.CartIDs[id] = true
	}

	ids = ids[:0]
	if err := db.Model(&models.Follow{}).Where("user_id = ?", viewerID).Pluck("following_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		rc.SubscribedIDs[id] = true
	}

	return rc, nil
}

type UserView struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
	Avatar       string `json:"avatar"`
}

type IngredientLineView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeView struct {
	ID               uint                 `json:"id"`
	Author           UserView             `json:"author"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
	Ingredients      []IngredientLineView `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
}

// RecipeShortView is the compact payload returned by the relation
// toggles and embedded in subscription listings.
type RecipeShortView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func (rc *RenderContext) UserView(u models.User) UserView {
	return UserView{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: rc.SubscribedIDs[u.ID],
		Avatar:       u.Avatar,
	}
}

// RecipeView expects Author and Ingredients.Ingredient to be preloaded.
func (rc *RenderContext) RecipeView(r models.Recipe) RecipeView {
	lines := make([]IngredientLineView, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		lines = append(lines, IngredientLineView{
			ID:              line.IngredientID,
			Name:            line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			Amount:          line.Amount,
		})
	}
	return RecipeView{
		ID:               r.ID,
		Author:           rc.UserView(r.Author),
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		Ingredients:      lines,
		IsFavorited:      rc.FavoritedIDs[r.ID],
		IsInShoppingCart: rc.CartIDs[r.ID],
	}
}

func RecipeShort(r models.Recipe) RecipeShortView {
	return RecipeShortView{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
