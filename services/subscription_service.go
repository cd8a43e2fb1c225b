package services

import (
	"errors"
	"fmt"

	"github.com/Voisew/foodgram-st/models"

	"gorm.io/gorm"
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// FollowView is an author enriched with their recipe count and a
// (possibly capped) slice of their recipes.
type FollowView struct {
	UserView
	Recipes      []RecipeShortView `json:"recipes"`
	RecipesCount int64             `json:"recipes_count"`
}

// NoRecipeCap disables truncation of the embedded recipe list.
const NoRecipeCap = -1

func (s *SubscriptionService) Follow(userID, authorID uint) (*FollowView, error) {
	if userID == authorID {
		return nil, ErrSelfFollow
	}

	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// The (user_id, following_id) unique index arbitrates duplicates.
	if err := s.db.Create(&models.Follow{UserID: userID, FollowingID: authorID}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: already subscribed", ErrAlreadyExists)
		}
		return nil, err
	}

	return s.followView(author, NoRecipeCap, true)
}

func (s *SubscriptionService) Unfollow(userID, authorID uint) error {
	var exists int64
	if err := s.db.Model(&models.User{}).Where("id = ?", authorID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return ErrUserNotFound
	}

	res := s.db.Where("user_id = ? AND following_id = ?", userID, authorID).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: not subscribed", ErrNotFound)
	}
	return nil
}

// List returns every author the user follows, ordered by username.
// recipesLimit caps the embedded recipes per author; NoRecipeCap means
// no cap.
func (s *SubscriptionService) List(userID uint, recipesLimit int) ([]FollowView, error) {
	var authors []models.User
	err := s.db.
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("users.username").
		Find(&authors).Error
	if err != nil {
		return nil, err
	}

	views := make([]FollowView, 0, len(authors))
	for _, author := range authors {
		view, err := s.followView(author, recipesLimit, true)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *SubscriptionService) followView(author models.User, recipesLimit int, subscribed bool) (*FollowView, error) {
	var count int64
	if err := s.db.Model(&models.Recipe{}).Where("author_id = ?", author.ID).Count(&count).Error; err != nil {
		return nil, err
	}

	q := s.db.Where("author_id = ?", author.ID).Order("id DESC")
	if recipesLimit >= 0 {
		q = q.Limit(recipesLimit)
	}
	var recipes []models.Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, err
	}

	shorts := make([]RecipeShortView, 0, len(recipes))
	for _, r := range recipes {
		shorts = append(shorts, RecipeShort(r))
	}

	return &FollowView{
		UserView: UserView{
			ID:           author.ID,
			Email:        author.Email,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			IsSubscribed: subscribed,
			Avatar:       author.Avatar,
		},
		Recipes:      shorts,
		RecipesCount: count,
	}, nil
}
