package services

import (
	"errors"
	"fmt"

	"github.com/Voisew/foodgram-st/models"
	"github.com/Voisew/foodgram-st/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	images ImageUploader
}

func NewUserService(db *gorm.DB, images ImageUploader) *UserService {
	return &UserService{db: db, images: images}
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List(page, limit int) ([]models.User, error) {
	q := s.db.Order("id")
	if limit > 0 {
		q = q.Limit(limit)
		if page > 1 {
			q = q.Offset((page - 1) * limit)
		}
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) SetPassword(userID uint, current, newPassword string) error {
	user, err := s.Get(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return ErrWrongPassword
	}
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrValidation)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.db.Model(user).Update("password", hashed).Error
}

// SetAvatar stores the base64 payload and saves its public URL.
func (s *UserService) SetAvatar(userID uint, base64Data string) (string, error) {
	user, err := s.Get(userID)
	if err != nil {
		return "", err
	}
	if base64Data == "" {
		return "", fmt.Errorf("%w: avatar field is required", ErrValidation)
	}

	url, err := s.images.UploadBase64(base64Data, "avatars")
	if err != nil {
		return "", fmt.Errorf("%w: bad avatar payload", ErrValidation)
	}
	if err := s.db.Model(user).Update("avatar", url).Error; err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) ClearAvatar(userID uint) error {
	user, err := s.Get(userID)
	if err != nil {
		return err
	}
	return s.db.Model(user).Update("avatar", "").Error
}
