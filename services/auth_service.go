package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Voisew/foodgram-st/models"
	"github.com/Voisew/foodgram-st/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     in.Email,
		Username:  in.Username,
		Password:  hashed,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or username is taken", ErrAlreadyExists)
		}
		return nil, err
	}

	if err := utils.SendWelcomeEmail(user.Email, user.Username); err != nil {
		log.Printf("welcome mail to %s skipped: %v", user.Email, err)
	}

	return &user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", fmt.Errorf("%w: incorrect password", ErrWrongPassword)
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
