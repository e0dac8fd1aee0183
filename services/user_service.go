package services

import (
	"backend/config"
	"backend/models"
)

func GetUserProfile(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
