package storage

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

// GetUser returns the user by id, or nil if absent
func (s *Storage) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the user by email, or nil if absent
func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a user; the caller supplies the hashed password and role
func (s *Storage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// GetAllUsers returns every user, newest first
func (s *Storage) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
