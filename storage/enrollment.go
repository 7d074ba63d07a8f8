package storage

import (
	"errors"

	"learnhub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateEnrollment inserts an enrollment with an empty progress map.
// A duplicate (user, course) pair fails with gorm.ErrDuplicatedKey via
// the table's unique index.
func (s *Storage) CreateEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Progress: datatypes.NewJSONType(models.ProgressMap{}),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetUserEnrollments returns all enrollments for a user, each enriched
// with its course (lessons not included at this level)
func (s *Storage) GetUserEnrollments(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("user_id = ?", userID).Preload("Course").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// GetEnrollment returns the enrollment for a (user, course) pair, or nil if absent
func (s *Storage) GetEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

// GetEnrollmentById returns the enrollment by id, or nil if absent
func (s *Storage) GetEnrollmentById(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

// UpdateEnrollmentProgress replaces the progress map wholesale; merging
// with existing progress happens at the controller layer
func (s *Storage) UpdateEnrollmentProgress(id uint, progress models.ProgressMap) (*models.Enrollment, error) {
	err := s.db.Model(&models.Enrollment{}).Where("id = ?", id).
		Update("progress", datatypes.NewJSONType(progress)).Error
	if err != nil {
		return nil, err
	}
	return s.GetEnrollmentById(id)
}
