// Package storage is the persistence layer: plain CRUD over users,
// courses, lessons and enrollments. Reads return nil for absent rows;
// multi-row writes run in a single transaction.
package storage

import (
	"learnhub/models"

	"gorm.io/gorm"
)

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Stats holds the aggregate counts for the admin report
type Stats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalCourses     int64 `json:"totalCourses"`
	TotalEnrollments int64 `json:"totalEnrollments"`
}

// GetStats returns row counts per table at call time
func (s *Storage) GetStats() (*Stats, error) {
	var stats Stats
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Course{}).Count(&stats.TotalCourses).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enrollment{}).Count(&stats.TotalEnrollments).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
