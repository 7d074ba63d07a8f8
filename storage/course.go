package storage

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

// CourseFilters narrows GetCourses; a nil/empty field removes that predicate
type CourseFilters struct {
	Category string
	Search   string
}

func orderedLessons(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order asc")
}

// GetCourses returns all courses, each with its ordered lesson list.
// Category is an exact match, Search a substring match on title; both
// are AND-combined when present.
func (s *Storage) GetCourses(filters CourseFilters) ([]models.Course, error) {
	db := s.db.Preload("Lessons", orderedLessons)
	if filters.Category != "" {
		db = db.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		db = db.Where("title LIKE ?", "%"+filters.Search+"%")
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse returns the course by id with its lessons, or nil if absent
func (s *Storage) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Preload("Lessons", orderedLessons).First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// GetCourseBySlug returns the course by slug with its lessons, or nil if absent
func (s *Storage) GetCourseBySlug(slug string) (*models.Course, error) {
	var course models.Course
	err := s.db.Preload("Lessons", orderedLessons).Where("slug = ?", slug).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// CreateCourse inserts the course row and its lessons in one transaction.
// Lessons are tagged with the new course id in the given order; any
// failure rolls the whole operation back.
func (s *Storage) CreateCourse(course *models.Course, lessons []models.Lesson) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		for i := range lessons {
			lessons[i].CourseID = course.ID
			if err := tx.Create(&lessons[i]).Error; err != nil {
				return err
			}
		}
		course.Lessons = lessons
		return nil
	})
}

// UpdateCourse applies a partial update of scalar course fields and
// returns the updated row; lessons are untouched
func (s *Storage) UpdateCourse(id uint, updates map[string]interface{}) (*models.Course, error) {
	result := s.db.Model(&models.Course{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes the course, its lessons and its enrollments in
// one transaction
func (s *Storage) DeleteCourse(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, id).Error
	})
}
