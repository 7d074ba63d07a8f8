package models

import "time"

// Course difficulty levels
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Course represents a marketplace course with its ordered lesson list
type Course struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"unique;not null"`
	Description  string    `json:"description" gorm:"not null"`
	Price        string    `json:"price" gorm:"type:decimal(10,2);not null"` // display-only, currency-agnostic
	Category     string    `json:"category" gorm:"not null"`
	Difficulty   string    `json:"difficulty" gorm:"not null"` // Beginner, Intermediate, Advanced
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	Lessons      []Lesson  `json:"lessons" gorm:"foreignKey:CourseID"`
}

// Lesson belongs to a course; Order defines the display sequence
type Lesson struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CourseID    uint   `json:"courseId" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	ContentHTML string `json:"contentHtml" gorm:"type:text;not null"`
	VideoURL    string `json:"videoUrl"`
	Order       int    `json:"order" gorm:"column:sort_order;not null"`
}
