package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProgressMap maps lesson id (as string key) to completion state
type ProgressMap = map[string]bool

// Enrollment tracks a user's enrollment in a course with per-lesson progress.
// The (user_id, course_id) pair is unique so a concurrent double-enroll
// surfaces as a duplicate-key error instead of a second row.
type Enrollment struct {
	ID         uint                            `json:"id" gorm:"primaryKey"`
	UserID     uint                            `json:"userId" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID   uint                            `json:"courseId" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	Progress   datatypes.JSONType[ProgressMap] `json:"progress"`
	EnrolledAt time.Time                       `json:"enrolledAt" gorm:"autoCreateTime"`
	Course     *Course                         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
