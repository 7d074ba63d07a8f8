package controllers

import (
	"errors"
	"log"
	"strconv"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/storage"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse creates an enrollment with empty progress. The unique
// (user, course) index catches the race two concurrent enrolls would
// otherwise win together.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	courseID := c.Locals("courseID").(uint)

	store := storage.New(database.Database.Db)

	course, err := store.GetCourse(courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if course == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	// Check if user is already enrolled
	existing, err := store.GetEnrollment(userID, courseID)
	if err != nil {
		log.Printf("Error checking enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if existing != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled")
	}

	enrollment, err := store.CreateEnrollment(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled")
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// GetMyEnrollments lists the caller's enrollments, each with its course
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	store := storage.New(database.Database.Db)

	enrollments, err := store.GetUserEnrollments(userID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(enrollments)
}

// UpdateProgress merges one {lessonId: completed} pair into the
// enrollment's progress map. Only the enrollment's owner may mutate it;
// existing keys are preserved, the given key overwritten.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	enrollmentID := c.Locals("enrollmentID").(uint)
	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressUpdate)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	store := storage.New(database.Database.Db)

	enrollment, err := store.GetEnrollmentById(enrollmentID)
	if err != nil {
		log.Printf("Error fetching enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if enrollment == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found")
	}
	if enrollment.UserID != userID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Not authorized")
	}

	progress := enrollment.Progress.Data()
	if progress == nil {
		progress = models.ProgressMap{}
	}
	progress[strconv.Itoa(*reqData.LessonID)] = *reqData.Completed

	updated, err := store.UpdateEnrollmentProgress(enrollmentID, progress)
	if err != nil {
		log.Printf("Error updating progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
