package controllers

import (
	"log"
	"strconv"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/storage"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists every course with its lessons; optional category
// and search query parameters narrow the result
func GetAllCourses(c *fiber.Ctx) error {
	store := storage.New(database.Database.Db)

	courses, err := store.GetCourses(storage.CourseFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(courses)
}

// GetCourse resolves the :id parameter as a numeric id when it parses
// as one, and as a slug otherwise
func GetCourse(c *fiber.Ctx) error {
	store := storage.New(database.Database.Db)
	idOrSlug := c.Params("id")

	var course *models.Course
	var err error
	if id, convErr := strconv.Atoi(idOrSlug); convErr == nil {
		course, err = store.GetCourse(uint(id))
	} else {
		course, err = store.GetCourseBySlug(idOrSlug)
	}
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if course == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

// AdminCreateCourse inserts a course and its lessons atomically
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	course := models.Course{
		Title:        reqData.Title,
		Slug:         reqData.Slug,
		Description:  reqData.Description,
		Price:        reqData.Price,
		Category:     reqData.Category,
		Difficulty:   reqData.Difficulty,
		ThumbnailURL: reqData.ThumbnailURL,
	}

	lessons := make([]models.Lesson, len(reqData.Lessons))
	for i, lesson := range reqData.Lessons {
		lessons[i] = models.Lesson{
			Title:       lesson.Title,
			ContentHTML: lesson.ContentHTML,
			VideoURL:    lesson.VideoURL,
			Order:       lesson.Order,
		}
	}

	store := storage.New(database.Database.Db)
	if err := store.CreateCourse(&course, lessons); err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// AdminUpdateCourse applies a partial update of scalar course fields
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	updates, ok := c.Locals("validatedCourseUpdates").(map[string]interface{})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	store := storage.New(database.Database.Db)

	course, err := store.UpdateCourse(courseID, updates)
	if err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if course == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

// AdminDeleteCourse removes the course with its lessons and enrollments
func AdminDeleteCourse(c *fiber.Ctx) error {
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

	if err := store.DeleteCourse(courseID); err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
