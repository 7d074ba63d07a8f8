package courseValidator

import (
	"strconv"
	"strings"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProgressUpdate is one {lessonId, completed} pair merged into an
// enrollment's progress map
type ProgressUpdate struct {
	LessonID  *int  `json:"lessonId"`
	Completed *bool `json:"completed"`
}

// Enroll validates the enrollment-creation body
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID *int `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.CourseID == nil || *reqData.CourseID <= 0 {
			return middleware.ValidationErrorResponse(c, "courseId", "A valid courseId is required")
		}

		c.Locals("courseID", uint(*reqData.CourseID))
		return c.Next()
	}
}

// UpdateProgress validates the :id path parameter and the progress body
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || enrollmentID <= 0 {
			return middleware.ValidationErrorResponse(c, "id", "Invalid enrollment id")
		}

		reqData := new(ProgressUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.LessonID == nil || *reqData.LessonID <= 0 {
			return middleware.ValidationErrorResponse(c, "lessonId", "A valid lessonId is required")
		}
		if reqData.Completed == nil {
			return middleware.ValidationErrorResponse(c, "completed", "Completed is required")
		}

		c.Locals("enrollmentID", uint(enrollmentID))
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
