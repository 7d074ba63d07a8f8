package courseValidator

import (
	"fmt"
	"strconv"
	"strings"

	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

func isValidDifficulty(d string) bool {
	return d == models.DifficultyBeginner ||
		d == models.DifficultyIntermediate ||
		d == models.DifficultyAdvanced
}

// LessonInput is one lesson of a course-creation request
type LessonInput struct {
	Title       string `json:"title"`
	ContentHTML string `json:"contentHtml"`
	VideoURL    string `json:"videoUrl"`
	Order       int    `json:"order"`
}

// CreateCourseRequest is the validated course-creation body
type CreateCourseRequest struct {
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description"`
	Price        string        `json:"price"`
	Category     string        `json:"category"`
	Difficulty   string        `json:"difficulty"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Lessons      []LessonInput `json:"lessons"`
}

// UpdateCourseRequest carries optional scalar course fields; absent
// fields are left untouched
type UpdateCourseRequest struct {
	Title        *string `json:"title"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
	Category     *string `json:"category"`
	Difficulty   *string `json:"difficulty"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// CreateCourse validates the admin course-creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, "title", "Title is required")
		}
		if strings.TrimSpace(reqData.Slug) == "" {
			return middleware.ValidationErrorResponse(c, "slug", "Slug is required")
		}
		if strings.TrimSpace(reqData.Description) == "" {
			return middleware.ValidationErrorResponse(c, "description", "Description is required")
		}
		if strings.TrimSpace(reqData.Price) == "" {
			return middleware.ValidationErrorResponse(c, "price", "Price is required")
		}
		if _, err := strconv.ParseFloat(reqData.Price, 64); err != nil {
			return middleware.ValidationErrorResponse(c, "price", "Price must be a decimal number")
		}
		if strings.TrimSpace(reqData.Category) == "" {
			return middleware.ValidationErrorResponse(c, "category", "Category is required")
		}
		if !isValidDifficulty(reqData.Difficulty) {
			return middleware.ValidationErrorResponse(c, "difficulty", "Difficulty must be Beginner, Intermediate or Advanced")
		}
		for i, lesson := range reqData.Lessons {
			if strings.TrimSpace(lesson.Title) == "" {
				return middleware.ValidationErrorResponse(c, fmt.Sprintf("lessons[%d].title", i), "Lesson title is required")
			}
			if strings.TrimSpace(lesson.ContentHTML) == "" {
				return middleware.ValidationErrorResponse(c, fmt.Sprintf("lessons[%d].contentHtml", i), "Lesson content is required")
			}
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the partial-update body and stashes a column
// update map for the storage layer
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		updates := make(map[string]interface{})
		if reqData.Title != nil {
			if strings.TrimSpace(*reqData.Title) == "" {
				return middleware.ValidationErrorResponse(c, "title", "Title cannot be empty")
			}
			updates["title"] = *reqData.Title
		}
		if reqData.Slug != nil {
			if strings.TrimSpace(*reqData.Slug) == "" {
				return middleware.ValidationErrorResponse(c, "slug", "Slug cannot be empty")
			}
			updates["slug"] = *reqData.Slug
		}
		if reqData.Description != nil {
			updates["description"] = *reqData.Description
		}
		if reqData.Price != nil {
			if _, err := strconv.ParseFloat(*reqData.Price, 64); err != nil {
				return middleware.ValidationErrorResponse(c, "price", "Price must be a decimal number")
			}
			updates["price"] = *reqData.Price
		}
		if reqData.Category != nil {
			updates["category"] = *reqData.Category
		}
		if reqData.Difficulty != nil {
			if !isValidDifficulty(*reqData.Difficulty) {
				return middleware.ValidationErrorResponse(c, "difficulty", "Difficulty must be Beginner, Intermediate or Advanced")
			}
			updates["difficulty"] = *reqData.Difficulty
		}
		if reqData.ThumbnailURL != nil {
			updates["thumbnail_url"] = *reqData.ThumbnailURL
		}

		if len(updates) == 0 {
			return middleware.ValidationErrorResponse(c, "body", "No fields to update")
		}

		c.Locals("validatedCourseUpdates", updates)
		return c.Next()
	}
}

// CourseIdParam validates the numeric :id path parameter for admin mutations
func CourseIdParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || courseID <= 0 {
			return middleware.ValidationErrorResponse(c, "id", "Invalid course id")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
