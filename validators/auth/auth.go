package authValidator

import (
	"regexp"
	"strings"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// SignupRequest is the validated signup body. A role field in the
// request is deliberately not parsed: new accounts are always plain users.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the validated login body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, "name", "Name is required")
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			return middleware.ValidationErrorResponse(c, "email", "A valid email is required")
		}
		if len(reqData.Password) < 6 {
			return middleware.ValidationErrorResponse(c, "password", "Password must be at least 6 characters long")
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Email == "" {
			return middleware.ValidationErrorResponse(c, "email", "Email is required")
		}
		if reqData.Password == "" {
			return middleware.ValidationErrorResponse(c, "password", "Password is required")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
