package authController

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/storage"
	authValidator "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new account and returns a bearer token.
// The role is always "user" no matter what the request body carries.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	store := storage.New(database.Database.Db)

	// Check if email already exists, before hashing
	existing, err := store.GetUserByEmail(reqData.Email)
	if err != nil {
		log.Printf("Error checking existing user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if existing != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if err := store.CreateUser(&newUser); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := middleware.GenerateJWT(&newUser)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  newUser,
	})
}

// Login verifies credentials and returns a bearer token. Unknown email
// and wrong password produce the same error so user existence never leaks.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	store := storage.New(database.Database.Db)

	user, err := store.GetUserByEmail(reqData.Email)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if user == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := middleware.GenerateJWT(user)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user's profile
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	store := storage.New(database.Database.Db)

	user, err := store.GetUser(userID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if user == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
