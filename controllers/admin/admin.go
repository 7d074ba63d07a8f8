package adminController

import (
	"log"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/storage"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers lists every registered user, newest first
func GetAllUsers(c *fiber.Ctx) error {
	store := storage.New(database.Database.Db)

	users, err := store.GetAllUsers()
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// GetReports returns total counts of users, courses and enrollments
func GetReports(c *fiber.Ctx) error {
	store := storage.New(database.Database.Db)

	stats, err := store.GetStats()
	if err != nil {
		log.Printf("Error fetching stats: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
