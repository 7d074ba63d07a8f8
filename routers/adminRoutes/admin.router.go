package adminRoutes

import (
	adminControllers "learnhub/controllers/admin"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	app.Get("/api/users", middleware.JWTMiddleware, middleware.AdminMiddleware, adminControllers.GetAllUsers)
	app.Get("/api/reports", middleware.JWTMiddleware, middleware.AdminMiddleware, adminControllers.GetReports)
}
