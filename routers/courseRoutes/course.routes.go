package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and the admin course CRUD
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog is public; :id resolves as numeric id or slug
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", controllers.GetCourse)

	// Admin CRUD
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, validators.CreateCourse(), controllers.AdminCreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, validators.CourseIdParam(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, validators.CourseIdParam(), controllers.AdminDeleteCourse)
}

// SetupEnrollmentRoutes sets up enrollment and progress-tracking routes
func SetupEnrollmentRoutes(app *fiber.App) {
	app.Post("/api/enroll", middleware.JWTMiddleware, validators.Enroll(), controllers.EnrollInCourse)

	enrollGroup := app.Group("/api/enrollments")
	enrollGroup.Get("/me", middleware.JWTMiddleware, controllers.GetMyEnrollments)
	enrollGroup.Put("/:id/progress", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateProgress)
}
