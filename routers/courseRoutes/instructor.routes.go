package courseRoutes

import (
	controllers "github.com/zalakuldip2011/edemy-sub001/controllers/course"
	"github.com/zalakuldip2011/edemy-sub001/middleware"
	validators "github.com/zalakuldip2011/edemy-sub001/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorCourseRoutes sets up all instructor course authoring routes
func SetupInstructorCourseRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor/course")

	// Course authoring
	instructorGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	instructorGroup.Get("/list", middleware.JWTMiddleware, controllers.GetMyCourses)
	instructorGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetMyCourse)
	instructorGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.UpdateCourse)
	instructorGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Lifecycle transitions are a separate operation family from content
	// updates; they are never reachable through the update endpoint.
	instructorGroup.Post("/:id/publish", middleware.JWTMiddleware, validators.CourseID(), controllers.PublishCourse)
	instructorGroup.Post("/:id/unpublish", middleware.JWTMiddleware, validators.CourseID(), controllers.UnpublishCourse)
}
