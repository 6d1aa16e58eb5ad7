package courseRoutes

import (
	controllers "github.com/zalakuldip2011/edemy-sub001/controllers/course"
	"github.com/zalakuldip2011/edemy-sub001/middleware"
	validators "github.com/zalakuldip2011/edemy-sub001/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and learner-facing routes
func SetupCourseRoutes(app *fiber.App) {
	// Public catalog (no auth)
	catalogGroup := app.Group("/catalog")
	catalogGroup.Get("/search", validators.CatalogSearch(), controllers.SearchCatalog)
	catalogGroup.Get("/course/:id", validators.CourseID(), controllers.GetPublicCourse)

	// Learner routes
	userGroup := app.Group("/course")
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	userGroup.Get("/:id/content", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseContent)
	userGroup.Post("/:id/section/:section/lecture/:lecture/complete", middleware.JWTMiddleware, validators.LectureRef(), controllers.MarkLectureComplete)
	userGroup.Get("/:id/section/:section/lecture/:lecture/playback", middleware.JWTMiddleware, validators.LectureRef(), controllers.GetLecturePlayback)

	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
