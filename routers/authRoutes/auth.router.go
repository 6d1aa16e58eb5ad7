package authRoutes

import (
	controllers "github.com/zalakuldip2011/edemy-sub001/controllers/auth"
	"github.com/zalakuldip2011/edemy-sub001/middleware"
	validators "github.com/zalakuldip2011/edemy-sub001/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	authGroup.Post("/change-password", middleware.JWTMiddleware, validators.ChangePassword(), controllers.ChangePassword)
}
