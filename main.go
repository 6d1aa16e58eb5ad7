package main

import (
	"log"

	"github.com/zalakuldip2011/edemy-sub001/config"
	courseControllers "github.com/zalakuldip2011/edemy-sub001/controllers/course"
	"github.com/zalakuldip2011/edemy-sub001/database"
	authRoutes "github.com/zalakuldip2011/edemy-sub001/routers/authRoutes"
	courseRoutes "github.com/zalakuldip2011/edemy-sub001/routers/courseRoutes"
	"github.com/zalakuldip2011/edemy-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	courseControllers.InitCourseServices(database.Database.Db)
	utils.InitializePromoScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupInstructorCourseRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
