package main

import (
	"log"

	"lms/config"
	"lms/database"
	adminRoutes "lms/routers/adminRoutes"
	authRoutes "lms/routers/authRoutes"
	catalogRoutes "lms/routers/catalogRoutes"
	checkoutRoutes "lms/routers/checkoutRoutes"
	instructorRoutes "lms/routers/instructorRoutes"
	studentRoutes "lms/routers/studentRoutes"
	userRoutes "lms/routers/userRoutes"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: 512 * 1024 * 1024, // lesson videos come through multipart uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media and the public folder
	app.Static("/", "./public")
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	checkoutRoutes.SetupCheckoutRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	userRoutes.SetupUserRoutes(app)

	utils.InitializePayoutScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
