package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"
	validators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and notification routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", controllers.Profile)
	userGroup.Put("/profile", validators.UpdateProfile(), controllers.UpdateProfile)
	userGroup.Post("/profile/image", controllers.UploadProfileImage)

	userGroup.Get("/notifications", controllers.ListNotifications)
	userGroup.Post("/notifications/:id/read", controllers.MarkNotificationRead)
	userGroup.Post("/notifications/read-all", controllers.MarkAllNotificationsRead)
}
