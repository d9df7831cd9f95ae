package authRoutes

import (
	controllers "lms/controllers/auth"
	"lms/middleware"
	validators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)

	authGroup.Post("/otp/send", middleware.JWTMiddleware, controllers.SendVerificationOTP)
	authGroup.Post("/otp/verify", middleware.JWTMiddleware, validators.VerifyOTP(), controllers.VerifyEmail)
}
