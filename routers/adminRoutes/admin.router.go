package adminRoutes

import (
	controllers "lms/controllers/admin"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the back-office routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	// Course moderation
	adminGroup.Get("/courses/pending", controllers.ListPendingCourses)
	adminGroup.Post("/courses/:id/approve", controllers.ApproveCourse)
	adminGroup.Post("/courses/:id/reject", validators.Rejection(), controllers.RejectCourse)

	// Users
	adminGroup.Get("/users", controllers.ListUsers)
	adminGroup.Post("/users/:id/block", controllers.BlockUser)

	// Payouts
	adminGroup.Get("/payouts", controllers.ListPayouts)
	adminGroup.Post("/payouts/:id/complete", validators.CompletePayout(), controllers.CompletePayout)
	adminGroup.Post("/payouts/run", controllers.RunPayoutBatch)

	// Certificates
	adminGroup.Get("/certificates/requests", controllers.ListCertificateRequests)
	adminGroup.Post("/certificates/requests/:id/approve", controllers.ApproveCertificateRequest)
	adminGroup.Post("/certificates/requests/:id/reject", validators.Rejection(), controllers.RejectCertificateRequest)

	adminGroup.Get("/stats", controllers.DashboardStats)
}
