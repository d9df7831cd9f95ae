package studentRoutes

import (
	controllers "lms/controllers/student"
	"lms/middleware"
	validators "lms/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up enrollment and the learning player
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/learn", middleware.JWTMiddleware)

	studentGroup.Post("/courses/:id/enroll", controllers.Enroll)
	studentGroup.Get("/enrollments", controllers.MyEnrollments)

	studentGroup.Get("/lessons/:id", controllers.GetLesson)
	studentGroup.Post("/lessons/:id/complete", controllers.CompleteLesson)

	studentGroup.Post("/lessons/:id/quiz", validators.SubmitQuiz(), controllers.SubmitQuiz)
	studentGroup.Get("/lessons/:id/attempts", controllers.MyQuizAttempts)

	studentGroup.Post("/courses/:id/review", validators.SubmitReview(), controllers.SubmitReview)

	studentGroup.Post("/courses/:id/certificate/request", controllers.RequestCertificate)
	studentGroup.Get("/certificates", controllers.MyCertificates)
}
