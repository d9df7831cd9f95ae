package instructorRoutes

import (
	controllers "lms/controllers/instructor"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up the authoring wizard and instructor dashboard
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor",
		middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))

	// Draft authoring sessions
	draftGroup := instructorGroup.Group("/drafts")
	draftGroup.Post("/", controllers.OpenDraft)
	draftGroup.Get("/:token", controllers.GetDraft)
	draftGroup.Delete("/:token", controllers.DiscardDraft)

	draftGroup.Put("/:token/form", validators.SetCourseForm(), controllers.SetCourseForm)
	draftGroup.Post("/:token/thumbnail", controllers.UploadThumbnail)

	draftGroup.Post("/:token/sections", validators.AddSection(), controllers.AddSection)
	draftGroup.Put("/:token/sections/:sectionId", validators.UpdateSection(), controllers.UpdateSection)
	draftGroup.Delete("/:token/sections/:sectionId", controllers.DeleteSection)

	draftGroup.Post("/:token/lessons", validators.AddLesson(), controllers.AddLesson)
	draftGroup.Put("/:token/lessons/:lessonId", validators.UpdateLesson(), controllers.UpdateLesson)
	draftGroup.Delete("/:token/lessons/:lessonId", controllers.DeleteLesson)
	draftGroup.Post("/:token/lessons/:lessonId/video", controllers.UploadLessonVideo)
	draftGroup.Post("/:token/lessons/:lessonId/attachments", controllers.UploadLessonAttachment)

	// The build turns the staged draft into a real course
	draftGroup.Post("/:token/build", controllers.BuildDraft)

	// Dashboard
	instructorGroup.Get("/courses", controllers.MyCourses)
	instructorGroup.Get("/courses/:id/stats", controllers.CourseStats)
	instructorGroup.Get("/earnings", controllers.MyEarnings)
}
