package catalogRoutes

import (
	controllers "lms/controllers/catalog"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up the public browse routes. No auth needed,
// only published courses are visible.
func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	catalogGroup.Get("/courses", validators.CourseList(), controllers.ListCourses)
	catalogGroup.Get("/courses/:slug", controllers.GetCourse)
	catalogGroup.Get("/categories", controllers.ListCategories)
	catalogGroup.Get("/levels", controllers.ListLevels)
}
