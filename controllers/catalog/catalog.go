package catalogController

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// ListCourses returns published courses with pagination and filters
func ListCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 12
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("status = ? AND is_deleted = ?", courseModels.StatusPublished, false)

	if categoryID := c.QueryInt("category_id"); categoryID > 0 {
		db = db.Where("category_id = ?", categoryID)
	}
	if levelID := c.QueryInt("level_id"); levelID > 0 {
		db = db.Where("level_id = ?", levelID)
	}
	if language := c.Query("language"); language != "" {
		db = db.Where("language = ?", language)
	}
	if search := c.Query("search"); search != "" {
		db = db.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourse returns a published course with its curriculum outline. Lesson
// bodies stay hidden; only free-preview lessons are marked consumable.
func GetCourse(c *fiber.Ctx) error {
	slug := c.Params("slug")

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("slug = ? AND status = ? AND is_deleted = ?",
		slug, courseModels.StatusPublished, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var sections []courseModels.Section
	db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&sections)

	type lessonOutline struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		Type        string `json:"type"`
		OrderIndex  int    `json:"order_index"`
		FreePreview bool   `json:"free_preview"`
		Duration    int    `json:"duration"`
	}
	type sectionOutline struct {
		courseModels.Section
		Lessons []lessonOutline `json:"lessons"`
	}

	outline := make([]sectionOutline, len(sections))
	for i, sec := range sections {
		var lessons []courseModels.Lesson
		db.Where("section_id = ? AND is_deleted = ?", sec.ID, false).
			Order("order_index asc").Find(&lessons)

		items := make([]lessonOutline, len(lessons))
		for j, les := range lessons {
			items[j] = lessonOutline{
				ID:          les.ID,
				Title:       les.Title,
				Type:        les.Type,
				OrderIndex:  les.OrderIndex,
				FreePreview: les.FreePreview,
				Duration:    les.Duration,
			}
		}
		outline[i] = sectionOutline{Section: sec, Lessons: items}
	}

	var reviews []courseModels.Review
	db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("created_at desc").Limit(10).Find(&reviews)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"sections": outline,
		"reviews":  reviews,
	})
}

// ListCategories returns all catalog categories
func ListCategories(c *fiber.Ctx) error {
	var categories []courseModels.Category
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
	})
}

// ListLevels returns all catalog levels
func ListLevels(c *fiber.Ctx) error {
	var levels []courseModels.Level
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("id asc").Find(&levels).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch levels!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Levels fetched successfully!", fiber.Map{
		"levels": levels,
	})
}
