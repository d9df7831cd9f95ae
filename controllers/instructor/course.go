package instructorController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// MyCourses lists the instructor's own courses in every status
func MyCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// CourseStats returns enrollment and earnings figures for one course
func CourseStats(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?",
		courseID, userId, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&enrollments)

	var completed int64
	db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND status = ? AND is_deleted = ?",
			courseID, courseModels.EnrollmentCompleted, false).Count(&completed)

	var netEarnings float64
	db.Model(&models.Earning{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(SUM(net_amount), 0)").Scan(&netEarnings)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"course_id":    course.ID,
		"title":        course.Title,
		"status":       course.Status,
		"enrollments":  enrollments,
		"completed":    completed,
		"net_earnings": netEarnings,
		"rating":       course.Rating,
		"rating_count": course.RatingCount,
	})
}

// MyEarnings lists the instructor's earnings and payout history
func MyEarnings(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var earnings []models.Earning
	if err := db.Where("instructor_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").Limit(100).Find(&earnings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch earnings!", nil)
	}

	var payouts []models.Payout
	db.Where("instructor_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").Find(&payouts)

	var pending float64
	db.Model(&models.Earning{}).
		Where("instructor_id = ? AND status = ? AND is_deleted = ?",
			userId, models.EarningStatusPending, false).
		Select("COALESCE(SUM(net_amount), 0)").Scan(&pending)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched successfully!", fiber.Map{
		"earnings":        earnings,
		"payouts":         payouts,
		"pending_balance": pending,
	})
}
