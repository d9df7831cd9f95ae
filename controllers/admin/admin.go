package adminController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// ListPendingCourses lists courses waiting for review, oldest first
func ListPendingCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", courseModels.StatusPending, false).
		Order("created_at asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// ApproveCourse publishes a pending course and notifies the instructor
func ApproveCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.Status != courseModels.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is not pending review!", nil)
	}

	course.Status = courseModels.StatusPublished
	course.RejectionReason = ""
	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve course!", nil)
	}

	go func() {
		var instructor models.User
		if err := db.Select("name, email").First(&instructor, course.InstructorID).Error; err == nil && instructor.Email != "" {
			utils.SendCoursePublishedEmail(instructor.Email, instructor.Name, course.Title)
		}
		utils.Notify(course.InstructorID, models.NotificationCoursePublished,
			course.Title+" is live", "Your course passed review and is now published.",
			map[string]interface{}{"course_id": course.ID})
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course approved and published!", course)
}

// RejectCourse sends a pending course back to the instructor with a reason
func RejectCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedRejection").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.Status != courseModels.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is not pending review!", nil)
	}

	course.Status = courseModels.StatusRejected
	course.RejectionReason = reqData.Reason
	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject course!", nil)
	}

	go func() {
		var instructor models.User
		if err := db.Select("name, email").First(&instructor, course.InstructorID).Error; err == nil && instructor.Email != "" {
			utils.SendCourseRejectedEmail(instructor.Email, instructor.Name, course.Title, reqData.Reason)
		}
		utils.Notify(course.InstructorID, models.NotificationCourseRejected,
			course.Title+" was rejected", reqData.Reason,
			map[string]interface{}{"course_id": course.ID})
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course rejected!", course)
}

// ListUsers pages through the user base with an optional role filter
func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := database.Database.Db
	query := db.Model(&models.User{}).Where("is_deleted = ?", false)

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// BlockUser toggles the manual block flag on an account
func BlockUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	if user.Role == models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Cannot block an admin account!", nil)
	}

	user.IsBlocked = !user.IsBlocked
	user.BlockedUntil = nil
	user.FailedLoginAttempts = 0
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	message := "User unblocked!"
	if user.IsBlocked {
		message = "User blocked!"
	}
	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, user)
}

// DashboardStats aggregates the headline numbers for the admin home screen
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var students, instructors int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&students)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleInstructor, false).Count(&instructors)

	var published, pending int64
	db.Model(&courseModels.Course{}).
		Where("status = ? AND is_deleted = ?", courseModels.StatusPublished, false).Count(&published)
	db.Model(&courseModels.Course{}).
		Where("status = ? AND is_deleted = ?", courseModels.StatusPending, false).Count(&pending)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&enrollments)

	monthStart := time.Now().AddDate(0, 0, -time.Now().Day()+1)
	var revenue, monthRevenue float64
	db.Model(&models.Order{}).
		Where("status = ? AND is_deleted = ?", models.OrderStatusPaid, false).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)
	db.Model(&models.Order{}).
		Where("status = ? AND created_at >= ? AND is_deleted = ?", models.OrderStatusPaid, monthStart, false).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)

	var pendingCerts int64
	db.Model(&courseModels.CertificateRequest{}).
		Where("status = ? AND is_deleted = ?", courseModels.CertRequestPending, false).Count(&pendingCerts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"students":              students,
		"instructors":           instructors,
		"published_courses":     published,
		"pending_courses":       pending,
		"enrollments":           enrollments,
		"total_revenue":         revenue,
		"month_revenue":         monthRevenue,
		"pending_cert_requests": pendingCerts,
	})
}
