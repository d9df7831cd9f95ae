package studentController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// activeEnrollment fetches the student's enrollment for a course
func activeEnrollment(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Enroll enrolls the student in a published course. Free courses enroll
// directly; paid courses need a PAID order (checkout enrolls automatically,
// this endpoint covers retries).
func Enroll(c *fiber.Ctx) error {
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
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?",
		courseID, courseModels.StatusPublished, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if enrollment, err := activeEnrollment(db, userId, course.ID); err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled!", enrollment)
	}

	var orderID *uint
	if course.EffectivePrice() > 0 {
		var order models.Order
		if err := db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
			userId, course.ID, models.OrderStatusPaid, false).First(&order).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Course must be purchased first!", nil)
		}
		orderID = &order.ID
	}

	enrollment, err := CreateEnrollment(db, userId, &course, orderID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

// CreateEnrollment inserts the enrollment row, bumps the course counter and
// fires the notifications. Shared with the checkout flow.
func CreateEnrollment(db *gorm.DB, userID uint, course *courseModels.Course, orderID *uint) (*courseModels.Enrollment, error) {
	var totalLessons int64
	db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&totalLessons)

	enrollment := courseModels.Enrollment{
		UserID:       userID,
		CourseID:     course.ID,
		OrderID:      orderID,
		TotalLessons: int(totalLessons),
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		Update("enrollment_count", gorm.Expr("enrollment_count + 1")).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	tx.Commit()

	go func(courseName string) {
		var user models.User
		if err := db.Select("name, email").First(&user, userID).Error; err == nil && user.Email != "" {
			utils.SendEnrollmentEmail(user.Email, user.Name, courseName)
		}
		utils.Notify(userID, models.NotificationEnrollment, "Enrolled in "+courseName,
			"You now have full access to the course.", map[string]interface{}{"course_id": course.ID})
	}(course.Title)

	return &enrollment, nil
}

// MyEnrollments lists the student's enrollments with progress
func MyEnrollments(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrolled struct {
		courseModels.Enrollment
		Course courseModels.Course `json:"course"`
	}
	out := make([]enrolled, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		db.First(&course, e.CourseID)
		out[i] = enrolled{Enrollment: e, Course: course}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": out,
	})
}

// GetLesson returns a lesson's content, gated by enrollment unless the
// lesson is a free preview. Quiz answers are stripped.
func GetLesson(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !lesson.FreePreview {
		if _, err := activeEnrollment(db, userId, lesson.CourseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course to access this lesson!", nil)
		}
	}

	response := fiber.Map{"lesson": lesson}

	if lesson.Type == courseModels.LessonTypeQuiz {
		response["questions"] = quizQuestionsForStudent(db, lesson.ID)
	}
	if lesson.Type == courseModels.LessonTypeVideo {
		var subtitles []courseModels.Subtitle
		db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).Find(&subtitles)
		response["subtitles"] = subtitles
	}

	var attachments []courseModels.Attachment
	db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).Find(&attachments)
	response["attachments"] = attachments

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", response)
}

// CompleteLesson marks a lesson done and recomputes enrollment progress
func CompleteLesson(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	enrollment, err := activeEnrollment(db, userId, lesson.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course first!", nil)
	}

	var existing courseModels.LessonCompletion
	if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?",
		userId, lessonID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson already completed!", enrollment)
	}

	completion := courseModels.LessonCompletion{
		UserID:   userId,
		CourseID: lesson.CourseID,
		LessonID: lesson.ID,
	}

	tx := db.Begin()
	if err := tx.Create(&completion).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record completion!", nil)
	}

	enrollment.CompletedLessons++
	if enrollment.TotalLessons > 0 {
		enrollment.Progress = float64(enrollment.CompletedLessons) / float64(enrollment.TotalLessons) * 100
	}
	enrollment.Status = courseModels.EnrollmentInProgress
	if enrollment.CompletedLessons >= enrollment.TotalLessons && enrollment.TotalLessons > 0 {
		enrollment.Status = courseModels.EnrollmentCompleted
		enrollment.Progress = 100
		completedAt := time.Now()
		enrollment.CompletedAt = &completedAt
	}
	if err := tx.Save(enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", enrollment)
}

// RequestCertificate opens a certificate request once the course is done
func RequestCertificate(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	enrollment, err := activeEnrollment(db, userId, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course first!", nil)
	}
	if enrollment.Status != courseModels.EnrollmentCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Complete the course before requesting a certificate!", nil)
	}

	var existing courseModels.CertificateRequest
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userId, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate request already exists!", existing)
	}

	request := courseModels.CertificateRequest{
		UserID:       userId,
		CourseID:     uint(courseID),
		EnrollmentID: enrollment.ID,
		RequestedAt:  time.Now(),
	}
	if err := db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate requested!", request)
}
