package studentController

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview creates or updates the student's review and recomputes the
// course rating aggregate.
func SubmitReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if _, err := activeEnrollment(db, userId, uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course first!", nil)
	}

	var review courseModels.Review
	isNew := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userId, courseID, false).First(&review).Error != nil

	review.UserID = userId
	review.CourseID = uint(courseID)
	review.Rating = reqData.Rating
	review.Comment = reqData.Comment

	tx := db.Begin()

	var saveErr error
	if isNew {
		saveErr = tx.Create(&review).Error
	} else {
		saveErr = tx.Save(&review).Error
	}
	if saveErr != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
	}

	var count int64
	var average float64
	tx.Model(&courseModels.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&count)
	tx.Model(&courseModels.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(AVG(rating), 0)").Scan(&average)

	if err := tx.Model(&courseModels.Course{}).Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"rating":       average,
			"rating_count": count,
		}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course rating!", nil)
	}

	tx.Commit()

	status := fiber.StatusOK
	message := "Review updated!"
	if isNew {
		status = fiber.StatusCreated
		message = "Review submitted!"
	}
	return middleware.JsonResponse(c, status, true, message, review)
}

// MyCertificates lists the student's issued certificates
func MyCertificates(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
	})
}
