package adminController

import (
	"fmt"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListCertificateRequests lists pending certificate requests, oldest first
func ListCertificateRequests(c *fiber.Ctx) error {
	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", courseModels.CertRequestPending, false).
		Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate requests fetched successfully!", fiber.Map{
		"requests": requests,
	})
}

// ApproveCertificateRequest issues the certificate and emails the student
func ApproveCertificateRequest(c *fiber.Ctx) error {
	adminId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	db := database.Database.Db

	var request courseModels.CertificateRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}
	if request.Status != courseModels.CertRequestPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request already resolved!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", request.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	issuedAt := time.Now()
	certificate := courseModels.Certificate{
		UserID:            request.UserID,
		CourseID:          request.CourseID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          issuedAt,
	}
	certificate.CertificateURL = fmt.Sprintf("%s/certificates/%s",
		config.AppConfig.AppBaseURL, certificate.CertificateNumber)

	request.Status = courseModels.CertRequestApproved
	request.ApprovedAt = &issuedAt
	request.ApprovedBy = &adminId

	tx := db.Begin()
	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
	}
	tx.Commit()

	go func() {
		var student models.User
		if err := db.Select("name, email").First(&student, request.UserID).Error; err == nil && student.Email != "" {
			utils.SendCertificateEmail(student.Email, student.Name, course.Title, certificate.CertificateNumber)
		}
		utils.Notify(request.UserID, models.NotificationCertificate,
			"Certificate issued", "Your certificate for "+course.Title+" is ready.",
			map[string]interface{}{"certificate_number": certificate.CertificateNumber})
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued!", certificate)
}

// RejectCertificateRequest declines a request with a reason
func RejectCertificateRequest(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	reqData, ok := c.Locals("validatedRejection").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var request courseModels.CertificateRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}
	if request.Status != courseModels.CertRequestPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request already resolved!", nil)
	}

	request.Status = courseModels.CertRequestRejected
	request.RejectionReason = reqData.Reason
	if err := db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected!", request)
}
