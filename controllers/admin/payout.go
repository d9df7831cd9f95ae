package adminController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// ListPayouts pages through payout batches with an optional status filter
func ListPayouts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := database.Database.Db
	query := db.Model(&models.Payout{}).Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var payouts []models.Payout
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&payouts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payouts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payouts fetched successfully!", fiber.Map{
		"payouts": payouts,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// CompletePayout marks a pending payout as transferred and settles its earnings
func CompletePayout(c *fiber.Ctx) error {
	adminId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	payoutID, err := c.ParamsInt("id")
	if err != nil || payoutID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payout id!", nil)
	}

	reqData, _ := c.Locals("validatedPayout").(*struct {
		Notes string `json:"notes"`
	})

	db := database.Database.Db

	var payout models.Payout
	if err := db.Where("id = ? AND is_deleted = ?", payoutID, false).First(&payout).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payout not found!", nil)
	}
	if payout.Status != models.PayoutStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payout is not pending!", nil)
	}

	completedAt := time.Now()
	payout.Status = models.PayoutStatusCompleted
	payout.CompletedAt = &completedAt
	payout.CompletedBy = &adminId
	if reqData != nil {
		payout.Notes = reqData.Notes
	}

	tx := db.Begin()
	if err := tx.Save(&payout).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payout!", nil)
	}
	if err := tx.Model(&models.Earning{}).
		Where("payout_id = ?", payout.ID).
		Update("status", models.EarningStatusPaid).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to settle earnings!", nil)
	}
	tx.Commit()

	go func() {
		var instructor models.User
		if err := db.Select("name, email").First(&instructor, payout.InstructorID).Error; err == nil && instructor.Email != "" {
			utils.SendPayoutCompletedEmail(instructor.Email, instructor.Name, payout.Amount)
		}
		utils.Notify(payout.InstructorID, models.NotificationPayoutCompleted,
			"Payout completed", "Your earnings batch has been transferred.",
			map[string]interface{}{"payout_id": payout.ID, "amount": payout.Amount})
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payout completed!", payout)
}

// RunPayoutBatch triggers the monthly batching job outside its schedule
func RunPayoutBatch(c *fiber.Ctx) error {
	go utils.ProcessMonthlyPayouts()
	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Payout batching started!", nil)
}
