package checkoutController

import (
	"encoding/json"
	"time"

	"lms/config"
	studentController "lms/controllers/student"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateOrder opens a pending order for a paid course. Free courses skip
// checkout entirely and enroll on the spot.
func CreateOrder(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedOrder").(*struct {
		CourseID uint   `json:"course_id"`
		Gateway  string `json:"gateway"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?",
		reqData.CourseID, courseModels.StatusPublished, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.InstructorID == userId {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You cannot buy your own course!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userId, course.ID, false).First(&enrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	price := course.EffectivePrice()
	if price == 0 {
		if _, err := studentController.CreateEnrollment(db, userId, &course, nil); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in free course!", fiber.Map{
			"free": true,
		})
	}

	order := models.Order{
		UserID:    userId,
		CourseID:  course.ID,
		Reference: uuid.NewString(),
		Amount:    price,
		Gateway:   reqData.Gateway,
	}
	if err := db.Create(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created!", fiber.Map{
		"order_id":  order.ID,
		"reference": order.Reference,
		"amount":    order.Amount,
		"currency":  order.Currency,
		"gateway":   order.Gateway,
	})
}

// MomoReturn handles the MoMo redirect after payment. resultCode 0 means
// the payment went through.
func MomoReturn(c *fiber.Ctx) error {
	reference := c.Query("orderId")
	resultCode := c.Query("resultCode")
	transID := c.Query("transId")

	if reference == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing order reference!", nil)
	}

	if resultCode != "0" {
		failOrder(reference, models.GatewayMomo, c.Queries())
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment was not completed!", fiber.Map{
			"reference":   reference,
			"result_code": resultCode,
		})
	}

	return settleOrder(c, reference, models.GatewayMomo, transID, c.Queries())
}

// VnpayReturn handles the VNPay redirect. vnp_ResponseCode 00 means the
// payment went through.
func VnpayReturn(c *fiber.Ctx) error {
	reference := c.Query("vnp_TxnRef")
	responseCode := c.Query("vnp_ResponseCode")
	transID := c.Query("vnp_TransactionNo")

	if reference == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing order reference!", nil)
	}

	if responseCode != "00" {
		failOrder(reference, models.GatewayVnpay, c.Queries())
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment was not completed!", fiber.Map{
			"reference":     reference,
			"response_code": responseCode,
		})
	}

	return settleOrder(c, reference, models.GatewayVnpay, transID, c.Queries())
}

// settleOrder marks the order paid, enrolls the student and credits the
// instructor. Safe to call twice: an already-paid order short-circuits.
func settleOrder(c *fiber.Ctx, reference, gateway, transID string, params map[string]string) error {
	db := database.Database.Db

	var order models.Order
	if err := db.Where("reference = ? AND is_deleted = ?", reference, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.Status == models.OrderStatusPaid {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already processed!", order)
	}
	if order.Status != models.OrderStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order is not payable!", order)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", order.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	rawParams, _ := json.Marshal(params)
	paidAt := time.Now()

	feePercent := config.AppConfig.PlatformFeePercent
	fee := order.Amount * feePercent / 100
	net := order.Amount - fee

	tx := db.Begin()

	order.Status = models.OrderStatusPaid
	order.Gateway = gateway
	order.GatewayTxnID = transID
	order.GatewayResponse = rawParams
	order.PaidAt = &paidAt
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	earning := models.Earning{
		InstructorID: course.InstructorID,
		OrderID:      order.ID,
		CourseID:     course.ID,
		GrossAmount:  order.Amount,
		FeeAmount:    fee,
		NetAmount:    net,
	}
	if err := tx.Create(&earning).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to credit instructor!", nil)
	}

	tx.Commit()

	if _, err := studentController.CreateEnrollment(db, order.UserID, &course, &order.ID); err != nil {
		// Paid but not enrolled; the student can retry via the enroll endpoint
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment processed, enrollment pending retry!", order)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful!", fiber.Map{
		"order":     order,
		"course_id": course.ID,
	})
}

// failOrder records a failed gateway return on a still-pending order
func failOrder(reference, gateway string, params map[string]string) {
	db := database.Database.Db

	var order models.Order
	if err := db.Where("reference = ? AND status = ? AND is_deleted = ?",
		reference, models.OrderStatusPending, false).First(&order).Error; err != nil {
		return
	}

	rawParams, _ := json.Marshal(params)
	order.Status = models.OrderStatusFailed
	order.Gateway = gateway
	order.GatewayResponse = rawParams
	db.Save(&order)
}

// MyOrders lists the student's orders
func MyOrders(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.Order
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": orders,
	})
}
