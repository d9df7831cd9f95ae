package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusFailed    = "FAILED"
	OrderStatusCancelled = "CANCELLED"

	GatewayMomo  = "MOMO"
	GatewayVnpay = "VNPAY"
	GatewayFree  = "FREE"
)

// Order is a single-course checkout. Reference is the id we hand to the
// payment gateway and match against on the return URL.
type Order struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	CourseID        uint           `json:"course_id" gorm:"index;not null"`
	Reference       string         `json:"reference" gorm:"unique;not null"`
	Amount          float64        `json:"amount" gorm:"not null"`
	Currency        string         `json:"currency" gorm:"default:'VND'"`
	Status          string         `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, FAILED, CANCELLED
	Gateway         string         `json:"gateway"`                         // MOMO, VNPAY, FREE
	GatewayTxnID    string         `json:"gateway_txn_id"`
	GatewayResponse datatypes.JSON `json:"gateway_response"`
	PaidAt          *time.Time     `json:"paid_at"`
	IsDeleted       bool           `gorm:"default:false"`
}
