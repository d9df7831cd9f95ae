package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EarningStatusPending = "PENDING"
	EarningStatusBatched = "BATCHED"
	EarningStatusPaid    = "PAID"

	PayoutStatusPending   = "PENDING"
	PayoutStatusCompleted = "COMPLETED"
	PayoutStatusFailed    = "FAILED"
)

// Earning is one instructor credit from one paid order, net of platform fee
type Earning struct {
	gorm.Model
	InstructorID uint    `json:"instructor_id" gorm:"index;not null"`
	OrderID      uint    `json:"order_id" gorm:"index;not null"`
	CourseID     uint    `json:"course_id" gorm:"index;not null"`
	GrossAmount  float64 `json:"gross_amount" gorm:"not null"`
	FeeAmount    float64 `json:"fee_amount" gorm:"not null"`
	NetAmount    float64 `json:"net_amount" gorm:"not null"`
	Status       string  `json:"status" gorm:"default:'PENDING'"` // PENDING, BATCHED, PAID
	PayoutID     *uint   `json:"payout_id" gorm:"index"`
	IsDeleted    bool    `gorm:"default:false"`
}

// Payout batches an instructor's pending earnings for one period
type Payout struct {
	gorm.Model
	InstructorID uint       `json:"instructor_id" gorm:"index;not null"`
	PeriodStart  time.Time  `json:"period_start"`
	PeriodEnd    time.Time  `json:"period_end"`
	Amount       float64    `json:"amount" gorm:"not null"`
	EarningCount int        `json:"earning_count"`
	Status       string     `json:"status" gorm:"default:'PENDING'"` // PENDING, COMPLETED, FAILED
	CompletedAt  *time.Time `json:"completed_at"`
	CompletedBy  *uint      `json:"completed_by"`
	Notes        string     `json:"notes"`
	IsDeleted    bool       `gorm:"default:false"`
}
