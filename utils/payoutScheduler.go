package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logPayout logs payout scheduler events with timestamp
func logPayout(message string) {
	log.Printf("[PAYOUT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializePayoutScheduler batches instructor earnings into payouts on the
// first day of every month
func InitializePayoutScheduler() {
	logPayout("Initializing payout scheduler...")

	c := cron.New()

	c.AddFunc("0 2 1 * *", func() {
		logPayout("Running monthly payout batching...")
		ProcessMonthlyPayouts()
	})

	c.Start()
	logPayout("Payout scheduler started - runs on the 1st of each month at 02:00")
}

// ProcessMonthlyPayouts collects every instructor's pending earnings from
// the previous month into a single PENDING payout record
func ProcessMonthlyPayouts() {
	db := database.Database.Db

	periodEnd := now.With(time.Now()).BeginningOfMonth()
	periodStart := now.With(periodEnd.AddDate(0, 0, -1)).BeginningOfMonth()

	var earnings []models.Earning
	if err := db.
		Where("status = ? AND is_deleted = false", models.EarningStatusPending).
		Where("created_at < ?", periodEnd).
		Order("instructor_id asc").
		Find(&earnings).Error; err != nil {
		logPayout("Error fetching pending earnings: " + err.Error())
		return
	}

	if len(earnings) == 0 {
		logPayout("No pending earnings to batch")
		return
	}

	byInstructor := make(map[uint][]models.Earning)
	for _, e := range earnings {
		byInstructor[e.InstructorID] = append(byInstructor[e.InstructorID], e)
	}

	batched := 0
	for instructorID, list := range byInstructor {
		total := 0.0
		ids := make([]uint, 0, len(list))
		for _, e := range list {
			total += e.NetAmount
			ids = append(ids, e.ID)
		}

		tx := db.Begin()

		payout := models.Payout{
			InstructorID: instructorID,
			PeriodStart:  periodStart,
			PeriodEnd:    periodEnd,
			Amount:       total,
			EarningCount: len(list),
		}
		if err := tx.Create(&payout).Error; err != nil {
			tx.Rollback()
			logPayout("Error creating payout: " + err.Error())
			continue
		}

		if err := tx.Model(&models.Earning{}).Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"status":    models.EarningStatusBatched,
				"payout_id": payout.ID,
			}).Error; err != nil {
			tx.Rollback()
			logPayout("Error batching earnings: " + err.Error())
			continue
		}

		tx.Commit()
		batched++
	}

	logPayout("Payout batching complete")
	log.Printf("[PAYOUT-SCHEDULER] Created %d payouts from %d earnings", batched, len(earnings))
}
