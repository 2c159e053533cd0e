package utils

import (
	"log"

	"github.com/robfig/cron/v3"

	"tap/config"
	"tap/database"
	"tap/models"
)

// InitializeReviewScheduler sets up the daily pending-review digest.
func InitializeReviewScheduler() {
	log.Println("[REVIEW-SCHEDULER] Initializing review scheduler...")

	c := cron.New()

	// Run daily at 8 AM to remind admins about the review queue
	c.AddFunc("0 8 * * *", func() {
		log.Println("[REVIEW-SCHEDULER] Running daily pending-review check...")
		ProcessPendingReviewDigest()
	})

	c.Start()
	log.Println("[REVIEW-SCHEDULER] Review scheduler started - runs daily at 8 AM")
}

// ProcessPendingReviewDigest counts pending mappings and emails the digest.
func ProcessPendingReviewDigest() {
	db := database.Database.Db

	var pendingCount int64
	if err := db.Model(&models.ArticulationMapping{}).
		Where("status = ?", models.MappingStatusPending).
		Count(&pendingCount).Error; err != nil {
		log.Printf("[REVIEW-SCHEDULER] Error counting pending mappings: %v", err)
		return
	}

	if pendingCount == 0 {
		log.Println("[REVIEW-SCHEDULER] Review queue is empty")
		return
	}

	log.Printf("[REVIEW-SCHEDULER] %d mappings pending review, sending digest", pendingCount)
	SendPendingReviewDigest(config.AppConfig.AdminEmail, pendingCount)
}
