package utils

import (
	"log"
	"time"

	"github.com/zalakuldip2011/edemy-sub001/database"
	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"

	"github.com/robfig/cron/v3"
)

// InitializePromoScheduler sets up the daily promo expiry job
func InitializePromoScheduler() {
	log.Println("[PROMO-SCHEDULER] Initializing promo scheduler...")

	c := cron.New()

	// Run daily at midnight to switch off ended promos
	c.AddFunc("0 0 * * *", func() {
		log.Println("[PROMO-SCHEDULER] Running daily promo expiry check...")
		ExpirePromos()
	})

	c.Start()
	log.Println("[PROMO-SCHEDULER] Promo scheduler started - runs daily at midnight")
}

// ExpirePromos disables every enabled promo whose end date has passed.
func ExpirePromos() {
	db := database.Database.Db
	now := time.Now()

	// Coarse SQL filter on the JSONB promo column; the end date itself is
	// checked in Go after decoding.
	var candidates []courseModels.Course
	if err := db.
		Where("is_deleted = ? AND promo->>'enabled' = 'true'", false).
		Find(&candidates).Error; err != nil {
		log.Printf("[PROMO-SCHEDULER] Error fetching promo candidates: %v", err)
		return
	}

	expired := 0
	for _, course := range candidates {
		if course.Promo.EndDate == nil || course.Promo.EndDate.After(now) {
			continue
		}
		course.Promo.Enabled = false
		if err := db.Save(&course).Error; err != nil {
			log.Printf("[PROMO-SCHEDULER] Error disabling promo for course %d: %v", course.ID, err)
			continue
		}
		expired++
	}

	log.Printf("[PROMO-SCHEDULER] Checked %d promos, disabled %d expired", len(candidates), expired)
}
