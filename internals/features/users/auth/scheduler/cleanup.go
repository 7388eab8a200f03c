package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"kelasku_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler prunes aged blacklist rows and expired
// refresh tokens once a day.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] pruning token_blacklist / refresh_tokens...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklistModel
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] list expired blacklist rows: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] delete blacklist rows: %v", err)
				} else {
					log.Printf("[CLEANUP] %d blacklist rows removed", len(expiredTokens))
				}
			}

			if err := db.
				Where("expires_at < now()").
				Delete(&model.RefreshTokenModel{}).Error; err != nil {
				log.Printf("[CLEANUP ERROR] delete expired refresh tokens: %v", err)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
