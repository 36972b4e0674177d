package cron

import (
	"context"
	"log"
	"time"

	"github.com/sahilchouksey/testprep-api/utils/auth"
)

// CleanupRevokedTokens removes blacklist entries whose tokens have
// expired anyway; the middleware no longer consults them.
func (m *CronManager) CleanupRevokedTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	blacklist := auth.NewBlacklistService(m.db)
	removed, err := blacklist.CleanupExpiredTokens(ctx)
	if err != nil {
		log.Printf("[CRON] Failed to clean token blacklist: %v", err)
		return
	}

	if removed > 0 {
		log.Printf("[CRON] Removed %d expired blacklist entries", removed)
	}
}
