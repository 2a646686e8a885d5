package services

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
)

// DoAutoDatabaseCleanup prunes rows that were soft deleted more than thirty
// days ago. Runs on a timer and from the admin panel.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL").
			Where("deleted_at <= ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto cleanup...")
		}
		count += tx.RowsAffected
	}

	log.Info().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
