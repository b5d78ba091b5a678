package worker

import (
	"time"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/sirupsen/logrus"
)

// StartMessageSweeper launches a background goroutine that deletes expired
// chat messages. Reads already filter on expires_at, so the sweeper only
// reclaims storage; visibility does not depend on it running.
func StartMessageSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			sweepExpiredMessages()
		}
	}()
}

func sweepExpiredMessages() {
	now := time.Now()

	friendResult := database.DB.
		Where("expires_at <= ?", now).
		Delete(&models.FriendMessage{})
	if friendResult.Error != nil {
		logrus.WithError(friendResult.Error).Error("failed to sweep friend messages")
	}

	teamResult := database.DB.
		Where("expires_at <= ?", now).
		Delete(&models.TeamMessage{})
	if teamResult.Error != nil {
		logrus.WithError(teamResult.Error).Error("failed to sweep team messages")
	}

	swept := friendResult.RowsAffected + teamResult.RowsAffected
	if swept > 0 {
		logrus.WithField("count", swept).Info("swept expired messages")
	}
}
