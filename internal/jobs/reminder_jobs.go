package jobs

import (
	"context"

	"ayudame3d-backend/internal/logger"
)

// SendPendingOrderReminders re-notifies helpers of orders that have
// been sitting in the pending state for too long.
func (jr *JobRunner) SendPendingOrderReminders() {
	jr.runWithRecovery("SendPendingOrderReminders", func() {
		ctx := context.Background()

		days := jr.config.Scheduler.PendingReminderDays
		count, err := jr.services.Order.SendPendingReminders(ctx, days)
		if err != nil {
			logger.Error("Failed to send pending order reminders", "error", err)
			return
		}

		logger.Info("Pending order reminders sent", "count", count, "older_than_days", days)
	})
}
