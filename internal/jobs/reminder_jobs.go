package jobs

import (
	"context"

	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
)

// SendPendingDecisionReminders emails every owner who has booking requests
// still waiting for a decision. Read-only: the booking state machine is
// only ever advanced by an explicit owner decision.
func (jr *JobRunner) SendPendingDecisionReminders() {
	jr.runWithRecovery("SendPendingDecisionReminders", func() {
		ctx := context.Background()

		query := `
			SELECT u.email, count(*)
			FROM bookings b
			JOIN items i ON i.id = b.item_id
			JOIN users u ON u.id = i.owner_id
			WHERE b.status = 'WAITING'
			GROUP BY u.email
		`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query pending bookings", "error", err)
			return
		}
		defer rows.Close()

		reminded := 0
		for rows.Next() {
			var email string
			var pending int
			if err := rows.Scan(&email, &pending); err != nil {
				logger.Error("Failed to scan pending booking row", "error", err)
				continue
			}
			if err := jr.emailSvc.SendPendingDecisionReminder(ctx, email, pending); err != nil {
				logger.Error("Failed to send pending decision reminder", "email", email, "error", err)
				continue
			}
			reminded++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating pending bookings", "error", err)
			return
		}

		logger.Info("Sent pending decision reminders", "owners", reminded)
	})
}

// RefreshBookingMetrics updates the pending-bookings gauge.
func (jr *JobRunner) RefreshBookingMetrics() {
	jr.runWithRecovery("RefreshBookingMetrics", func() {
		ctx := context.Background()

		var pending int
		query := `SELECT count(*) FROM bookings WHERE status = 'WAITING'`
		if err := jr.db.QueryRowContext(ctx, query).Scan(&pending); err != nil {
			logger.Error("Failed to count pending bookings", "error", err)
			return
		}

		metrics.PendingBookings.Set(float64(pending))
		logger.Debug("Refreshed booking metrics", "pending", pending)
	})
}
