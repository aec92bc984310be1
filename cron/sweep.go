package cron

import (
	"context"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// noShowGrace is how long past its end an appointment may sit in confirmed
// before the sweep writes it off.
const noShowGrace = 30 * time.Minute

// InitNoShowSweep starts the hourly job that marks confirmed appointments
// whose interval has long passed as no-shows, so they stop occupying history
// reports as open bookings.
func InitNoShowSweep(appts appointmentRepo.AppointmentRepository) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := appts.MarkNoShows(ctx, time.Now().Add(-noShowGrace))
		if err != nil {
			logger.Warn("no-show sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("no-show sweep completed", zap.Int64("marked", n))
		}
	})
	c.Start()
	logger.Info("no-show sweep scheduler started")
	return c
}
