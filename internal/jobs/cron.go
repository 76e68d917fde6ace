package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/services"
)

// Scheduler runs the recurring background jobs, currently just the daily
// follow-up digest.
type Scheduler struct {
	cron      *cron.Cron
	reminders *services.ReminderService
	schedule  string
	log       logger.Logger
}

func NewScheduler(reminders *services.ReminderService, schedule string, log logger.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		reminders: reminders,
		schedule:  schedule,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.reminders.SendDailyDigest(context.Background()); err != nil {
			s.log.Error("daily digest job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler started", "digest_schedule", s.schedule)
	return nil
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
