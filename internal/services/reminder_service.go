package services

import (
	"context"

	"github.com/loydmilligan/leadoff/internal/logger"
)

// ReminderService pushes the daily follow-up digest to the configured
// channels. It reuses the follow-up view, so the digest always matches what
// the UI shows.
type ReminderService struct {
	leads     *LeadService
	email     EmailService
	telegram  *TelegramService
	recipient string
	log       logger.Logger
}

func NewReminderService(leads *LeadService, email EmailService, telegram *TelegramService, recipient string, log logger.Logger) *ReminderService {
	return &ReminderService{
		leads:     leads,
		email:     email,
		telegram:  telegram,
		recipient: recipient,
		log:       log,
	}
}

// SendDailyDigest compiles and delivers the digest. An empty digest is not
// sent. Delivery failures on one channel don't block the other.
func (s *ReminderService) SendDailyDigest(ctx context.Context) error {
	buckets, err := s.leads.GetFollowUpLeads(ctx)
	if err != nil {
		return err
	}
	if len(buckets.Overdue) == 0 && len(buckets.Today) == 0 {
		s.log.Debug("follow-up digest empty, skipping send")
		return nil
	}

	if s.email != nil && s.recipient != "" {
		if err := s.email.SendFollowUpDigest(s.recipient, buckets.Overdue, buckets.Today); err != nil {
			s.log.Error("digest email failed", "error", err)
		}
	}
	if s.telegram != nil {
		if err := s.telegram.SendFollowUpDigest(buckets.Overdue, buckets.Today); err != nil {
			s.log.Error("digest telegram push failed", "error", err)
		}
	}

	s.log.Info("follow-up digest sent",
		"overdue", len(buckets.Overdue), "today", len(buckets.Today))
	return nil
}
