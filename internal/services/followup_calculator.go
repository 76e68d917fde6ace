package services

import (
	"time"

	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
)

// FollowUpStatus categorizes a scheduled follow-up relative to "now".
type FollowUpStatus string

const (
	FollowUpOverdue  FollowUpStatus = "overdue"
	FollowUpToday    FollowUpStatus = "today"
	FollowUpUpcoming FollowUpStatus = "upcoming"
	FollowUpNone     FollowUpStatus = "none"
)

// FollowUpCalculator derives the next follow-up instant from a lead's stage.
// Calculation is deterministic: all times flow from the base instant the
// caller supplies.
type FollowUpCalculator struct {
	log logger.Logger
}

func NewFollowUpCalculator(log logger.Logger) *FollowUpCalculator {
	return &FollowUpCalculator{log: log}
}

// NextFollowUp returns the follow-up instant for a lead entering stage, or
// nil for closed stages. demoDate only matters for DEMO_SCHEDULED, where the
// follow-up lands one day before the demo's start of day.
func (c *FollowUpCalculator) NextFollowUp(stage models.Stage, base time.Time, demoDate *time.Time) *time.Time {
	var t time.Time
	switch stage {
	case models.StageInquiry:
		t = base.Add(24 * time.Hour)
	case models.StageQualification:
		t = base.Add(48 * time.Hour)
	case models.StageOpportunity:
		t = base.AddDate(0, 0, 3)
	case models.StageDemoScheduled:
		if demoDate != nil {
			t = startOfDay(*demoDate).AddDate(0, 0, -1)
		} else {
			t = base.AddDate(0, 0, 1)
		}
	case models.StageDemoComplete:
		t = base.AddDate(0, 0, 1)
	case models.StageProposalSent:
		t = base.AddDate(0, 0, 3)
	case models.StageNegotiation:
		t = base.AddDate(0, 0, 2)
	case models.StageNurture30Day:
		t = base.AddDate(0, 0, 30)
	case models.StageNurture90Day:
		t = base.AddDate(0, 0, 90)
	case models.StageClosedWon, models.StageClosedLost:
		// Closed deals never get a follow-up.
		return nil
	default:
		c.log.Warn("unknown stage, defaulting follow-up to +1 day", "stage", string(stage))
		t = base.AddDate(0, 0, 1)
	}
	return &t
}

// ClassifyFollowUp maps a follow-up instant to its urgency bucket relative
// to now. Pure and deterministic.
func ClassifyFollowUp(followUp *time.Time, now time.Time) FollowUpStatus {
	if followUp == nil {
		return FollowUpNone
	}

	todayStart := startOfDay(now)
	if followUp.Before(todayStart) {
		return FollowUpOverdue
	}
	if startOfDay(*followUp).Equal(todayStart) {
		return FollowUpToday
	}
	return FollowUpUpcoming
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
