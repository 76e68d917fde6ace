package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
)

func TestNextFollowUpOffsets(t *testing.T) {
	calc := NewFollowUpCalculator(logger.New("error"))
	base := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		stage models.Stage
		want  time.Time
	}{
		{models.StageInquiry, base.Add(24 * time.Hour)},
		{models.StageQualification, base.Add(48 * time.Hour)},
		{models.StageOpportunity, base.AddDate(0, 0, 3)},
		{models.StageDemoComplete, base.AddDate(0, 0, 1)},
		{models.StageProposalSent, base.AddDate(0, 0, 3)},
		{models.StageNegotiation, base.AddDate(0, 0, 2)},
		{models.StageNurture30Day, base.AddDate(0, 0, 30)},
		{models.StageNurture90Day, base.AddDate(0, 0, 90)},
	}
	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			got := calc.NextFollowUp(tt.stage, base, nil)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v, want %v", got, tt.want)
			assert.True(t, got.After(base))
		})
	}
}

func TestNextFollowUpClosedStages(t *testing.T) {
	calc := NewFollowUpCalculator(logger.New("error"))
	base := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	assert.Nil(t, calc.NextFollowUp(models.StageClosedWon, base, nil))
	assert.Nil(t, calc.NextFollowUp(models.StageClosedLost, base, nil))
}

func TestNextFollowUpDemoScheduled(t *testing.T) {
	calc := NewFollowUpCalculator(logger.New("error"))
	base := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("with demo date lands one day before its start of day", func(t *testing.T) {
		demo := time.Date(2026, 3, 20, 15, 45, 0, 0, time.UTC)
		got := calc.NextFollowUp(models.StageDemoScheduled, base, &demo)
		require.NotNil(t, got)
		want := time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC)
		assert.True(t, want.Equal(*got), "got %v, want %v", got, want)
	})

	t.Run("without demo date defaults to next day", func(t *testing.T) {
		got := calc.NextFollowUp(models.StageDemoScheduled, base, nil)
		require.NotNil(t, got)
		assert.True(t, base.AddDate(0, 0, 1).Equal(*got))
	})
}

func TestNextFollowUpUnknownStage(t *testing.T) {
	calc := NewFollowUpCalculator(logger.New("error"))
	base := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	got := calc.NextFollowUp(models.Stage("SOMETHING_NEW"), base, nil)
	require.NotNil(t, got)
	assert.True(t, base.AddDate(0, 0, 1).Equal(*got))
}

func TestClassifyFollowUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		followUp *time.Time
		want     FollowUpStatus
	}{
		{"nil is none", nil, FollowUpNone},
		{"yesterday is overdue", timePtr(now.AddDate(0, 0, -1)), FollowUpOverdue},
		{"just before midnight today is overdue", timePtr(time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC)), FollowUpOverdue},
		{"earlier today is today", timePtr(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)), FollowUpToday},
		{"later today is today", timePtr(time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)), FollowUpToday},
		{"tomorrow is upcoming", timePtr(now.AddDate(0, 0, 1)), FollowUpUpcoming},
		{"next month is upcoming", timePtr(now.AddDate(0, 1, 0)), FollowUpUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFollowUp(tt.followUp, now))
			// pure: same inputs, same answer
			assert.Equal(t, tt.want, ClassifyFollowUp(tt.followUp, now))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
