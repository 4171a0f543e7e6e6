package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	h, m := parseClockTime("09:00")
	assert.Equal(t, 9, h)
	assert.Zero(t, m)

	h, m = parseClockTime("18:45")
	assert.Equal(t, 18, h)
	assert.Equal(t, 45, m)

	// valor quebrado cai no horário padrão de despacho
	h, m = parseClockTime("meio-dia")
	assert.Equal(t, 9, h)
	assert.Zero(t, m)
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 50, cfg.GuardWindowMinutes)
	assert.Equal(t, ConflictModeGuard, cfg.ConflictMode)
	assert.Equal(t, 10, cfg.RewardThresholdPoints)
	assert.Equal(t, 24*time.Hour, cfg.ModifyLeadTime)
	assert.Equal(t, 50, cfg.DefaultDurationMin)

	assert.Equal(t, 9, cfg.ReminderHour)
	assert.Zero(t, cfg.ReminderMinute)
	assert.Equal(t, time.Hour, cfg.ReminderBackoff)
	assert.Equal(t, 30*time.Second, cfg.SendTimeout)
	assert.Equal(t, 24*time.Hour, cfg.ReminderLookahead)

	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GUARD_WINDOW_MINUTES", "30")
	t.Setenv("CONFLICT_MODE", "overlap")
	t.Setenv("REMINDER_TIME", "07:30")
	t.Setenv("MODIFY_LEAD_TIME_HOURS", "48")

	cfg := Load()

	assert.Equal(t, 30, cfg.GuardWindowMinutes)
	assert.Equal(t, ConflictModeOverlap, cfg.ConflictMode)
	assert.Equal(t, 7, cfg.ReminderHour)
	assert.Equal(t, 30, cfg.ReminderMinute)
	assert.Equal(t, 48*time.Hour, cfg.ModifyLeadTime)
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("GUARD_WINDOW_MINUTES", "fifty")

	cfg := Load()
	assert.Equal(t, 50, cfg.GuardWindowMinutes)
}
