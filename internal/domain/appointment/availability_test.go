package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psicoagenda/psico-scheduler/internal/models"
)

func weekdayProvider() *models.Provider {
	return &models.Provider{
		WorksMonday:    true,
		WorksTuesday:   true,
		WorksWednesday: true,
		WorksThursday:  true,
		WorksFriday:    true,

		MorningStart:   "08:00",
		MorningEnd:     "12:00",
		AfternoonStart: "14:00",
		AfternoonEnd:   "18:00",
	}
}

func TestWithinAvailability(t *testing.T) {
	p := weekdayProvider()

	tests := []struct {
		name  string
		start string
		dur   int
		want  bool
	}{
		// 2024-06-10 é segunda-feira
		{"mid morning", "2024-06-10 09:00", 50, true},
		{"window start", "2024-06-10 08:00", 50, true},
		{"ends exactly at window end", "2024-06-10 11:10", 50, true},
		{"spills past morning end", "2024-06-10 11:30", 50, false},
		{"lunch gap", "2024-06-10 13:00", 50, false},
		{"afternoon", "2024-06-10 14:00", 50, true},
		{"after hours", "2024-06-10 18:00", 50, false},
		{"before hours", "2024-06-10 07:00", 50, false},
		// 2024-06-09 é domingo
		{"day off", "2024-06-09 09:00", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinAvailability(p, at(t, tt.start), tt.dur)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinAvailabilityEmptyWindow(t *testing.T) {
	p := weekdayProvider()
	p.MorningStart = ""
	p.MorningEnd = ""

	// manhã de folga: só a janela da tarde atende
	assert.False(t, WithinAvailability(p, at(t, "2024-06-10 09:00"), 50))
	assert.True(t, WithinAvailability(p, at(t, "2024-06-10 14:00"), 50))
}

func TestWindows(t *testing.T) {
	p := weekdayProvider()

	wins := Windows(p, at(t, "2024-06-10 00:00"))
	assert.Len(t, wins, 2)
	assert.Equal(t, "08:00", wins[0][0].Format("15:04"))
	assert.Equal(t, "12:00", wins[0][1].Format("15:04"))
	assert.Equal(t, "14:00", wins[1][0].Format("15:04"))
	assert.Equal(t, "18:00", wins[1][1].Format("15:04"))

	assert.Nil(t, Windows(p, at(t, "2024-06-09 00:00")))

	p.AfternoonStart = ""
	p.AfternoonEnd = ""
	assert.Len(t, Windows(p, at(t, "2024-06-10 00:00")), 1)
}
