package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/psicoagenda/psico-scheduler/internal/models"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return ts
}

func TestGuardWindowBlocks(t *testing.T) {
	policy := ConflictPolicy{GuardMinutes: 50}

	existing := models.Appointment{
		ID:          1,
		StartTime:   at(t, "2024-06-10 09:00"),
		DurationMin: 50,
		Status:      string(StatusScheduled),
	}

	tests := []struct {
		name     string
		proposed string
		blocks   bool
	}{
		// o existente [09:00, 09:50) ainda está em andamento às 09:30
		{"overlapping start", "2024-06-10 09:30", true},
		{"same start", "2024-06-10 09:00", true},
		// começa antes, mas o existente inicia dentro da janela de
		// guarda de 50min do início proposto
		{"proposed before existing within guard", "2024-06-10 08:30", true},
		{"existing already finished", "2024-06-10 09:50", false},
		{"well after", "2024-06-10 11:00", false},
		{"previous day", "2024-06-09 09:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Blocks(&existing, at(t, tt.proposed), 50)
			assert.Equal(t, tt.blocks, got)
		})
	}
}

func TestGuardWindowIsAsymmetric(t *testing.T) {
	policy := ConflictPolicy{GuardMinutes: 50}

	// existente começa 60min depois do início proposto: a janela de
	// guarda não alcança, mesmo que uma sessão proposta de 90min fosse
	// invadir o slot. O modo overlap captura esse caso.
	existing := models.Appointment{
		ID:          1,
		StartTime:   at(t, "2024-06-10 10:00"),
		DurationMin: 50,
		Status:      string(StatusScheduled),
	}

	proposed := at(t, "2024-06-10 09:00")

	assert.False(t, policy.Blocks(&existing, proposed, 90))

	overlap := ConflictPolicy{GuardMinutes: 50, Overlap: true}
	assert.True(t, overlap.Blocks(&existing, proposed, 90))
	assert.False(t, overlap.Blocks(&existing, proposed, 50))
}

func TestCancelledNeverBlocks(t *testing.T) {
	policy := ConflictPolicy{GuardMinutes: 50}

	existing := models.Appointment{
		ID:          1,
		StartTime:   at(t, "2024-06-10 09:00"),
		DurationMin: 50,
		Status:      string(StatusCancelled),
	}

	assert.False(t, policy.Blocks(&existing, at(t, "2024-06-10 09:00"), 50))
}

func TestRescheduledOldRecordStillBlocks(t *testing.T) {
	// só cancelado libera o slot; o registro antigo de um
	// reagendamento continua bloqueando o horário original
	policy := ConflictPolicy{GuardMinutes: 50}

	existing := models.Appointment{
		ID:          1,
		StartTime:   at(t, "2024-06-10 09:00"),
		DurationMin: 50,
		Status:      string(StatusRescheduled),
	}

	assert.True(t, policy.Blocks(&existing, at(t, "2024-06-10 09:00"), 50))
}

func TestFindConflictExcludesOwnSlot(t *testing.T) {
	policy := ConflictPolicy{GuardMinutes: 50}

	existing := []models.Appointment{
		{
			ID:          7,
			StartTime:   at(t, "2024-06-10 09:00"),
			DurationMin: 50,
			Status:      string(StatusScheduled),
		},
	}

	// reagendamento para o mesmo horário ignora o próprio registro
	assert.Nil(t, policy.FindConflict(existing, at(t, "2024-06-10 09:00"), 50, 7))
	assert.NotNil(t, policy.FindConflict(existing, at(t, "2024-06-10 09:00"), 50, 0))
}

func TestCandidateWindowCoversGuard(t *testing.T) {
	policy := ConflictPolicy{GuardMinutes: 50}

	start := at(t, "2024-06-10 09:00")
	from, to := policy.CandidateWindow(start)

	// um existente iniciando exatamente em start+guard ainda bloqueia,
	// então precisa estar dentro da janela de busca
	edge := start.Add(50 * time.Minute)
	assert.True(t, !edge.Before(from) && edge.Before(to))
}
