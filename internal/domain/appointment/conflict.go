package appointment

import (
	"time"

	"github.com/psicoagenda/psico-scheduler/internal/models"
)

// ConflictPolicy decide se um agendamento existente bloqueia um início
// proposto.
//
// O modo padrão (guard) reproduz o comportamento histórico do sistema:
// o teste é ancorado no início do agendamento existente com uma janela
// fixa de guarda, e não uma sobreposição simétrica de intervalos —
// qualquer existente que comece dentro da janela de guarda do início
// proposto, ou que ainda esteja em andamento nele, bloqueia. O modo
// overlap oferece a sobreposição real como alternativa de configuração.
type ConflictPolicy struct {
	GuardMinutes int
	Overlap      bool
}

func (p ConflictPolicy) Blocks(existing *models.Appointment, start time.Time, durationMin int) bool {
	if Status(existing.Status) == StatusCancelled {
		return false
	}

	if p.Overlap {
		end := start.Add(time.Duration(durationMin) * time.Minute)
		return existing.StartTime.Before(end) && existing.EndTime().After(start)
	}

	guard := time.Duration(p.GuardMinutes) * time.Minute
	return !existing.StartTime.After(start.Add(guard)) &&
		existing.EndTime().After(start)
}

// FindConflict devolve o primeiro existente que bloqueia o intervalo
// proposto. excludeID permite que um reagendamento ignore o próprio
// slot anterior.
func (p ConflictPolicy) FindConflict(
	existing []models.Appointment,
	start time.Time,
	durationMin int,
	excludeID uint,
) *models.Appointment {

	for i := range existing {
		ap := &existing[i]
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if p.Blocks(ap, start, durationMin) {
			return ap
		}
	}
	return nil
}

// CandidateWindow delimita a busca de candidatos a conflito no
// repositório: existentes iniciados até 24h antes ainda podem estar em
// andamento, e a janela de guarda se estende após o início proposto.
func (p ConflictPolicy) CandidateWindow(start time.Time) (time.Time, time.Time) {
	return start.Add(-24 * time.Hour),
		start.Add(time.Duration(p.GuardMinutes)*time.Minute + time.Minute)
}
