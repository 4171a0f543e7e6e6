package reminder

import (
	"time"

	domain "github.com/psicoagenda/psico-scheduler/internal/domain/appointment"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

// Window delimita a seleção de lembretes: sessões de "amanhã". Com o
// look-ahead padrão de 24h a janela é [now+24h, now+48h).
func Window(now time.Time, lookahead time.Duration) (time.Time, time.Time) {
	start := now.Add(lookahead)
	return start, start.Add(24 * time.Hour)
}

// Due é a seleção pura: dado um snapshot de agendamentos e uma janela,
// devolve os que precisam de lembrete — agendados ou confirmados, sem
// lembrete enviado, com início dentro da janela. Determinística e
// independente do mecanismo de timing do agendador.
func Due(apps []models.Appointment, windowStart, windowEnd time.Time) []models.Appointment {
	var out []models.Appointment
	for _, ap := range apps {
		if ap.ReminderSent {
			continue
		}
		switch domain.Status(ap.Status) {
		case domain.StatusScheduled, domain.StatusConfirmed:
		default:
			continue
		}
		if ap.StartTime.Before(windowStart) || !ap.StartTime.Before(windowEnd) {
			continue
		}
		out = append(out, ap)
	}
	return out
}
