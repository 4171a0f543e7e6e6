package appointment

import (
	"time"

	"github.com/psicoagenda/psico-scheduler/internal/models"
)

// WithinAvailability verifica se o intervalo proposto cai inteiro em
// uma das janelas do profissional no dia da semana do início. Janela
// vazia significa meio período de folga.
func WithinAvailability(p *models.Provider, start time.Time, durationMin int) bool {
	if !p.WorksOn(start.Weekday()) {
		return false
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)

	return inWindow(p.MorningStart, p.MorningEnd, start, end) ||
		inWindow(p.AfternoonStart, p.AfternoonEnd, start, end)
}

func inWindow(fromHM, toHM string, start, end time.Time) bool {
	if fromHM == "" || toHM == "" {
		return false
	}

	winStart, ok1 := atClock(fromHM, start)
	winEnd, ok2 := atClock(toHM, start)
	if !ok1 || !ok2 {
		return false
	}

	return !start.Before(winStart) && !end.After(winEnd)
}

// atClock projeta um "15:04" no dia e timezone do início proposto.
func atClock(hm string, day time.Time) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// Windows lista as janelas válidas do profissional para um dia,
// projetadas no timezone de date. Usado pela listagem de horários
// livres.
func Windows(p *models.Provider, date time.Time) [][2]time.Time {
	if !p.WorksOn(date.Weekday()) {
		return nil
	}

	var out [][2]time.Time
	for _, w := range [][2]string{
		{p.MorningStart, p.MorningEnd},
		{p.AfternoonStart, p.AfternoonEnd},
	} {
		if w[0] == "" || w[1] == "" {
			continue
		}
		from, ok1 := atClock(w[0], date)
		to, ok2 := atClock(w[1], date)
		if !ok1 || !ok2 || !from.Before(to) {
			continue
		}
		out = append(out, [2]time.Time{from, to})
	}
	return out
}
