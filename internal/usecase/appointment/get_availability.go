package appointment

import (
	"context"
	"time"

	domain "github.com/psicoagenda/psico-scheduler/internal/domain/appointment"
	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/timezone"
)

type AvailabilityInput struct {
	ProviderID  uint
	Date        string // "2006-01-02", no timezone do profissional
	DurationMin int
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type GetAvailability struct {
	repo  domain.Repository
	rules Rules
}

func NewGetAvailability(repo domain.Repository, rules Rules) *GetAvailability {
	return &GetAvailability{repo: repo, rules: rules}
}

// Execute lista os horários livres do dia: percorre as janelas do
// profissional em passos do tamanho da sessão e descarta os inícios
// que o resolvedor de conflitos bloquearia.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]TimeSlot, error) {

	provider, err := uc.repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(provider.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = uc.rules.defaultDuration()
	}

	windows := domain.Windows(provider, date)
	if len(windows) == 0 {
		return []TimeSlot{}, nil
	}

	policy := uc.rules.policy()

	dayStart := windows[0][0]
	dayEnd := windows[len(windows)-1][1]
	from, _ := policy.CandidateWindow(dayStart)
	_, to := policy.CandidateWindow(dayEnd)

	existing, err := uc.repo.ListActiveAround(ctx, in.ProviderID, from, to)
	if err != nil {
		return nil, err
	}

	step := time.Duration(duration) * time.Minute
	slots := []TimeSlot{}

	for _, w := range windows {
		for cur := w[0]; !cur.Add(step).After(w[1]); cur = cur.Add(step) {
			if policy.FindConflict(existing, cur, duration, 0) != nil {
				continue
			}
			slots = append(slots, TimeSlot{
				Start: cur.Format("15:04"),
				End:   cur.Add(step).Format("15:04"),
			})
		}
	}

	return slots, nil
}
