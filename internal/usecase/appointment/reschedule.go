package appointment

import (
	"context"
	"time"

	"github.com/psicoagenda/psico-scheduler/internal/audit"
	"github.com/psicoagenda/psico-scheduler/internal/clock"
	domain "github.com/psicoagenda/psico-scheduler/internal/domain/appointment"
	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/models"
	"github.com/psicoagenda/psico-scheduler/internal/timezone"
)

type RescheduleInput struct {
	AppointmentID uint

	Date string
	Time string
}

// Reschedule fecha o registro antigo como "rescheduled" e cria um novo
// registro "scheduled" no horário novo, na mesma transação. O novo
// horário passa pelo resolvedor de conflitos ignorando o slot antigo.
type Reschedule struct {
	repo  domain.Repository
	uow   domain.UnitOfWork
	clk   clock.Clock
	audit *audit.Dispatcher
	rules Rules
}

func NewReschedule(
	repo domain.Repository,
	uow domain.UnitOfWork,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
	rules Rules,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		uow:   uow,
		clk:   clk,
		audit: auditDispatcher,
		rules: rules,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	provider, err := uc.repo.GetProvider(ctx, ap.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	loc := timezone.Location(provider.Timezone)

	newStart, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := uc.clk.Now().In(loc)
	policy := uc.rules.policy()

	var created *models.Appointment

	err = uc.uow.InTx(ctx, func(tx domain.Repository, _ ledger.Store) error {

		locked, err := tx.LockProvider(ctx, ap.ProviderID)
		if err != nil {
			return err
		}

		// relê com FOR UPDATE; uma transição concorrente sobre o mesmo
		// registro serializa aqui
		current, err := tx.LockAppointment(ctx, in.AppointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := domain.BeginReschedule(current, now, uc.rules.leadTime()); err != nil {
			return err
		}

		if !domain.WithinAvailability(locked, newStart, current.DurationMin) {
			return httperr.ErrBusiness(httperr.CodeOutsideAvailability)
		}

		from, to := policy.CandidateWindow(newStart)
		existing, err := tx.ListActiveAround(ctx, current.ProviderID, from, to)
		if err != nil {
			return err
		}

		if c := policy.FindConflict(existing, newStart, current.DurationMin, current.ID); c != nil {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		next := &models.Appointment{
			ProviderID:  current.ProviderID,
			ClientID:    current.ClientID,
			StartTime:   newStart,
			DurationMin: current.DurationMin,
			Value:       current.Value,
			Status:      string(domain.InitialStatus()),
			Type:        current.Type,
			Notes:       current.Notes,
		}

		if err := tx.CreateAppointment(ctx, next); err != nil {
			return err
		}

		domain.FinishReschedule(current, next.ID)
		if err := tx.UpdateAppointment(ctx, current); err != nil {
			return err
		}

		created = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ap.ProviderID,
		Action:     "appointment_rescheduled",
		Entity:     "appointment",
		EntityID:   &created.ID,
		Metadata:   map[string]any{"previous_id": ap.ID},
	})

	return created, nil
}
