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

// ======================================================
// INPUT
// ======================================================

type ScheduleInput struct {
	ProviderID uint
	ClientID   uint

	Date string // "2006-01-02", no timezone do profissional
	Time string // "15:04"

	DurationMin int
	Type        string
	Value       float64
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

// Schedule é o caminho crítico de criação: disponibilidade, conflito e
// gravação rodam dentro de uma única transação serializada por
// profissional. Sessão gratuita debita os pontos na mesma transação —
// ou tudo entra, ou nada entra.
type Schedule struct {
	repo  domain.Repository
	uow   domain.UnitOfWork
	clk   clock.Clock
	audit *audit.Dispatcher
	rules Rules
}

func NewSchedule(
	repo domain.Repository,
	uow domain.UnitOfWork,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
	rules Rules,
) *Schedule {
	return &Schedule{
		repo:  repo,
		uow:   uow,
		clk:   clk,
		audit: auditDispatcher,
		rules: rules,
	}
}

func (uc *Schedule) Execute(
	ctx context.Context,
	in ScheduleInput,
) (*models.Appointment, error) {

	provider, err := uc.repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(provider.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = uc.rules.defaultDuration()
	}

	apType := domain.Type(in.Type)
	if in.Type == "" {
		apType = domain.TypeStandard
	}
	if !domain.IsValidType(apType) {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	if in.Value < 0 {
		return nil, httperr.ErrBusiness("invalid_value")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	policy := uc.rules.policy()

	var created *models.Appointment

	err = uc.uow.InTx(ctx, func(tx domain.Repository, points ledger.Store) error {

		// serializa agendamentos concorrentes deste profissional
		locked, err := tx.LockProvider(ctx, in.ProviderID)
		if err != nil {
			return err
		}

		if !domain.WithinAvailability(locked, start, duration) {
			return httperr.ErrBusiness(httperr.CodeOutsideAvailability)
		}

		from, to := policy.CandidateWindow(start)
		existing, err := tx.ListActiveAround(ctx, in.ProviderID, from, to)
		if err != nil {
			return err
		}

		if c := policy.FindConflict(existing, start, duration, 0); c != nil {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		ap := &models.Appointment{
			ProviderID:  in.ProviderID,
			ClientID:    client.ID,
			StartTime:   start,
			DurationMin: duration,
			Value:       in.Value,
			Status:      string(domain.InitialStatus()),
			Type:        string(apType),
			Notes:       in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		if apType == domain.TypeFree {
			led := ledger.NewService(points, uc.rules.RewardThreshold)
			if _, err := led.Redeem(ctx, client.ID, ap.ID); err != nil {
				// rollback desfaz a criação: sem pontos, sem sessão
				return err
			}
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		Action:     "appointment_scheduled",
		Entity:     "appointment",
		EntityID:   &created.ID,
	})

	return created, nil
}
