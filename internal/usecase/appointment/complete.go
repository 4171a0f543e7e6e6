package appointment

import (
	"context"

	"github.com/psicoagenda/psico-scheduler/internal/audit"
	"github.com/psicoagenda/psico-scheduler/internal/clock"
	domain "github.com/psicoagenda/psico-scheduler/internal/domain/appointment"
	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/models"
	"github.com/psicoagenda/psico-scheduler/internal/timezone"
)

// Complete fecha a sessão e credita o PsicoPonto na mesma transação:
// mudança de status, entrada no ledger e contador de sessões andam
// juntos ou não andam.
type Complete struct {
	repo  domain.Repository
	uow   domain.UnitOfWork
	clk   clock.Clock
	audit *audit.Dispatcher
	rules Rules
}

func NewComplete(
	repo domain.Repository,
	uow domain.UnitOfWork,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
	rules Rules,
) *Complete {
	return &Complete{
		repo:  repo,
		uow:   uow,
		clk:   clk,
		audit: auditDispatcher,
		rules: rules,
	}
}

func (uc *Complete) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	provider, err := uc.repo.GetProvider(ctx, ap.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	now := uc.clk.Now().In(timezone.Location(provider.Timezone))

	var completed *models.Appointment

	err = uc.uow.InTx(ctx, func(tx domain.Repository, points ledger.Store) error {

		// FOR UPDATE: duas conclusões concorrentes serializam aqui e a
		// segunda relê "completed" — um ponto por sessão, nunca dois
		current, err := tx.LockAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := domain.Complete(current, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, current); err != nil {
			return err
		}

		led := ledger.NewService(points, uc.rules.RewardThreshold)
		if _, err := led.AwardCompletion(ctx, current.ClientID, current.ID); err != nil {
			return err
		}

		if err := tx.IncrementCompletedSessions(ctx, current.ClientID); err != nil {
			return err
		}

		completed = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: completed.ProviderID,
		Action:     "appointment_completed",
		Entity:     "appointment",
		EntityID:   &completed.ID,
	})

	return completed, nil
}
