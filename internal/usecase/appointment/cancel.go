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

type Cancel struct {
	repo  domain.Repository
	uow   domain.UnitOfWork
	clk   clock.Clock
	audit *audit.Dispatcher
	rules Rules
}

func NewCancel(
	repo domain.Repository,
	uow domain.UnitOfWork,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
	rules Rules,
) *Cancel {
	return &Cancel{
		repo:  repo,
		uow:   uow,
		clk:   clk,
		audit: auditDispatcher,
		rules: rules,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
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

	var cancelled *models.Appointment

	err = uc.uow.InTx(ctx, func(tx domain.Repository, _ ledger.Store) error {

		current, err := tx.LockAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := domain.Cancel(current, reason, now, uc.rules.leadTime()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, current); err != nil {
			return err
		}

		cancelled = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: cancelled.ProviderID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   &cancelled.ID,
		Metadata:   map[string]any{"reason": reason},
	})

	return cancelled, nil
}
