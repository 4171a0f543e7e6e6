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

// MarkNoShow registra a falta. Sem efeito no ledger.
type MarkNoShow struct {
	repo  domain.Repository
	uow   domain.UnitOfWork
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	uow domain.UnitOfWork,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		uow:   uow,
		clk:   clk,
		audit: auditDispatcher,
	}
}

func (uc *MarkNoShow) Execute(
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

	var marked *models.Appointment

	err = uc.uow.InTx(ctx, func(tx domain.Repository, _ ledger.Store) error {

		current, err := tx.LockAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := domain.MarkNoShow(current, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, current); err != nil {
			return err
		}

		marked = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: marked.ProviderID,
		Action:     "appointment_no_show",
		Entity:     "appointment",
		EntityID:   &marked.ID,
	})

	return marked, nil
}
