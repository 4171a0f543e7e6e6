package appointment

import (
	"context"

	"github.com/psicoagenda/psico-scheduler/internal/audit"
	domain "github.com/psicoagenda/psico-scheduler/internal/domain/appointment"
	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

type Confirm struct {
	uow   domain.UnitOfWork
	audit *audit.Dispatcher
}

func NewConfirm(
	uow domain.UnitOfWork,
	auditDispatcher *audit.Dispatcher,
) *Confirm {
	return &Confirm{
		uow:   uow,
		audit: auditDispatcher,
	}
}

func (uc *Confirm) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var confirmed *models.Appointment

	err := uc.uow.InTx(ctx, func(tx domain.Repository, _ ledger.Store) error {

		// FOR UPDATE: o segundo concorrente espera e relê o estado
		// já confirmado
		current, err := tx.LockAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := domain.Confirm(current); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, current); err != nil {
			return err
		}

		confirmed = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: confirmed.ProviderID,
		Action:     "appointment_confirmed",
		Entity:     "appointment",
		EntityID:   &confirmed.ID,
	})

	return confirmed, nil
}
