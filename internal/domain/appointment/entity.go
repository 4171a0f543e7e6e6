package appointment

import (
	"time"

	"github.com/psicoagenda/psico-scheduler/internal/httperr"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CanModifyAt aplica a regra de antecedência: reagendar ou cancelar
// só é permitido enquanto faltam pelo menos leadTime para o início.
// Exatamente leadTime ainda é permitido.
func CanModifyAt(ap *models.Appointment, now time.Time, leadTime time.Duration) error {
	if ap.StartTime.Sub(now) < leadTime {
		return httperr.ErrBusiness(httperr.CodeTooLateToModify)
	}
	return nil
}

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, reason string, now time.Time, leadTime time.Duration) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	if err := CanModifyAt(ap, now, leadTime); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelReason = reason
	ap.CancelledAt = &now
	return nil
}

// BeginReschedule valida estado e antecedência; a troca efetiva de
// status acontece em FinishReschedule, depois que o novo registro
// passou pelo resolvedor de conflitos.
func BeginReschedule(ap *models.Appointment, now time.Time, leadTime time.Duration) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}
	return CanModifyAt(ap, now, leadTime)
}

func FinishReschedule(old *models.Appointment, newID uint) {
	old.Status = string(StatusRescheduled)
	old.RescheduledToID = &newID
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if ap.StartTime.After(now) {
		return httperr.ErrBusiness(httperr.CodeNotYetDue)
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}
	if ap.StartTime.After(now) {
		return httperr.ErrBusiness(httperr.CodeNotYetDue)
	}

	ap.Status = string(StatusNoShow)
	return nil
}
