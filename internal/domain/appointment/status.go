package appointment

import "github.com/psicoagenda/psico-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

type Type string

const (
	TypeStandard   Type = "standard"
	TypeFree       Type = "free"
	TypeFollowUp   Type = "follow_up"
	TypeAssessment Type = "assessment"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidType(t Type) bool {
	switch t {
	case TypeStandard, TypeFree, TypeFollowUp, TypeAssessment:
		return true
	}
	return false
}

// ===============================
// Transition guards
// ===============================

// scheduled  → confirmed | cancelled | rescheduled
// confirmed  → completed | cancelled | no_show | rescheduled
// completed, cancelled, no_show, rescheduled são terminais.

func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanReschedule(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func IsTerminal(current Status) bool {
	switch current {
	case StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}
