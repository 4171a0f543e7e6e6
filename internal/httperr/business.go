package httperr

import "errors"

// Códigos de regra de negócio. São desfechos esperados devolvidos ao
// chamador, nunca tratados como falha interna.
const (
	CodeSlotConflict        = "slot_conflict"
	CodeOutsideAvailability = "outside_availability"
	CodeTooLateToModify     = "too_late_to_modify"
	CodeInsufficientPoints  = "insufficient_points"
	CodeInvalidDelta        = "invalid_delta"
	CodeInvalidState        = "invalid_state"
	CodeNotYetDue           = "not_yet_due"
	CodeNotFound            = "not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código quando err é uma BusinessError.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
