package create_commitment

import (
	"errors"
	"fmt"

	"github.com/salonhq/scheduling-service/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_commitment: invalid input data")

	// ErrMissingField возвращается, когда для вида записи не заполнено обязательное поле
	ErrMissingField = errors.New("create_commitment: required field is missing")

	// ErrOutsideBusinessHours возвращается, когда интервал выходит за рабочие часы салона
	ErrOutsideBusinessHours = errors.New("create_commitment: outside business hours")

	// ErrOutsideShift возвращается, когда интервал выходит за смену мастера
	ErrOutsideShift = errors.New("create_commitment: outside staff shift")

	// ErrTimeConflict возвращается при пересечении с существующей записью
	ErrTimeConflict = errors.New("create_commitment: time conflict with existing commitment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_commitment: internal error")
)

// OutsideHoursError уточняет ErrOutsideBusinessHours: салон закрыт или
// рабочий интервал, в который не попал кандидат
type OutsideHoursError struct {
	Closed bool
	Open   types.Interval
}

func (e *OutsideHoursError) Error() string {
	if e.Closed {
		return "create_commitment: salon is closed on this date"
	}
	return fmt.Sprintf("create_commitment: outside business hours %s", e.Open)
}

func (e *OutsideHoursError) Unwrap() error { return ErrOutsideBusinessHours }

// OutsideShiftError уточняет ErrOutsideShift: смены нет вовсе или
// интервал смены, в который не попал кандидат
type OutsideShiftError struct {
	NoShift bool
	Shift   types.Interval
}

func (e *OutsideShiftError) Error() string {
	if e.NoShift {
		return "create_commitment: staff member has no shift on this date"
	}
	return fmt.Sprintf("create_commitment: outside staff shift %s", e.Shift)
}

func (e *OutsideShiftError) Unwrap() error { return ErrOutsideShift }

// ConflictError уточняет ErrTimeConflict идентификатором и интервалом
// конфликтующей записи, чтобы вызывающая сторона могла её показать
type ConflictError struct {
	CommitmentID int64
	Interval     types.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_commitment: time conflict with commitment id=%d (%s)", e.CommitmentID, e.Interval)
}

func (e *ConflictError) Unwrap() error { return ErrTimeConflict }
