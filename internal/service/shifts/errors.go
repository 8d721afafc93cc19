package shifts

import "errors"

var (
	// ErrNoShift возвращается, когда у мастера нет смены на дату
	ErrNoShift = errors.New("shifts.service: staff member has no shift on this date")

	// ErrShiftNotFound возвращается при удалении несуществующей смены
	ErrShiftNotFound = errors.New("shifts.service: shift not found")

	// ErrInvalidShift возвращается при некорректном интервале смены
	ErrInvalidShift = errors.New("shifts.service: invalid shift interval")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shifts.service: internal error")
)
