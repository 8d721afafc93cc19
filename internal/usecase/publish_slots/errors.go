package publish_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("publish_slots: invalid input data")

	// ErrInvalidRange возвращается, когда until раньше начальной даты
	ErrInvalidRange = errors.New("publish_slots: until date is before start date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("publish_slots: internal error")
)
