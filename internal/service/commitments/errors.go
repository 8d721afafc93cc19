package commitments

import "errors"

var (
	// ErrCommitmentNotFound возвращается, когда запись не найдена
	ErrCommitmentNotFound = errors.New("commitments.service: commitment not found")

	// ErrInvalidStatus возвращается при неизвестном статусе в запросе
	ErrInvalidStatus = errors.New("commitments.service: invalid status")

	// ErrIllegalTransition возвращается, когда переход запрещён машиной состояний
	// (например, из терминального статуса)
	ErrIllegalTransition = errors.New("commitments.service: illegal status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commitments.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("commitments.service: internal error")
)
