package commitment

import "errors"

var (
	// ErrCommitmentNotFound возвращается, когда запись не найдена (или принадлежит другому арендатору)
	ErrCommitmentNotFound = errors.New("commitment.repository: commitment not found")

	// ErrOverlapConstraint возвращается, когда БД отклонила запись по exclusion constraint
	// (страховка от двойного бронирования на уровне хранилища)
	ErrOverlapConstraint = errors.New("commitment.repository: overlapping commitment rejected by storage constraint")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("commitment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("commitment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("commitment.repository: failed to scan row")
)
