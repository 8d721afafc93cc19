package types

import (
	"errors"
	"fmt"
)

// ErrInvalidRange возвращается, когда начало интервала не раньше конца
var ErrInvalidRange = errors.New("types: interval start must be before end")

// Interval полуоткрытый интервал времени [Start, End) в пределах одной даты
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval создает интервал и проверяет его корректность
func NewInterval(start, end TimeOfDay) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// ParseInterval парсит пару строк "HH:MM[:SS]" в интервал
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}

	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}

	return NewInterval(s, e)
}

// Validate проверяет инвариант Start < End
func (i Interval) Validate() error {
	if i.Start >= i.End {
		return fmt.Errorf("%w: [%s, %s)", ErrInvalidRange, i.Start, i.End)
	}
	return nil
}

// Overlaps проверяет строгое пересечение интервалов.
// Граничные случаи пересечением не считаются: [09:00, 10:00) и [10:00, 11:00)
// не конфликтуют.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains проверяет, что inner целиком лежит внутри i (границы включительно).
// Используется для проверок "внутри рабочих часов" и "внутри смены".
func (i Interval) Contains(inner Interval) bool {
	return i.Start <= inner.Start && inner.End <= i.End
}

// DurationMinutes возвращает длину интервала в минутах
func (i Interval) DurationMinutes() int {
	return int(i.End) - int(i.Start)
}

// String возвращает интервал в формате "HH:MM-HH:MM"
func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}
