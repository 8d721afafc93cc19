package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках, верхняя граница для TimeOfDay
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM or HH:MM:SS")

	// ErrOutOfDayRange возвращается, когда время выходит за пределы суток
	ErrOutOfDayRange = errors.New("types: time of day is out of range")
)

// TimeOfDay время суток в минутах от полуночи.
// Хранение в минутах избавляет от сравнения строк разных форматов ("10:00" vs "10:00:00").
type TimeOfDay int

// ParseTimeOfDay парсит строку вида "HH:MM" или "HH:MM:SS" в TimeOfDay.
// Секунды отбрасываются: минимальная единица планирования - минута.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	for _, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// TimeOfDayFromClock создает TimeOfDay из компонента времени time.Time
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String возвращает время в формате "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// AddMinutes возвращает время через m минут.
// Выход за пределы суток считается ошибкой: интервалы не пересекают полночь.
func (t TimeOfDay) AddMinutes(m int) (TimeOfDay, error) {
	result := int(t) + m
	if result < 0 || result > MinutesPerDay {
		return 0, fmt.Errorf("%w: %s + %d min", ErrOutOfDayRange, t, m)
	}
	return TimeOfDay(result), nil
}

// Before возвращает true, если t строго раньше other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After возвращает true, если t строго позже other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// Valid проверяет, что время находится в пределах суток
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}
