package calendar

import "errors"

var (
	// ErrInvalidHours возвращается при некорректной конфигурации рабочих часов
	ErrInvalidHours = errors.New("calendar.service: invalid business hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar.service: internal error")
)
