package create_commitment

import (
	"fmt"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if !req.Kind.Valid() {
		return fmt.Errorf("%w: unknown commitment kind %q", ErrInvalidInput, req.Kind)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateKindFields(req); err != nil {
		return err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateKindFields проверяет обязательные поля для вида записи.
// Клиентская запись требует клиента и услугу; внутренняя задача - описание.
// Лишние поля другого вида отклоняются, чтобы запись типа task никогда
// не ссылалась на клиента.
func validateKindFields(req *Request) error {
	switch req.Kind {
	case domain.KindCustomer:
		if req.CustomerID == nil {
			return fmt.Errorf("%w: customerId is required for customer appointments", ErrMissingField)
		}
		if req.ServiceID == nil {
			return fmt.Errorf("%w: serviceId is required for customer appointments", ErrMissingField)
		}
		if req.Description != nil {
			return fmt.Errorf("%w: description is not allowed for customer appointments", ErrInvalidInput)
		}
	case domain.KindTask:
		if req.Description == nil || *req.Description == "" {
			return fmt.Errorf("%w: description is required for internal tasks", ErrMissingField)
		}
		if len(*req.Description) > domain.MaxDescriptionLength {
			return fmt.Errorf("%w: description longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
		}
		if req.CustomerID != nil || req.ServiceID != nil {
			return fmt.Errorf("%w: customerId and serviceId are not allowed for internal tasks", ErrInvalidInput)
		}
	}

	return nil
}

// resolveInterval строит интервал записи: явный конец или Start + 30 минут
func resolveInterval(req *Request) (types.Interval, error) {
	end := types.TimeOfDay(0)

	if req.End != nil {
		end = *req.End
	} else {
		var err error
		end, err = req.Start.AddMinutes(domain.DefaultCommitmentDurationMinutes)
		if err != nil {
			return types.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	interval, err := types.NewInterval(req.Start, end)
	if err != nil {
		return types.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return interval, nil
}
