package rules

import "errors"

var (
	// ErrInternal внутренняя ошибка сервиса правил
	ErrInternal = errors.New("internal rules service error")
)
