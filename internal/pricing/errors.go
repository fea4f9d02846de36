package pricing

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных расчета
	ErrInvalidInput = errors.New("pricing: invalid input data")

	// ErrInvalidPolicy возвращается для политики отмены без правил
	ErrInvalidPolicy = errors.New("pricing: cancellation policy has no rules")
)
