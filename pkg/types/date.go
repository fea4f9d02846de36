package types

import (
	"fmt"
	"time"
)

// DateFormat формат календарной даты, используемый во всём сервисе (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// DateString строковое представление календарной даты без времени (например, "2026-12-25")
// Используется на границе API: в теле ответа и query-параметрах
type DateString string

// NewDateString создает DateString из time.Time, отбрасывая время
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", s)
	}
	return DateString(s), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true для пустой даты
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	_, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", string(d))
	}
	return nil
}

// Time конвертирует DateString в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", string(d))
	}
	return t, nil
}

// Before возвращает true, если дата d раньше other
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// TruncateToDay обнуляет часы/минуты/секунды, оставляя только дату
// Используется везде, где сравниваются календарные дни, а не моменты времени
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
