package check_availability

import (
	"time"

	"github.com/pkamnoy/PVB-BookingService/pkg/types"
)

// Request модель запроса проверки доступности номера
type Request struct {
	RoomID   int64     // ID номера
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
}

// Response модель ответа проверки доступности
// Недоступность - это не ошибка: ответ содержит полный список занятых
// ночей с причинами, чтобы клиент мог построить календарь
type Response struct {
	RoomID           int64              // ID номера
	CheckIn          types.DateString   // Дата заезда
	CheckOut         types.DateString   // Дата выезда
	Nights           int                // Количество ночей
	Available        bool               // Доступен ли весь период
	UnavailableDates []types.DateString // Недоступные ночи по возрастанию
	Reasons          map[string]string  // Причина недоступности по каждой ночи
	StayViolation    string             // Нарушение min/max stay, пустая строка = нет
}
