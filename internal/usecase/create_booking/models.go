package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID   int64     // ID пользователя
	RoomID   int64     // ID номера
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
	Guests   int       // Количество гостей
	PolicyID *int64    // Политика отмены (опционально)
	Notes    *string   // Дополнительные заметки (опционально)
}

// UnavailableNight недоступная ночь в деталях отказа
type UnavailableNight struct {
	Date   string // "2027-01-01"
	Reason string // Причина недоступности
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64  // ID созданного бронирования
	UserID   int64  // ID пользователя
	RoomID   int64  // ID номера
	CheckIn  string // Дата заезда
	CheckOut string // Дата выезда
	Nights   int    // Количество ночей
	Guests   int    // Количество гостей
	PolicyID *int64 // Политика отмены
	Status   string // Статус бронирования

	// Зафиксированный на момент бронирования расчет
	NightlyRate   float64 // Средняя цена за ночь
	TotalPrice    float64 // Итоговая стоимость проживания
	DepositAmount float64 // Требуемый депозит
	Notes         *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
