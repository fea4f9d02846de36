package quote_group_price

import "time"

// RoomRequest одна позиция группового запроса
type RoomRequest struct {
	RoomID   int64 // ID номера
	Quantity int   // Количество номеров этого типа
}

// Request модель запроса группового расчета
type Request struct {
	CheckIn  time.Time     // Дата заезда
	CheckOut time.Time     // Дата выезда
	Rooms    []RoomRequest // Состав группы
}

// RoomSubtotal стоимость одной позиции группы
type RoomSubtotal struct {
	RoomID        int64   // ID номера
	RoomName      string  // Название номера
	Quantity      int     // Количество номеров
	PricePerNight float64 // Средняя цена за ночь после правил
	Subtotal      float64 // Цена за ночь * количество * ночи
}

// AppliedTier примененный тир групповой скидки
type AppliedTier struct {
	ID                 int64   // ID тира
	Name               string  // Название тира
	MinRooms           int     // Нижняя граница
	MaxRooms           *int    // Верхняя граница, nil = без ограничения
	DiscountPercentage float64 // Процент скидки
}

// Response модель ответа группового расчета
// Все промежуточные суммы сохраняются: скидка до налога, налог после скидки
type Response struct {
	QuoteID    string // Уникальный ID расчета
	CheckIn    string // Дата заезда
	CheckOut   string // Дата выезда
	Nights     int    // Количество ночей
	TotalRooms int    // Суммарное количество номеров

	Rooms          []RoomSubtotal // Детализация по позициям
	Subtotal       float64        // Сумма до скидки и налога
	AppliedTier    *AppliedTier   // Примененный тир, nil = скидки нет
	DiscountAmount float64        // Сумма скидки
	TaxableAmount  float64        // Налогооблагаемая база
	TaxAmount      float64        // Налог
	TotalAmount    float64        // Итог с налогом
	DepositAmount  float64        // Требуемый депозит
}
