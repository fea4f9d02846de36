package quote_price

import "time"

// Request модель запроса расчета стоимости проживания
type Request struct {
	RoomID    int64     // ID номера
	CheckIn   time.Time // Дата заезда
	CheckOut  time.Time // Дата выезда
	BasePrice *float64  // Переопределение базовой цены, по умолчанию цена из каталога
}

// AppliedRule примененное правило в детализации расчета
type AppliedRule struct {
	RuleID      int64   // ID правила в исходной коллекции
	Source      string  // seasonal | demand | holiday
	Strategy    string  // percentage | fixed_amount | multiplier
	Value       float64 // Величина корректировки
	Date        string  // Ночь, к которой применено правило
	PriceBefore float64 // Цена до применения
	PriceAfter  float64 // Цена после применения
}

// NightPrice итоговая цена одной ночи
type NightPrice struct {
	Date  string  // "2026-12-24"
	Price float64 // Итоговая цена ночи
}

// Response модель ответа с рассчитанной стоимостью
type Response struct {
	QuoteID  string // Уникальный ID расчета
	RoomID   int64  // ID номера
	RoomName string // Название номера
	CheckIn  string // Дата заезда
	CheckOut string // Дата выезда
	Nights   int    // Количество ночей

	BasePrice          float64       // Базовая цена за ночь
	NightlyPrices      []NightPrice  // Цена каждой ночи
	AppliedRules       []AppliedRule // Полная детализация применённых правил
	FinalPricePerNight float64       // Средняя цена за ночь
	TotalPrice         float64       // Итоговая стоимость проживания

	MinStay            int // Минимальный срок проживания по правилам периода
	AdvanceBookingDays int // Требование заблаговременного бронирования
}
