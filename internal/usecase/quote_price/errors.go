package quote_price

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("quote_price: room not found")

	// ErrRoomInactive возвращается, когда номер снят с продажи
	ErrRoomInactive = errors.New("quote_price: room is not available for sale")

	// ErrMinStayNotMet возвращается, когда запрошенный период короче минимального
	ErrMinStayNotMet = errors.New("quote_price: minimum stay requirement not met")

	// ErrAdvanceBookingRequired возвращается, когда до заезда меньше дней, чем требуют правила
	ErrAdvanceBookingRequired = errors.New("quote_price: advance booking requirement not met")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
