package quote_group_price

import "errors"

var (
	// ErrRoomNotFound возвращается, когда один из номеров группы не найден
	ErrRoomNotFound = errors.New("quote_group_price: room not found")

	// ErrRoomInactive возвращается, когда один из номеров группы снят с продажи
	ErrRoomInactive = errors.New("quote_group_price: room is not available for sale")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_group_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_group_price: internal error")
)
