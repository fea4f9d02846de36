package check_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrRoomInactive возвращается, когда номер снят с продажи
	ErrRoomInactive = errors.New("check_availability: room is not available for sale")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
