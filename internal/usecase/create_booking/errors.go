package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomInactive возвращается, когда номер снят с продажи
	ErrRoomInactive = errors.New("create_booking: room is not available for sale")

	// ErrPolicyNotFound возвращается, когда указанная политика отмены не найдена
	ErrPolicyNotFound = errors.New("create_booking: cancellation policy not found")

	// ErrInvalidDate возвращается, когда дата заезда в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrMinStayNotMet возвращается, когда запрошенный период короче минимального
	ErrMinStayNotMet = errors.New("create_booking: minimum stay requirement not met")

	// ErrAdvanceBookingRequired возвращается, когда до заезда меньше дней, чем требуют правила
	ErrAdvanceBookingRequired = errors.New("create_booking: advance booking requirement not met")

	// ErrTooManyGuests возвращается, когда гостей больше вместимости номера
	ErrTooManyGuests = errors.New("create_booking: too many guests for this room")

	// ErrRoomNotAvailable возвращается, когда номер занят или закрыт на запрошенный период
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for the requested dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
