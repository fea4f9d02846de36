package create_booking

import (
	"errors"
	"net/http"

	"github.com/pkamnoy/PVB-BookingService/internal/api/handlers"
	"github.com/pkamnoy/PVB-BookingService/internal/api/middleware"
	createBooking "github.com/pkamnoy/PVB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomNotFound       = "номер не найден"
	msgRoomInactive       = "номер снят с продажи"
	msgPolicyNotFound     = "политика отмены не найдена"
	msgRoomNotAvailable   = "номер недоступен на выбранные даты"
	msgInvalidBookingDate = "дата заезда не может быть в прошлом"
	msgMinStay            = "запрошенный период короче минимального срока проживания"
	msgAdvanceBooking     = "период требует более заблаговременного бронирования"
	msgTooManyGuests      = "количество гостей превышает вместимость номера"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomInactive):
			h.logger.Warn("POST /bookings - Room inactive: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomInactive)

		case errors.Is(err, createBooking.ErrPolicyNotFound):
			h.logger.Warn("POST /bookings - Policy not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgPolicyNotFound)

		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: room_id=%d, user_id=%d", req.RoomID, userID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Check-in in the past: room_id=%d, user_id=%d", req.RoomID, userID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrMinStayNotMet):
			h.logger.Warn("POST /bookings - Min stay not met: room_id=%d, user_id=%d", req.RoomID, userID)
			handlers.RespondConflict(w, msgMinStay)

		case errors.Is(err, createBooking.ErrAdvanceBookingRequired):
			h.logger.Warn("POST /bookings - Advance booking required: room_id=%d, user_id=%d", req.RoomID, userID)
			handlers.RespondConflict(w, msgAdvanceBooking)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: room_id=%d, guests=%d", req.RoomID, req.Guests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
