package quote_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pkamnoy/PVB-BookingService/internal/api/handlers"
	quotePrice "github.com/pkamnoy/PVB-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRoomID  = "некорректный ID номера"
	msgInvalidDates   = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidPeriod  = "некорректный период проживания"
	msgRoomNotFound   = "номер не найден"
	msgRoomInactive   = "номер снят с продажи"
	msgMinStay        = "запрошенный период короче минимального срока проживания"
	msgAdvanceBooking = "период требует более заблаговременного бронирования"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/price-quote?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price-quote - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req := ParseQuery(roomID, r.URL.Query())
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price-quote - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/price-quote - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quotePrice.ErrRoomInactive):
			h.logger.Warn("GET /rooms/{id}/price-quote - Room inactive: room_id=%d", roomID)
			handlers.RespondConflict(w, msgRoomInactive)

		case errors.Is(err, quotePrice.ErrMinStayNotMet):
			h.logger.Warn("GET /rooms/{id}/price-quote - Min stay not met: room_id=%d", roomID)
			handlers.RespondConflict(w, msgMinStay)

		case errors.Is(err, quotePrice.ErrAdvanceBookingRequired):
			h.logger.Warn("GET /rooms/{id}/price-quote - Advance booking required: room_id=%d", roomID)
			handlers.RespondConflict(w, msgAdvanceBooking)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/price-quote - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /rooms/{id}/price-quote - Failed to quote price: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/price-quote - Quote calculated: room_id=%d, total=%.2f", roomID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
