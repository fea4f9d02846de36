package quote_group_price

import (
	"errors"
	"net/http"

	"github.com/pkamnoy/PVB-BookingService/internal/api/handlers"
	quoteGroupPrice "github.com/pkamnoy/PVB-BookingService/internal/usecase/quote_group_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidGroup       = "некорректный состав группы"
	msgRoomNotFound       = "один из номеров группы не найден"
	msgRoomInactive       = "один из номеров группы снят с продажи"
)

type Handler struct {
	useCase QuoteGroupPriceUseCase
	logger  Logger
}

func NewHandler(useCase QuoteGroupPriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/group-quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GroupQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /group-quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /group-quotes - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteGroupPrice.ErrRoomNotFound):
			h.logger.Warn("POST /group-quotes - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quoteGroupPrice.ErrRoomInactive):
			h.logger.Warn("POST /group-quotes - Room inactive: %v", err)
			handlers.RespondConflict(w, msgRoomInactive)

		case errors.Is(err, quoteGroupPrice.ErrInvalidInput):
			h.logger.Warn("POST /group-quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGroup)

		default:
			h.logger.Error("POST /group-quotes - Failed to quote group price: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /group-quotes - Quote calculated: rooms=%d, total=%.2f", result.TotalRooms, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
