package get_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pkamnoy/PVB-BookingService/internal/api/handlers"
	"github.com/pkamnoy/PVB-BookingService/internal/service/bookings"
)

const (
	msgInvalidPolicyID = "некорректный ID политики отмены"
	msgNotFound        = "политика отмены не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/policies/{policyId}
// Публичный endpoint - без авторизации, гость читает условия отмены до бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем policyId из URL
	vars := mux.Vars(r)
	policyIDStr := vars["policyId"]

	policyID, err := strconv.ParseInt(policyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /policies/{id} - Invalid policy ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPolicyID)
		return
	}

	// Получаем политику отмены
	result, err := h.service.GetPolicy(r.Context(), policyID)
	if err != nil {
		if errors.Is(err, bookings.ErrPolicyNotFound) {
			h.logger.Warn("GET /policies/{id} - Policy not found: policy_id=%d", policyID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /policies/{id} - Failed to get policy: policy_id=%d, error=%v", policyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /policies/{id} - Policy retrieved successfully: policy_id=%d, rules=%d",
		policyID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
