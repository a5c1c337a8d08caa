package dispatch_force_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	courierservice "dispatch/internal/service/courier"
	dispatchservice "dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

// Handler - ручное назначение курьера оператором. Обходит фильтр
// доступности, но не атомарность резервирования.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var forceDTO dto.DispatchForceRequest
	err := json.NewDecoder(r.Body).Decode(&forceDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ForceAssign(r.Context(), forceDTO.OrderID, forceDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, dispatchservice.ErrInvalidOrderID),
			errors.Is(err, dispatchservice.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, courierservice.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatchservice.ErrOrderAlreadyAssigned),
			errors.Is(err, dispatchservice.ErrOrderNotPreparing),
			errors.Is(err, courierservice.ErrCourierAlreadyBusy),
			errors.Is(err, dispatchservice.ErrConcurrentUpdate):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DispatchResponse{
		OrderID:    result.OrderID,
		CourierID:  result.CourierID,
		AssignedAt: result.AssignedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
