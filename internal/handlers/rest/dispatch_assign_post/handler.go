package dispatch_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	dispatchservice "dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

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
	var assignDTO dto.DispatchAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Assign(r.Context(), assignDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatchservice.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatchservice.ErrNoCourierAvailable),
			errors.Is(err, dispatchservice.ErrOrderAlreadyAssigned),
			errors.Is(err, dispatchservice.ErrOrderNotPreparing),
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
