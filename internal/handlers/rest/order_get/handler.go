package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/service/order"
	"dispatch/internal/service/route"
	"dispatch/pkg/logger"
)

// Handler отдает комбинированное состояние заказа для polling-клиентов:
// сам заказ, историю маршрута и последнюю оценку ETA, если она есть.
type Handler struct {
	log       handlerLogger
	service   Service
	estimates EstimateProvider
}

func New(log handlerLogger, service Service, estimates EstimateProvider) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		estimates: estimates,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	details, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDetailsDTO(details)

	estimate, err := h.estimates.LastEstimate(orderID)
	if err == nil {
		estimateDTO := toEstimateDTO(estimate)
		response.Estimate = &estimateDTO
	} else if !errors.Is(err, route.ErrNoEstimate) {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order", orderID),
		).Warn("get last route estimate")
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
