package route_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/service/route"
	"dispatch/pkg/logger"
)

// Handler отдает последнюю успешную оценку маршрута по заказу.
// Отсутствие оценки - 404: клиент продолжает показывать "ETA неизвестно".
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
	orderID := mux.Vars(r)["id"]

	estimate, err := h.service.LastEstimate(orderID)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrNoEstimate):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	path := make([]dto.Coordinate, 0, len(estimate.Path))
	for _, point := range estimate.Path {
		path = append(path, dto.Coordinate{Lat: point.Lat, Lng: point.Lng})
	}

	response := dto.RouteEstimate{
		Path:       path,
		ETASeconds: estimate.ETASeconds,
		ComputedAt: estimate.ComputedAt,
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
