package location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
	"dispatch/internal/service/tracking"
)

// Handler принимает отсчет геолокации с устройства курьера.
// Отброшенный дебаунсом отсчет - это тоже 202: устройству повторять
// отправку не нужно.
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
	var reportDTO dto.LocationReportRequest
	err := json.NewDecoder(r.Body).Decode(&reportDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sample := entities.PositionSample{
		Lat:        reportDTO.Lat,
		Lng:        reportDTO.Lng,
		CapturedAt: reportDTO.CapturedAt,
	}

	err = h.service.Report(r.Context(), reportDTO.CourierID, sample)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidCourierID),
			errors.Is(err, tracking.ErrInvalidSample):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
