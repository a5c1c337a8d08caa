package courier_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	courierDTO := ToCourierDTO(courierEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func ToCourierDTO(courierEntity *entities.Courier) dto.Courier {
	courierDTO := dto.Courier{
		ID:         courierEntity.ID,
		Username:   courierEntity.Username,
		IsOnline:   courierEntity.IsOnline,
		IsBusy:     courierEntity.IsBusy,
		LocationAt: courierEntity.LocationAt,
		CreatedAt:  courierEntity.CreatedAt,
		UpdatedAt:  courierEntity.UpdatedAt,
	}

	if courierEntity.CurrentLocation != nil {
		courierDTO.Location = &dto.Coordinate{
			Lat: courierEntity.CurrentLocation.Lat,
			Lng: courierEntity.CurrentLocation.Lng,
		}
	}

	return courierDTO
}
