package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
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
	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		CustomerID:     &orderCreateDTO.CustomerID,
		FoodItemID:     &orderCreateDTO.FoodItemID,
		Quantity:       &orderCreateDTO.Quantity,
		UnitPriceCents: &orderCreateDTO.UnitPriceCents,
		DeliveryAddress: &entities.DeliveryAddress{
			Line:       orderCreateDTO.DeliveryAddress.Line,
			City:       orderCreateDTO.DeliveryAddress.City,
			PostalCode: orderCreateDTO.DeliveryAddress.PostalCode,
			Lat:        orderCreateDTO.DeliveryAddress.Lat,
			Lng:        orderCreateDTO.DeliveryAddress.Lng,
		},
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	return dto.Order{
		ID:             orderEntity.ID,
		CustomerID:     orderEntity.CustomerID,
		FoodItemID:     orderEntity.FoodItemID,
		Quantity:       orderEntity.Quantity,
		UnitPriceCents: orderEntity.UnitPriceCents,
		Status:         orderEntity.Status.String(),
		CourierID:      orderEntity.CourierID,
		DeliveryAddress: dto.DeliveryAddress{
			Line:       orderEntity.DeliveryAddress.Line,
			City:       orderEntity.DeliveryAddress.City,
			PostalCode: orderEntity.DeliveryAddress.PostalCode,
			Lat:        orderEntity.DeliveryAddress.Lat,
			Lng:        orderEntity.DeliveryAddress.Lng,
		},
		FeedbackGiven: orderEntity.FeedbackGiven,
		CreatedAt:     orderEntity.CreatedAt,
		UpdatedAt:     orderEntity.UpdatedAt,
	}
}
