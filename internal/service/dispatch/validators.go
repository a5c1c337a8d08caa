package dispatch

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidCourierID(id int64) bool {
	return id > 0
}

// validateDispatchable проверяет входное ограничение назначения:
// заказ существует, в preparing и без курьера.
func validateDispatchable(order *entities.Order) error {
	if order.CourierID != nil || order.Status == entities.OrderOutForDelivery {
		return ErrOrderAlreadyAssigned
	}
	if order.Status != entities.OrderPreparing {
		return ErrOrderNotPreparing
	}
	return nil
}
