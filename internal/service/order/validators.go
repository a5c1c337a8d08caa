package order

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func validateCreate(orderModify entities.OrderModify) error {
	if orderModify.CustomerID == nil ||
		orderModify.FoodItemID == nil ||
		orderModify.Quantity == nil ||
		orderModify.UnitPriceCents == nil ||
		orderModify.DeliveryAddress == nil {
		return ErrMissingRequiredFields
	}

	if *orderModify.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	address := *orderModify.DeliveryAddress
	if strings.TrimSpace(address.Line) == "" || strings.TrimSpace(address.City) == "" {
		return ErrInvalidAddress
	}
	if (address.Lat == nil) != (address.Lng == nil) {
		return ErrInvalidAddress
	}
	if address.Lat != nil {
		point := entities.GeoPoint{Lat: *address.Lat, Lng: *address.Lng}
		if !point.Valid() {
			return ErrInvalidAddress
		}
	}

	return nil
}
