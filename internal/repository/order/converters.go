package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		FoodItemID:     o.FoodItemID,
		Quantity:       o.Quantity,
		UnitPriceCents: o.UnitPriceCents,
		Status:         entities.OrderStatusType(o.Status),
		CourierID:      o.CourierID,
		DeliveryAddress: entities.DeliveryAddress{
			Line:       o.AddressLine,
			City:       o.AddressCity,
			PostalCode: o.AddressPostalCode,
			Lat:        o.AddressLat,
			Lng:        o.AddressLng,
		},
		FeedbackGiven: o.FeedbackGiven,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func ToRoutePointDomainList(pointsDB []RoutePointDB) []entities.RoutePoint {
	if len(pointsDB) == 0 {
		return []entities.RoutePoint{}
	}

	result := make([]entities.RoutePoint, len(pointsDB))
	for i, pointDB := range pointsDB {
		result[i] = entities.RoutePoint{
			Lat:        pointDB.Lat,
			Lng:        pointDB.Lng,
			CapturedAt: pointDB.CapturedAt,
			ReceivedAt: pointDB.ReceivedAt,
		}
	}
	return result
}
