package order_get

import (
	"dispatch/internal/dto"
	"dispatch/internal/entities"
)

func toDetailsDTO(details *entities.OrderDetails) dto.OrderDetails {
	orderEntity := details.Order

	history := make([]dto.RoutePoint, 0, len(details.RouteHistory))
	for _, point := range details.RouteHistory {
		history = append(history, dto.RoutePoint{
			Lat:        point.Lat,
			Lng:        point.Lng,
			CapturedAt: point.CapturedAt,
			ReceivedAt: point.ReceivedAt,
		})
	}

	return dto.OrderDetails{
		Order: dto.Order{
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
		},
		RouteHistory: history,
	}
}

func toEstimateDTO(estimate *entities.RouteEstimate) dto.RouteEstimate {
	path := make([]dto.Coordinate, 0, len(estimate.Path))
	for _, point := range estimate.Path {
		path = append(path, dto.Coordinate{Lat: point.Lat, Lng: point.Lng})
	}

	return dto.RouteEstimate{
		Path:       path,
		ETASeconds: estimate.ETASeconds,
		ComputedAt: estimate.ComputedAt,
	}
}
