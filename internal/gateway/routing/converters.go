package routing

import (
	"time"

	"dispatch/internal/entities"
)

type coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type estimateRequest struct {
	Origin      coordinate `json:"origin"`
	Destination coordinate `json:"destination"`
}

type estimateResponse struct {
	Path            []coordinate `json:"path"`
	DurationSeconds int64        `json:"duration_seconds"`
}

func toEstimateRequest(origin, destination entities.GeoPoint) estimateRequest {
	return estimateRequest{
		Origin:      coordinate{Lat: origin.Lat, Lng: origin.Lng},
		Destination: coordinate{Lat: destination.Lat, Lng: destination.Lng},
	}
}

func toDomain(resp estimateResponse) *entities.RouteEstimate {
	path := make([]entities.GeoPoint, 0, len(resp.Path))
	for _, point := range resp.Path {
		path = append(path, entities.GeoPoint{Lat: point.Lat, Lng: point.Lng})
	}

	return &entities.RouteEstimate{
		Path:       path,
		ETASeconds: resp.DurationSeconds,
		ComputedAt: time.Now().UTC(),
	}
}
