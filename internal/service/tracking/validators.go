package tracking

import "dispatch/internal/entities"

func isValidCourierID(courierID int64) bool {
	return courierID > 0
}

func isValidSample(sample entities.PositionSample) bool {
	point := entities.GeoPoint{Lat: sample.Lat, Lng: sample.Lng}
	return point.Valid() && !sample.CapturedAt.IsZero()
}
