package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	courierEntity := &entities.Courier{
		ID:         c.ID,
		Username:   c.Username,
		IsOnline:   c.IsOnline,
		IsBusy:     c.IsBusy,
		LocationAt: c.LocationAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.LocationLat != nil && c.LocationLng != nil {
		courierEntity.CurrentLocation = &entities.GeoPoint{
			Lat: *c.LocationLat,
			Lng: *c.LocationLng,
		}
	}

	return courierEntity
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}

	courierDB := &CourierModifyDB{
		ID:         courierModify.ID,
		Username:   courierModify.Username,
		IsOnline:   courierModify.IsOnline,
		IsBusy:     courierModify.IsBusy,
		LocationAt: courierModify.LocationAt,
	}

	if courierModify.CurrentLocation != nil {
		lat := courierModify.CurrentLocation.Lat
		lng := courierModify.CurrentLocation.Lng
		courierDB.LocationLat = &lat
		courierDB.LocationLng = &lng
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
