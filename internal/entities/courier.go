package entities

import "time"

// Роль курьера фиксирована: учетные записи с другими ролями
// в реестр не попадают, идентификаторы выдает внешний user store.
const CourierRole = "delivery"

type Courier struct {
	ID              int64
	Username        string
	IsOnline        bool
	IsBusy          bool
	CurrentLocation *GeoPoint
	LocationAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Available: курьер может принять заказ.
// IsOnline и IsBusy - независимые оси: занятый курьер может уйти
// в офлайн, но остается зарезервированным до завершения заказа.
func (c Courier) Available() bool {
	return c.IsOnline && !c.IsBusy
}

type CourierModify struct {
	ID              *int64
	Username        *string
	IsOnline        *bool
	IsBusy          *bool
	CurrentLocation *GeoPoint
	LocationAt      *time.Time
}
