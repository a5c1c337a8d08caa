package courier

import "time"

type CourierDB struct {
	ID          int64
	Username    string
	IsOnline    bool
	IsBusy      bool
	LocationLat *float64
	LocationLng *float64
	LocationAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CourierModifyDB struct {
	ID          *int64
	Username    *string
	IsOnline    *bool
	IsBusy      *bool
	LocationLat *float64
	LocationLng *float64
	LocationAt  *time.Time
}
