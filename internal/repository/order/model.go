package order

import "time"

type OrderDB struct {
	ID                string
	CustomerID        int64
	FoodItemID        int64
	Quantity          int32
	UnitPriceCents    int64
	Status            string
	CourierID         *int64
	AddressLine       string
	AddressCity       string
	AddressPostalCode string
	AddressLat        *float64
	AddressLng        *float64
	FeedbackGiven     bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RoutePointDB struct {
	Lat        float64
	Lng        float64
	CapturedAt time.Time
	ReceivedAt time.Time
}
