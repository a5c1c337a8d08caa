// Package dto описывает JSON-контракты REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DeliveryAddress struct {
	Line       string   `json:"line"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

type OrderCreateRequest struct {
	CustomerID      int64           `json:"customer_id"`
	FoodItemID      int64           `json:"food_item_id"`
	Quantity        int32           `json:"quantity"`
	UnitPriceCents  int64           `json:"unit_price_cents"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
}

type Order struct {
	ID              string          `json:"id"`
	CustomerID      int64           `json:"customer_id"`
	FoodItemID      int64           `json:"food_item_id"`
	Quantity        int32           `json:"quantity"`
	UnitPriceCents  int64           `json:"unit_price_cents"`
	Status          string          `json:"status"`
	CourierID       *int64          `json:"courier_id,omitempty"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
	FeedbackGiven   bool            `json:"feedback_given"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type RoutePoint struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	CapturedAt time.Time `json:"captured_at"`
	ReceivedAt time.Time `json:"received_at"`
}

type RouteEstimate struct {
	Path       []Coordinate `json:"path"`
	ETASeconds int64        `json:"eta_seconds"`
	ComputedAt time.Time    `json:"computed_at"`
}

type OrderDetails struct {
	Order        Order          `json:"order"`
	RouteHistory []RoutePoint   `json:"route_history"`
	Estimate     *RouteEstimate `json:"estimate,omitempty"`
}

type OrderDeliveredRequest struct {
	CourierID int64 `json:"courier_id"`
}

type DispatchAssignRequest struct {
	OrderID string `json:"order_id"`
}

type DispatchForceRequest struct {
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
}

type DispatchResponse struct {
	OrderID    string    `json:"order_id"`
	CourierID  int64     `json:"courier_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

type CourierCreateRequest struct {
	Username string `json:"username"`
	IsOnline *bool  `json:"is_online,omitempty"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}

type Courier struct {
	ID         int64       `json:"id"`
	Username   string      `json:"username"`
	IsOnline   bool        `json:"is_online"`
	IsBusy     bool        `json:"is_busy"`
	Location   *Coordinate `json:"location,omitempty"`
	LocationAt *time.Time  `json:"location_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CourierOnlineRequest struct {
	IsOnline bool `json:"is_online"`
}

type LocationReportRequest struct {
	CourierID  int64     `json:"courier_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	CapturedAt time.Time `json:"captured_at"`
}
