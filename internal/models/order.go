package models

// Order represents a delivery order. Every order references exactly one
// route by its business key.
type Order struct {
	ID           string  `json:"id" db:"id"`
	OrderID      int     `json:"order_id" db:"order_id"` // business key, unique
	ValueRs      float64 `json:"value_rs" db:"value_rs"`
	RouteID      int     `json:"route_id" db:"route_id"`
	DeliveryTime *string `json:"delivery_time,omitempty" db:"delivery_time"`
	CreatedAt    int64   `json:"created_at" db:"created_at"` // Unix timestamp
	UpdatedAt    int64   `json:"updated_at" db:"updated_at"` // Unix timestamp
}

// CreateOrderRequest is the request body for POST /api/orders
type CreateOrderRequest struct {
	OrderID      int     `json:"order_id"`
	ValueRs      float64 `json:"value_rs"`
	RouteID      int     `json:"route_id"`
	DeliveryTime *string `json:"delivery_time,omitempty"`
}

// UpdateOrderRequest is the request body for PUT /api/orders/:id
type UpdateOrderRequest struct {
	OrderID      *int     `json:"order_id,omitempty"`
	ValueRs      *float64 `json:"value_rs,omitempty"`
	RouteID      *int     `json:"route_id,omitempty"`
	DeliveryTime *string  `json:"delivery_time,omitempty"`
}
