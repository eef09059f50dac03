package models

// TrafficLevel is the congestion rating of a delivery route
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "Low"
	TrafficMedium TrafficLevel = "Medium"
	TrafficHigh   TrafficLevel = "High"
)

// Valid reports whether the level is one of the three known ratings.
func (t TrafficLevel) Valid() bool {
	switch t {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return true
	}
	return false
}

// DefaultVehicleType is the fuel-cost breakdown key for routes without an
// assigned vehicle type.
const DefaultVehicleType = "standard"

// Route represents a delivery route
type Route struct {
	ID           string       `json:"id" db:"id"`
	RouteID      int          `json:"route_id" db:"route_id"` // business key, unique
	DistanceKm   float64      `json:"distance_km" db:"distance_km"`
	TrafficLevel TrafficLevel `json:"traffic_level" db:"traffic_level"`
	BaseTimeMin  float64      `json:"base_time_min" db:"base_time_min"`
	VehicleType  string       `json:"vehicle_type" db:"vehicle_type"`
	CreatedAt    int64        `json:"created_at" db:"created_at"` // Unix timestamp
	UpdatedAt    int64        `json:"updated_at" db:"updated_at"` // Unix timestamp
}

// VehicleCategory returns the breakdown key for this route's fuel costs.
func (r *Route) VehicleCategory() string {
	if r.VehicleType == "" {
		return DefaultVehicleType
	}
	return r.VehicleType
}

// CreateRouteRequest is the request body for POST /api/routes
type CreateRouteRequest struct {
	RouteID      int          `json:"route_id"`
	DistanceKm   float64      `json:"distance_km"`
	TrafficLevel TrafficLevel `json:"traffic_level"`
	BaseTimeMin  float64      `json:"base_time_min"`
	VehicleType  string       `json:"vehicle_type"`
}

// UpdateRouteRequest is the request body for PUT /api/routes/:id
type UpdateRouteRequest struct {
	RouteID      *int          `json:"route_id,omitempty"`
	DistanceKm   *float64      `json:"distance_km,omitempty"`
	TrafficLevel *TrafficLevel `json:"traffic_level,omitempty"`
	BaseTimeMin  *float64      `json:"base_time_min,omitempty"`
	VehicleType  *string       `json:"vehicle_type,omitempty"`
}
