package models

import "github.com/lib/pq"

// Driver represents a roster entry. Read-only during a simulation run.
type Driver struct {
	ID                string          `json:"id" db:"id"`
	Name              string          `json:"name" db:"name"`
	CurrentShiftHours float64         `json:"current_shift_hours" db:"current_shift_hours"`
	PastWeekHours     pq.Float64Array `json:"past_week_hours" db:"past_week_hours"` // 7 daily totals
	CreatedAt         int64           `json:"created_at" db:"created_at"`           // Unix timestamp
	UpdatedAt         int64           `json:"updated_at" db:"updated_at"`           // Unix timestamp
}

// CreateDriverRequest is the request body for POST /api/drivers
type CreateDriverRequest struct {
	Name              string    `json:"name"`
	CurrentShiftHours float64   `json:"current_shift_hours"`
	PastWeekHours     []float64 `json:"past_week_hours"`
}

// UpdateDriverRequest is the request body for PUT /api/drivers/:id
type UpdateDriverRequest struct {
	Name              *string   `json:"name,omitempty"`
	CurrentShiftHours *float64  `json:"current_shift_hours,omitempty"`
	PastWeekHours     []float64 `json:"past_week_hours,omitempty"`
}
