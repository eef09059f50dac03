package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fleetsim-backend/internal/models"
)

// FleetStore reads driver, route, and order records for the simulation
// engine. It satisfies simulation.FleetReader.
type FleetStore struct {
	db *sqlx.DB
}

func NewFleetStore(db *sqlx.DB) *FleetStore {
	return &FleetStore{db: db}
}

func (s *FleetStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders, `
		SELECT id, order_id, value_rs, route_id, delivery_time, created_at, updated_at
		FROM orders
		ORDER BY created_at ASC, order_id ASC
	`)
	return orders, err
}

func (s *FleetStore) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	err := s.db.SelectContext(ctx, &routes, `
		SELECT id, route_id, distance_km, traffic_level, base_time_min, vehicle_type,
		       created_at, updated_at
		FROM routes
		ORDER BY route_id ASC
	`)
	return routes, err
}

// ListDrivers returns at most limit drivers in insertion order, which is
// what makes the round-robin allocation reproducible between runs.
func (s *FleetStore) ListDrivers(ctx context.Context, limit int) ([]models.Driver, error) {
	var drivers []models.Driver
	err := s.db.SelectContext(ctx, &drivers, `
		SELECT id, name, current_shift_hours, past_week_hours, created_at, updated_at
		FROM drivers
		ORDER BY created_at ASC, id ASC
		LIMIT $1
	`, limit)
	return drivers, err
}
