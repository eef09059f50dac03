package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func Connect(dbURL string) (*sqlx.DB, error) {
	log.Println("🔌 Connecting to PostgreSQL...")
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connection established")
	return db, nil
}

func Migrate(db *sqlx.DB) error {
	migrations := []string{
		// Create managers table
		`CREATE TABLE IF NOT EXISTS managers (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
		)`,

		// Create drivers table
		`CREATE TABLE IF NOT EXISTS drivers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			current_shift_hours DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK(current_shift_hours >= 0),
			past_week_hours DOUBLE PRECISION[] NOT NULL DEFAULT '{}',
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
		)`,

		// Create routes table
		`CREATE TABLE IF NOT EXISTS routes (
			id TEXT PRIMARY KEY,
			route_id INT NOT NULL UNIQUE,
			distance_km DOUBLE PRECISION NOT NULL CHECK(distance_km > 0),
			traffic_level TEXT NOT NULL CHECK(traffic_level IN ('Low', 'Medium', 'High')),
			base_time_min DOUBLE PRECISION NOT NULL CHECK(base_time_min > 0),
			vehicle_type TEXT NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
		)`,

		// Create orders table
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			order_id INT NOT NULL UNIQUE,
			value_rs DOUBLE PRECISION NOT NULL CHECK(value_rs >= 0),
			route_id INT NOT NULL REFERENCES routes(route_id),
			delivery_time TEXT,
			created_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT,
			updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
		)`,

		// Create simulation_results table (append-only snapshots)
		`CREATE TABLE IF NOT EXISTS simulation_results (
			id TEXT PRIMARY KEY,
			run_at BIGINT NOT NULL,
			available_drivers INT NOT NULL,
			route_start_time TEXT NOT NULL,
			max_hours_per_driver DOUBLE PRECISION NOT NULL,
			total_orders INT NOT NULL,
			total_revenue DOUBLE PRECISION NOT NULL,
			total_profit DOUBLE PRECISION NOT NULL,
			total_penalties DOUBLE PRECISION NOT NULL,
			total_bonus DOUBLE PRECISION NOT NULL,
			total_fuel_cost DOUBLE PRECISION NOT NULL,
			avg_delivery_time DOUBLE PRECISION NOT NULL,
			on_time_count INT NOT NULL,
			on_time_percentage DOUBLE PRECISION NOT NULL,
			efficiency_score DOUBLE PRECISION NOT NULL,
			fuel_cost_breakdown JSONB NOT NULL DEFAULT '{}',
			driver_utilization JSONB NOT NULL DEFAULT '[]'
		)`,

		`CREATE INDEX IF NOT EXISTS idx_orders_route_id ON orders(route_id)`,
		`CREATE INDEX IF NOT EXISTS idx_simulation_results_run_at ON simulation_results(run_at DESC)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
