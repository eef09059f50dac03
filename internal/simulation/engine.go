package simulation

import (
	"context"
	"fmt"
	"log"
	"time"

	"fleetsim-backend/internal/models"
)

// FleetReader is the engine's read boundary to the domain records. Each
// run reads a fresh snapshot; the engine never writes fleet data.
type FleetReader interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	// ListDrivers returns at most limit drivers in fetch order.
	ListDrivers(ctx context.Context, limit int) ([]models.Driver, error)
}

// ResultStore is the engine's write boundary. Snapshots are append-only
// and immutable once created.
type ResultStore interface {
	// Create persists a snapshot and returns its stable identifier.
	Create(ctx context.Context, result models.SimulationResult) (string, error)
	// MostRecent returns up to n snapshots ordered newest first.
	MostRecent(ctx context.Context, n int) ([]models.SimulationResult, error)
	// Latest returns the most recent snapshot, or an all-zero snapshot
	// when no history exists.
	Latest(ctx context.Context) (models.SimulationResult, error)
}

// Engine runs simulations: allocate, evaluate, aggregate, persist. One run
// executes start to finish within a single call; concurrent runs need no
// coordination because results are append-only.
type Engine struct {
	Fleet FleetReader
	Store ResultStore
}

// Run executes one simulation with the given parameters and returns the
// persisted snapshot. A run either completes and persists, or fails with
// nothing written.
func (e *Engine) Run(ctx context.Context, params models.SimulationParameters) (models.SimulationResult, error) {
	orders, err := e.Fleet.ListOrders(ctx)
	if err != nil {
		return models.SimulationResult{}, fmt.Errorf("fetch orders: %w", err)
	}
	routes, err := e.Fleet.ListRoutes(ctx)
	if err != nil {
		return models.SimulationResult{}, fmt.Errorf("fetch routes: %w", err)
	}
	drivers, err := e.Fleet.ListDrivers(ctx, params.AvailableDrivers)
	if err != nil {
		return models.SimulationResult{}, fmt.Errorf("fetch drivers: %w", err)
	}

	assignments, err := Allocate(orders, drivers, routes)
	if err != nil {
		return models.SimulationResult{}, err
	}

	results, skipped := Evaluate(assignments, routes)
	if skipped > 0 {
		log.Printf("⚠️  Simulation skipped %d order(s) referencing unknown routes", skipped)
	}

	result := models.SimulationResult{
		Timestamp:         time.Now().Unix(),
		Parameters:        params,
		KPIs:              Aggregate(results),
		FuelCostBreakdown: FuelCostBreakdown(results),
		DriverUtilization: DriverUtilization(drivers, params.MaxHoursPerDriver),
	}

	id, err := e.Store.Create(ctx, result)
	if err != nil {
		return models.SimulationResult{}, &PersistenceError{Err: err}
	}
	result.ID = id

	return result, nil
}
