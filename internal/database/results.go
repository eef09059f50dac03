package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"fleetsim-backend/internal/models"
)

// ResultStore persists simulation snapshots. It satisfies
// simulation.ResultStore; rows are append-only and never updated.
type ResultStore struct {
	db *sqlx.DB
}

func NewResultStore(db *sqlx.DB) *ResultStore {
	return &ResultStore{db: db}
}

// resultRow is the flat table shape of a snapshot.
type resultRow struct {
	ID                string         `db:"id"`
	RunAt             int64          `db:"run_at"`
	AvailableDrivers  int            `db:"available_drivers"`
	RouteStartTime    string         `db:"route_start_time"`
	MaxHoursPerDriver float64        `db:"max_hours_per_driver"`
	TotalOrders       int            `db:"total_orders"`
	TotalRevenue      float64        `db:"total_revenue"`
	TotalProfit       float64        `db:"total_profit"`
	TotalPenalties    float64        `db:"total_penalties"`
	TotalBonus        float64        `db:"total_bonus"`
	TotalFuelCost     float64        `db:"total_fuel_cost"`
	AvgDeliveryTime   float64        `db:"avg_delivery_time"`
	OnTimeCount       int            `db:"on_time_count"`
	OnTimePercentage  float64        `db:"on_time_percentage"`
	EfficiencyScore   float64        `db:"efficiency_score"`
	FuelCostBreakdown types.JSONText `db:"fuel_cost_breakdown"`
	DriverUtilization types.JSONText `db:"driver_utilization"`
}

func (r *resultRow) toResult() (models.SimulationResult, error) {
	result := models.SimulationResult{
		ID:        r.ID,
		Timestamp: r.RunAt,
		Parameters: models.SimulationParameters{
			AvailableDrivers:  r.AvailableDrivers,
			RouteStartTime:    r.RouteStartTime,
			MaxHoursPerDriver: r.MaxHoursPerDriver,
		},
		KPIs: models.KPISet{
			TotalOrders:      r.TotalOrders,
			TotalRevenue:     r.TotalRevenue,
			TotalProfit:      r.TotalProfit,
			TotalPenalties:   r.TotalPenalties,
			TotalBonus:       r.TotalBonus,
			TotalFuelCost:    r.TotalFuelCost,
			AvgDeliveryTime:  r.AvgDeliveryTime,
			OnTimeCount:      r.OnTimeCount,
			OnTimePercentage: r.OnTimePercentage,
			EfficiencyScore:  r.EfficiencyScore,
		},
	}

	if err := json.Unmarshal(r.FuelCostBreakdown, &result.FuelCostBreakdown); err != nil {
		return models.SimulationResult{}, fmt.Errorf("decode fuel_cost_breakdown: %w", err)
	}
	if err := json.Unmarshal(r.DriverUtilization, &result.DriverUtilization); err != nil {
		return models.SimulationResult{}, fmt.Errorf("decode driver_utilization: %w", err)
	}

	return result, nil
}

const resultColumns = `
	id, run_at, available_drivers, route_start_time, max_hours_per_driver,
	total_orders, total_revenue, total_profit, total_penalties, total_bonus,
	total_fuel_cost, avg_delivery_time, on_time_count, on_time_percentage,
	efficiency_score, fuel_cost_breakdown, driver_utilization`

func (s *ResultStore) Create(ctx context.Context, result models.SimulationResult) (string, error) {
	breakdown, err := json.Marshal(result.FuelCostBreakdown)
	if err != nil {
		return "", fmt.Errorf("encode fuel_cost_breakdown: %w", err)
	}
	utilization, err := json.Marshal(result.DriverUtilization)
	if err != nil {
		return "", fmt.Errorf("encode driver_utilization: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO simulation_results (`+resultColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		id, result.Timestamp,
		result.Parameters.AvailableDrivers, result.Parameters.RouteStartTime,
		result.Parameters.MaxHoursPerDriver,
		result.KPIs.TotalOrders, result.KPIs.TotalRevenue, result.KPIs.TotalProfit,
		result.KPIs.TotalPenalties, result.KPIs.TotalBonus, result.KPIs.TotalFuelCost,
		result.KPIs.AvgDeliveryTime, result.KPIs.OnTimeCount,
		result.KPIs.OnTimePercentage, result.KPIs.EfficiencyScore,
		types.JSONText(breakdown), types.JSONText(utilization),
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *ResultStore) MostRecent(ctx context.Context, n int) ([]models.SimulationResult, error) {
	var rows []resultRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT `+resultColumns+`
		FROM simulation_results
		ORDER BY run_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, err
	}

	results := make([]models.SimulationResult, 0, len(rows))
	for i := range rows {
		result, err := rows[i].toResult()
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Latest returns the most recent snapshot, or an all-zero snapshot when no
// run has been persisted yet.
func (s *ResultStore) Latest(ctx context.Context) (models.SimulationResult, error) {
	var row resultRow
	err := s.db.GetContext(ctx, &row, `
		SELECT `+resultColumns+`
		FROM simulation_results
		ORDER BY run_at DESC, id DESC
		LIMIT 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SimulationResult{}, nil
	}
	if err != nil {
		return models.SimulationResult{}, err
	}

	return row.toResult()
}
