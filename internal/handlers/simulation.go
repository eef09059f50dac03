package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"fleetsim-backend/internal/models"
	"fleetsim-backend/internal/simulation"
	"fleetsim-backend/pkg/utils"
)

// SnapshotNotifier receives every successfully persisted snapshot.
// Satisfied by the websocket hub; nil disables notifications.
type SnapshotNotifier interface {
	SimulationCompleted(result models.SimulationResult)
}

type RunSimulationResponse struct {
	Message           string                      `json:"message"`
	SimulationID      string                      `json:"simulation_id"`
	Parameters        models.SimulationParameters `json:"simulation_parameters"`
	KPIs              models.KPISet               `json:"kpis"`
	FuelCostBreakdown map[string]float64          `json:"fuel_cost_breakdown"`
	DriverUtilization []models.DriverUtilization  `json:"driver_utilization"`
}

// RunSimulation executes one simulation run and persists its snapshot.
func RunSimulation(engine *simulation.Engine, notifier SnapshotNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req simulation.RunRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		params, err := req.Validate()
		if err != nil {
			var missing *simulation.MissingParametersError
			var invalid *simulation.InvalidParameterError
			switch {
			case errors.As(err, &missing):
				utils.JSON(w, http.StatusBadRequest, map[string]interface{}{
					"error":    "Missing required parameters",
					"required": missing.Missing,
				})
			case errors.As(err, &invalid):
				utils.JSON(w, http.StatusBadRequest, map[string]interface{}{
					"error": "Invalid parameter format",
					"field": invalid.Field,
					"rule":  invalid.Rule,
				})
			default:
				utils.Error(w, http.StatusBadRequest, "Invalid parameters")
			}
			return
		}

		result, err := engine.Run(r.Context(), params)
		if err != nil {
			if errors.Is(err, simulation.ErrInsufficientData) {
				utils.Error(w, http.StatusNotFound, "Not enough data to run simulation")
				return
			}
			log.Printf("❌ Simulation run failed: %v", err)
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if notifier != nil {
			notifier.SimulationCompleted(result)
		}

		utils.JSON(w, http.StatusOK, RunSimulationResponse{
			Message:           "Simulation completed",
			SimulationID:      result.ID,
			Parameters:        result.Parameters,
			KPIs:              result.KPIs,
			FuelCostBreakdown: result.FuelCostBreakdown,
			DriverUtilization: result.DriverUtilization,
		})
	}
}

// GetSimulationHistory returns the most recent snapshots, newest first.
func GetSimulationHistory(store simulation.ResultStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 10
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
				limit = parsed
			}
		}

		history, err := store.MostRecent(r.Context(), limit)
		if err != nil {
			log.Printf("❌ History fetch failed: %v", err)
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if history == nil {
			history = []models.SimulationResult{}
		}

		utils.JSON(w, http.StatusOK, history)
	}
}

// StatsResponse is the dashboard view of the latest snapshot. Field names
// follow the dashboard's camelCase contract; percentages are rounded to
// whole numbers here, never in the stored snapshot.
type StatsResponse struct {
	TotalDeliveries int                `json:"totalDeliveries"`
	OnTime          int                `json:"onTime"`
	Late            int                `json:"late"`
	OnTimeRate      float64            `json:"onTimeRate"` // fraction in [0, 1]
	EfficiencyScore float64            `json:"efficiencyScore"`
	TotalRevenue    float64            `json:"totalRevenue"`
	TotalProfit     float64            `json:"totalProfit"`
	FuelCosts       map[string]float64 `json:"fuelCosts"`
	LastUpdated     string             `json:"lastUpdated,omitempty"`
}

// GetSimulationStats returns display KPIs derived from the latest
// snapshot, or an all-zero payload when no run has happened yet.
func GetSimulationStats(store simulation.ResultStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := store.Latest(r.Context())
		if err != nil {
			log.Printf("❌ Stats fetch failed: %v", err)
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		stats := StatsResponse{
			TotalDeliveries: latest.KPIs.TotalOrders,
			OnTime:          latest.KPIs.OnTimeCount,
			Late:            latest.KPIs.TotalOrders - latest.KPIs.OnTimeCount,
			EfficiencyScore: math.Round(latest.KPIs.EfficiencyScore),
			TotalRevenue:    latest.KPIs.TotalRevenue,
			TotalProfit:     latest.KPIs.TotalProfit,
			FuelCosts:       latest.FuelCostBreakdown,
		}
		if latest.KPIs.TotalOrders > 0 {
			stats.OnTimeRate = float64(latest.KPIs.OnTimeCount) / float64(latest.KPIs.TotalOrders)
		}
		if stats.FuelCosts == nil {
			stats.FuelCosts = map[string]float64{}
		}
		if latest.ID != "" {
			stats.LastUpdated = time.Unix(latest.Timestamp, 0).UTC().Format(time.RFC3339)
		}

		utils.JSON(w, http.StatusOK, stats)
	}
}
