package models

// SimulationParameters are the caller-supplied inputs of a run. They are
// echoed back on success and persisted inside the snapshot, never stored
// standalone.
type SimulationParameters struct {
	AvailableDrivers  int     `json:"available_drivers"`
	RouteStartTime    string  `json:"route_start_time"` // HH:MM
	MaxHoursPerDriver float64 `json:"max_hours_per_driver"`
}

// KPISet holds the fleet-level aggregates of one run. The snapshot stores
// unrounded values; rounding happens only in display views.
type KPISet struct {
	TotalOrders      int     `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue_rs"`
	TotalProfit      float64 `json:"total_profit_rs"`
	TotalPenalties   float64 `json:"total_penalties_rs"`
	TotalBonus       float64 `json:"total_bonus_rs"`
	TotalFuelCost    float64 `json:"total_fuel_cost_rs"`
	AvgDeliveryTime  float64 `json:"avg_delivery_time_minutes"`
	OnTimeCount      int     `json:"on_time_count"`
	OnTimePercentage float64 `json:"on_time_delivery_percent"`
	EfficiencyScore  float64 `json:"efficiency_score"`
}

// DriverUtilization is the remaining-capacity share of one driver in the
// pool used for a run.
type DriverUtilization struct {
	Driver             string  `json:"driver"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

// SimulationResult is one immutable persisted snapshot: the parameters
// used, the KPIs computed, and the timestamp of the run.
type SimulationResult struct {
	ID                string               `json:"id"`
	Timestamp         int64                `json:"timestamp"` // Unix timestamp
	Parameters        SimulationParameters `json:"simulation_parameters"`
	KPIs              KPISet               `json:"kpis"`
	FuelCostBreakdown map[string]float64   `json:"fuel_cost_breakdown"`
	DriverUtilization []DriverUtilization  `json:"driver_utilization"`
}
