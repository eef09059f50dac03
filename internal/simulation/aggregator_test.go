package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim-backend/internal/models"
)

func TestAggregateEmptyResults(t *testing.T) {
	kpis := Aggregate(nil)

	assert.Equal(t, 0, kpis.TotalOrders)
	assert.Equal(t, 0.0, kpis.AvgDeliveryTime)
	assert.Equal(t, 0.0, kpis.OnTimePercentage)
	assert.Equal(t, 0.0, kpis.EfficiencyScore)
}

func TestAggregateTotals(t *testing.T) {
	results := []OrderResult{
		{Revenue: 500, Profit: 450, Penalty: 0, Bonus: 0, FuelCost: 50, ActualTime: 30, OnTime: true},
		{Revenue: 1500, Profit: 1610, Penalty: 0, Bonus: 150, FuelCost: 40, ActualTime: 36, OnTime: true},
		{Revenue: 500, Profit: 380, Penalty: 50, Bonus: 0, FuelCost: 70, ActualTime: 58.5, OnTime: false},
	}

	kpis := Aggregate(results)

	assert.Equal(t, 3, kpis.TotalOrders)
	assert.Equal(t, 2500.0, kpis.TotalRevenue)
	assert.Equal(t, 2440.0, kpis.TotalProfit)
	assert.Equal(t, 50.0, kpis.TotalPenalties)
	assert.Equal(t, 150.0, kpis.TotalBonus)
	assert.Equal(t, 160.0, kpis.TotalFuelCost)
	assert.InDelta(t, 41.5, kpis.AvgDeliveryTime, 1e-9)
	assert.Equal(t, 2, kpis.OnTimeCount)
	assert.InDelta(t, 200.0/3.0, kpis.OnTimePercentage, 1e-9)
}

// The two percentage fields are distinct names for one formula; they must
// never diverge.
func TestAggregateEfficiencyEqualsOnTimePercentage(t *testing.T) {
	sets := [][]OrderResult{
		nil,
		{{OnTime: true}},
		{{OnTime: true}, {OnTime: false}},
		{{OnTime: false}, {OnTime: false}, {OnTime: true}, {OnTime: true}, {OnTime: true}},
	}

	for _, results := range sets {
		kpis := Aggregate(results)
		assert.Equal(t, kpis.OnTimePercentage, kpis.EfficiencyScore)
	}
}

// total_profit must equal sum(revenue) + sum(bonus) - sum(penalty) - sum(fuel).
func TestAggregateProfitConsistency(t *testing.T) {
	routes := []models.Route{
		{RouteID: 1, DistanceKm: 10, TrafficLevel: models.TrafficLow, BaseTimeMin: 30},
		{RouteID: 2, DistanceKm: 25, TrafficLevel: models.TrafficHigh, BaseTimeMin: 60},
		{RouteID: 3, DistanceKm: 12, TrafficLevel: models.TrafficMedium, BaseTimeMin: 40, VehicleType: "van"},
	}
	orders := []models.Order{
		{OrderID: 1, RouteID: 1, ValueRs: 500},
		{OrderID: 2, RouteID: 2, ValueRs: 2200},
		{OrderID: 3, RouteID: 3, ValueRs: 1200},
		{OrderID: 4, RouteID: 1, ValueRs: 900},
		{OrderID: 5, RouteID: 2, ValueRs: 50},
	}
	drivers := []models.Driver{
		{Name: "Amit", CurrentShiftHours: 3},
		{Name: "Priya", CurrentShiftHours: 10},
	}

	assignments, err := Allocate(orders, drivers, routes)
	require.NoError(t, err)
	results, skipped := Evaluate(assignments, routes)
	require.Zero(t, skipped)

	kpis := Aggregate(results)

	assert.InDelta(t,
		kpis.TotalRevenue+kpis.TotalBonus-kpis.TotalPenalties-kpis.TotalFuelCost,
		kpis.TotalProfit, 1e-9)
}

func TestFuelCostBreakdownByVehicleType(t *testing.T) {
	results := []OrderResult{
		{VehicleType: "standard", FuelCost: 50},
		{VehicleType: "van", FuelCost: 70},
		{VehicleType: "standard", FuelCost: 30},
	}

	breakdown := FuelCostBreakdown(results)

	assert.Equal(t, map[string]float64{"standard": 80, "van": 70}, breakdown)
}

func TestDriverUtilization(t *testing.T) {
	drivers := []models.Driver{
		{Name: "Amit", CurrentShiftHours: 6},
		{Name: "Priya", CurrentShiftHours: 0},
		{Name: "Ravi", CurrentShiftHours: 12},
	}

	utilization := DriverUtilization(drivers, 12)

	require.Len(t, utilization, 3)
	assert.Equal(t, models.DriverUtilization{Driver: "Amit", UtilizationPercent: 50}, utilization[0])
	assert.Equal(t, models.DriverUtilization{Driver: "Priya", UtilizationPercent: 100}, utilization[1])
	assert.Equal(t, models.DriverUtilization{Driver: "Ravi", UtilizationPercent: 0}, utilization[2])
}
