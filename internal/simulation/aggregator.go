package simulation

import "fleetsim-backend/internal/models"

// Aggregate reduces per-order results into fleet-level KPIs.
//
// on_time_delivery_percent and efficiency_score are intentionally the same
// number: downstream consumers read both names, so both are filled from a
// single computation to rule out drift.
func Aggregate(results []OrderResult) models.KPISet {
	kpis := models.KPISet{TotalOrders: len(results)}

	var totalTime float64
	for _, r := range results {
		kpis.TotalRevenue += r.Revenue
		kpis.TotalProfit += r.Profit
		kpis.TotalPenalties += r.Penalty
		kpis.TotalBonus += r.Bonus
		kpis.TotalFuelCost += r.FuelCost
		totalTime += r.ActualTime
		if r.OnTime {
			kpis.OnTimeCount++
		}
	}

	if kpis.TotalOrders > 0 {
		kpis.AvgDeliveryTime = totalTime / float64(kpis.TotalOrders)
		onTimePercent := float64(kpis.OnTimeCount) / float64(kpis.TotalOrders) * 100
		kpis.OnTimePercentage = onTimePercent
		kpis.EfficiencyScore = onTimePercent
	}

	return kpis
}

// FuelCostBreakdown sums fuel costs per vehicle category.
func FuelCostBreakdown(results []OrderResult) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, r := range results {
		breakdown[r.VehicleType] += r.FuelCost
	}
	return breakdown
}

// DriverUtilization reports the remaining-capacity share of every driver
// in the pool used for the run.
func DriverUtilization(drivers []models.Driver, maxHoursPerDriver float64) []models.DriverUtilization {
	utilization := make([]models.DriverUtilization, 0, len(drivers))
	for _, d := range drivers {
		utilization = append(utilization, models.DriverUtilization{
			Driver:             d.Name,
			UtilizationPercent: (maxHoursPerDriver - d.CurrentShiftHours) / maxHoursPerDriver * 100,
		})
	}
	return utilization
}
