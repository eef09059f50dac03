package simulation

import "fleetsim-backend/internal/models"

// Company rule constants. Currency amounts are in rupees, times in minutes.
const (
	trafficMultiplierMedium = 1.2
	trafficMultiplierHigh   = 1.5
	highTrafficSurchargeKm  = 2.0 // extra fuel rate under high traffic

	fatigueShiftHours = 8.0 // strictly above this triggers the fatigue rule
	fatigueMultiplier = 1.3

	deliveryToleranceMin = 10.0
	latePenaltyRs        = 50.0

	bonusValueThresholdRs = 1000.0
	bonusRate             = 0.10

	baseFuelRatePerKm = 5.0
)

// OrderResult is the evaluated outcome of a single allocated order.
type OrderResult struct {
	OrderID        int     `json:"order_id"`
	AssignedDriver string  `json:"assigned_driver"`
	VehicleType    string  `json:"vehicle_type"`
	ActualTime     float64 `json:"actual_time_minutes"`
	ExpectedTime   float64 `json:"expected_time_minutes"`
	OnTime         bool    `json:"on_time"`
	Penalty        float64 `json:"penalty_rs"`
	Bonus          float64 `json:"bonus_rs"`
	FuelCost       float64 `json:"fuel_cost_rs"`
	Profit         float64 `json:"profit_rs"`
	Revenue        float64 `json:"revenue_rs"`
}

// EvaluateOrder applies the company rule set to one order given its
// assigned driver and resolved route.
//
// Bonus and penalty are computed independently, but the shared on-time
// condition means at most one of them is ever non-zero for an order.
func EvaluateOrder(order models.Order, driver models.Driver, route models.Route) OrderResult {
	multiplier := 1.0
	surcharge := 0.0
	switch route.TrafficLevel {
	case models.TrafficHigh:
		multiplier = trafficMultiplierHigh
		surcharge = highTrafficSurchargeKm
	case models.TrafficMedium:
		multiplier = trafficMultiplierMedium
	}

	// Fatigue compounds the traffic multiplier: a tired driver is slower
	// on top of whatever the traffic costs.
	if driver.CurrentShiftHours > fatigueShiftHours {
		multiplier *= fatigueMultiplier
	}

	expected := route.BaseTimeMin + deliveryToleranceMin
	actual := route.BaseTimeMin * multiplier
	onTime := actual <= expected

	penalty := 0.0
	if !onTime {
		penalty = latePenaltyRs
	}

	bonus := 0.0
	if order.ValueRs > bonusValueThresholdRs && onTime {
		bonus = order.ValueRs * bonusRate
	}

	fuelCost := route.DistanceKm * (baseFuelRatePerKm + surcharge)

	return OrderResult{
		OrderID:        order.OrderID,
		AssignedDriver: driver.Name,
		VehicleType:    route.VehicleCategory(),
		ActualTime:     actual,
		ExpectedTime:   expected,
		OnTime:         onTime,
		Penalty:        penalty,
		Bonus:          bonus,
		FuelCost:       fuelCost,
		Profit:         order.ValueRs + bonus - penalty - fuelCost,
		Revenue:        order.ValueRs,
	}
}

// Evaluate runs the rule set over every assignment, resolving routes
// through an indexed lookup. Assignments whose route is missing from the
// fetched set are skipped rather than failing the run; the skip count lets
// the caller surface the inconsistency.
func Evaluate(assignments []Assignment, routes []models.Route) (results []OrderResult, skipped int) {
	byRouteID := make(map[int]models.Route, len(routes))
	for _, rt := range routes {
		byRouteID[rt.RouteID] = rt
	}

	results = make([]OrderResult, 0, len(assignments))
	for _, a := range assignments {
		route, ok := byRouteID[a.Order.RouteID]
		if !ok {
			skipped++
			continue
		}
		results = append(results, EvaluateOrder(a.Order, a.Driver, route))
	}

	return results, skipped
}
