package simulation

import "fleetsim-backend/internal/models"

// Assignment pairs one order with the driver responsible for delivering it.
type Assignment struct {
	Order  models.Order
	Driver models.Driver
}

// Allocate distributes orders across the driver pool round-robin: order i
// goes to driver i mod len(drivers). The caller passes drivers already
// truncated to the requested pool size, in fetch order, which makes the
// mapping deterministic and reproducible for identical inputs.
//
// Routes are not consumed here, but the evaluator cannot run without them,
// so an empty route set fails the run at the same point as empty orders or
// an empty pool.
func Allocate(orders []models.Order, drivers []models.Driver, routes []models.Route) ([]Assignment, error) {
	if len(orders) == 0 || len(drivers) == 0 || len(routes) == 0 {
		return nil, ErrInsufficientData
	}

	assignments := make([]Assignment, 0, len(orders))
	next := 0
	for _, order := range orders {
		assignments = append(assignments, Assignment{Order: order, Driver: drivers[next]})
		next = (next + 1) % len(drivers)
	}

	return assignments, nil
}
