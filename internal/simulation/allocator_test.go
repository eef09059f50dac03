package simulation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim-backend/internal/models"
)

func makeOrders(n int) []models.Order {
	orders := make([]models.Order, n)
	for i := range orders {
		orders[i] = models.Order{OrderID: i + 1, ValueRs: 500, RouteID: 1}
	}
	return orders
}

func makeDrivers(n int) []models.Driver {
	drivers := make([]models.Driver, n)
	for i := range drivers {
		drivers[i] = models.Driver{ID: fmt.Sprintf("d%d", i), Name: fmt.Sprintf("Driver %d", i)}
	}
	return drivers
}

var oneRoute = []models.Route{{RouteID: 1, DistanceKm: 10, TrafficLevel: models.TrafficLow, BaseTimeMin: 30}}

func TestAllocateRoundRobin(t *testing.T) {
	cases := []struct {
		orders  int
		drivers int
	}{
		{orders: 1, drivers: 1},
		{orders: 5, drivers: 2},
		{orders: 7, drivers: 3},
		{orders: 3, drivers: 5},
		{orders: 12, drivers: 4},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%do_%dd", tc.orders, tc.drivers), func(t *testing.T) {
			orders := makeOrders(tc.orders)
			drivers := makeDrivers(tc.drivers)

			assignments, err := Allocate(orders, drivers, oneRoute)
			require.NoError(t, err)
			require.Len(t, assignments, tc.orders)

			for i, a := range assignments {
				assert.Equal(t, orders[i].OrderID, a.Order.OrderID)
				assert.Equal(t, drivers[i%tc.drivers].ID, a.Driver.ID,
					"order %d should go to driver %d", i, i%tc.drivers)
			}
		})
	}
}

func TestAllocateDeterministic(t *testing.T) {
	orders := makeOrders(9)
	drivers := makeDrivers(4)

	first, err := Allocate(orders, drivers, oneRoute)
	require.NoError(t, err)
	second, err := Allocate(orders, drivers, oneRoute)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAllocateInsufficientData(t *testing.T) {
	cases := []struct {
		name    string
		orders  []models.Order
		drivers []models.Driver
		routes  []models.Route
	}{
		{name: "no orders", orders: nil, drivers: makeDrivers(2), routes: oneRoute},
		{name: "no drivers", orders: makeOrders(2), drivers: nil, routes: oneRoute},
		{name: "no routes", orders: makeOrders(2), drivers: makeDrivers(2), routes: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Allocate(tc.orders, tc.drivers, tc.routes)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}
