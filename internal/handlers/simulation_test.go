package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim-backend/internal/models"
	"fleetsim-backend/internal/simulation"
)

type stubFleet struct {
	orders  []models.Order
	routes  []models.Route
	drivers []models.Driver
}

func (f *stubFleet) ListOrders(ctx context.Context) ([]models.Order, error) { return f.orders, nil }
func (f *stubFleet) ListRoutes(ctx context.Context) ([]models.Route, error) { return f.routes, nil }
func (f *stubFleet) ListDrivers(ctx context.Context, limit int) ([]models.Driver, error) {
	if limit < len(f.drivers) {
		return f.drivers[:limit], nil
	}
	return f.drivers, nil
}

type stubStore struct {
	results []models.SimulationResult // newest first
}

func (s *stubStore) Create(ctx context.Context, result models.SimulationResult) (string, error) {
	result.ID = fmt.Sprintf("snapshot-%d", len(s.results)+1)
	s.results = append([]models.SimulationResult{result}, s.results...)
	return result.ID, nil
}

func (s *stubStore) MostRecent(ctx context.Context, n int) ([]models.SimulationResult, error) {
	if n > len(s.results) {
		n = len(s.results)
	}
	return s.results[:n], nil
}

func (s *stubStore) Latest(ctx context.Context) (models.SimulationResult, error) {
	if len(s.results) == 0 {
		return models.SimulationResult{}, nil
	}
	return s.results[0], nil
}

type recordingNotifier struct {
	events []models.SimulationResult
}

func (n *recordingNotifier) SimulationCompleted(result models.SimulationResult) {
	n.events = append(n.events, result)
}

func stubEngine(store *stubStore) *simulation.Engine {
	return &simulation.Engine{
		Fleet: &stubFleet{
			orders: []models.Order{
				{OrderID: 1, RouteID: 1, ValueRs: 500},
				{OrderID: 2, RouteID: 1, ValueRs: 1500},
			},
			routes: []models.Route{
				{RouteID: 1, DistanceKm: 10, TrafficLevel: models.TrafficLow, BaseTimeMin: 30},
			},
			drivers: []models.Driver{
				{ID: "d1", Name: "Amit", CurrentShiftHours: 4},
			},
		},
		Store: store,
	}
}

func postSimulation(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/simulation/run", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRunSimulationSuccess(t *testing.T) {
	store := &stubStore{}
	notifier := &recordingNotifier{}
	handler := RunSimulation(stubEngine(store), notifier)

	rec := postSimulation(t, handler,
		`{"available_drivers": 1, "route_start_time": "09:00", "max_hours_per_driver": 8}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var res RunSimulationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Simulation completed", res.Message)
	assert.Equal(t, "snapshot-1", res.SimulationID)
	assert.Equal(t, 2, res.KPIs.TotalOrders)
	assert.Equal(t, 2000.0, res.KPIs.TotalRevenue)
	require.Len(t, res.DriverUtilization, 1)
	assert.Equal(t, "Amit", res.DriverUtilization[0].Driver)

	require.Len(t, store.results, 1)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "snapshot-1", notifier.events[0].ID)
}

func TestRunSimulationMissingParameters(t *testing.T) {
	handler := RunSimulation(stubEngine(&stubStore{}), nil)

	rec := postSimulation(t, handler, `{"route_start_time": "09:00"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res struct {
		Error    string   `json:"error"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Missing required parameters", res.Error)
	assert.Equal(t, []string{"available_drivers", "max_hours_per_driver"}, res.Required)
}

func TestRunSimulationInvalidParameters(t *testing.T) {
	handler := RunSimulation(stubEngine(&stubStore{}), nil)

	rec := postSimulation(t, handler,
		`{"available_drivers": 1, "route_start_time": "9am", "max_hours_per_driver": 8}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res struct {
		Error string `json:"error"`
		Field string `json:"field"`
		Rule  string `json:"rule"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Invalid parameter format", res.Error)
	assert.Equal(t, "route_start_time", res.Field)
	assert.NotEmpty(t, res.Rule)
}

func TestRunSimulationInsufficientData(t *testing.T) {
	store := &stubStore{}
	engine := stubEngine(store)
	engine.Fleet = &stubFleet{} // nothing loaded yet
	handler := RunSimulation(engine, nil)

	rec := postSimulation(t, handler,
		`{"available_drivers": 1, "route_start_time": "09:00", "max_hours_per_driver": 8}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, store.results)
}

func TestGetSimulationHistory(t *testing.T) {
	store := &stubStore{}
	engine := stubEngine(store)
	for i := 0; i < 3; i++ {
		_, err := engine.Run(context.Background(), models.SimulationParameters{
			AvailableDrivers: 1, RouteStartTime: "09:00", MaxHoursPerDriver: 8,
		})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/simulation/history?limit=2", nil)
	rec := httptest.NewRecorder()
	GetSimulationHistory(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var history []models.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "snapshot-3", history[0].ID)
	assert.Equal(t, "snapshot-2", history[1].ID)
}

func TestGetSimulationStatsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/simulation/stats", nil)
	rec := httptest.NewRecorder()
	GetSimulationStats(&stubStore{})(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalDeliveries)
	assert.Zero(t, stats.OnTime)
	assert.Zero(t, stats.Late)
	assert.Zero(t, stats.OnTimeRate)
	assert.Zero(t, stats.EfficiencyScore)
	assert.Empty(t, stats.FuelCosts)
	assert.Empty(t, stats.LastUpdated)
}

func TestGetSimulationStatsLatest(t *testing.T) {
	store := &stubStore{}
	engine := stubEngine(store)
	_, err := engine.Run(context.Background(), models.SimulationParameters{
		AvailableDrivers: 1, RouteStartTime: "09:00", MaxHoursPerDriver: 8,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/simulation/stats", nil)
	rec := httptest.NewRecorder()
	GetSimulationStats(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalDeliveries)
	assert.Equal(t, 2, stats.OnTime)
	assert.Equal(t, 0, stats.Late)
	assert.Equal(t, 1.0, stats.OnTimeRate)
	assert.Equal(t, 100.0, stats.EfficiencyScore)
	assert.Equal(t, 2000.0, stats.TotalRevenue)
	assert.NotEmpty(t, stats.LastUpdated)
	assert.Contains(t, stats.FuelCosts, models.DefaultVehicleType)
}
