package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fleetsim-backend/internal/models"
	"fleetsim-backend/pkg/utils"
)

// GetRoutes returns all delivery routes
func GetRoutes(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var routes []models.Route
		err := db.Select(&routes, `
			SELECT id, route_id, distance_km, traffic_level, base_time_min, vehicle_type,
			       created_at, updated_at
			FROM routes
			ORDER BY route_id ASC
		`)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch routes")
			return
		}

		utils.JSON(w, http.StatusOK, routes)
	}
}

func GetRoute(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routeID := chi.URLParam(r, "id")

		var route models.Route
		err := db.Get(&route, `
			SELECT id, route_id, distance_km, traffic_level, base_time_min, vehicle_type,
			       created_at, updated_at
			FROM routes
			WHERE id = $1
		`, routeID)
		if err == sql.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "Route not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch route")
			return
		}

		utils.JSON(w, http.StatusOK, route)
	}
}

func validateRouteFields(distanceKm, baseTimeMin float64, traffic models.TrafficLevel) string {
	if distanceKm <= 0 {
		return "distance_km must be positive"
	}
	if baseTimeMin <= 0 {
		return "base_time_min must be positive"
	}
	if !traffic.Valid() {
		return "Invalid traffic level. Must be one of: Low, Medium, High"
	}
	return ""
}

func CreateRoute(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateRouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.RouteID <= 0 {
			utils.Error(w, http.StatusBadRequest, "route_id must be positive")
			return
		}
		if msg := validateRouteFields(req.DistanceKm, req.BaseTimeMin, req.TrafficLevel); msg != "" {
			utils.Error(w, http.StatusBadRequest, msg)
			return
		}

		var exists bool
		if err := db.Get(&exists, "SELECT EXISTS(SELECT 1 FROM routes WHERE route_id = $1)", req.RouteID); err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create route")
			return
		}
		if exists {
			utils.Error(w, http.StatusBadRequest, "A route with this route_id already exists")
			return
		}

		id := uuid.New().String()
		now := time.Now().Unix()

		var route models.Route
		err := db.Get(&route, `
			INSERT INTO routes (id, route_id, distance_km, traffic_level, base_time_min, vehicle_type, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING id, route_id, distance_km, traffic_level, base_time_min, vehicle_type, created_at, updated_at
		`, id, req.RouteID, req.DistanceKm, req.TrafficLevel, req.BaseTimeMin, req.VehicleType, now)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create route")
			return
		}

		utils.JSON(w, http.StatusCreated, route)
	}
}

func UpdateRoute(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routeID := chi.URLParam(r, "id")

		var req models.UpdateRouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var route models.Route
		err := db.Get(&route, "SELECT * FROM routes WHERE id = $1", routeID)
		if err == sql.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "Route not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch route")
			return
		}

		if req.RouteID != nil {
			route.RouteID = *req.RouteID
		}
		if req.DistanceKm != nil {
			route.DistanceKm = *req.DistanceKm
		}
		if req.TrafficLevel != nil {
			route.TrafficLevel = *req.TrafficLevel
		}
		if req.BaseTimeMin != nil {
			route.BaseTimeMin = *req.BaseTimeMin
		}
		if req.VehicleType != nil {
			route.VehicleType = *req.VehicleType
		}

		if route.RouteID <= 0 {
			utils.Error(w, http.StatusBadRequest, "route_id must be positive")
			return
		}
		if msg := validateRouteFields(route.DistanceKm, route.BaseTimeMin, route.TrafficLevel); msg != "" {
			utils.Error(w, http.StatusBadRequest, msg)
			return
		}
		route.UpdatedAt = time.Now().Unix()

		_, err = db.Exec(`
			UPDATE routes
			SET route_id = $1, distance_km = $2, traffic_level = $3, base_time_min = $4,
			    vehicle_type = $5, updated_at = $6
			WHERE id = $7
		`, route.RouteID, route.DistanceKm, route.TrafficLevel, route.BaseTimeMin,
			route.VehicleType, route.UpdatedAt, routeID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to update route")
			return
		}

		utils.JSON(w, http.StatusOK, route)
	}
}

// DeleteRoute removes a route unless any order still references it.
func DeleteRoute(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routeID := chi.URLParam(r, "id")

		var route models.Route
		err := db.Get(&route, "SELECT * FROM routes WHERE id = $1", routeID)
		if err == sql.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "Route not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch route")
			return
		}

		var orderCount int
		err = db.Get(&orderCount, "SELECT COUNT(*) FROM orders WHERE route_id = $1", route.RouteID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to delete route")
			return
		}
		if orderCount > 0 {
			utils.Error(w, http.StatusBadRequest, "Cannot delete route as it is being used by one or more orders")
			return
		}

		if _, err := db.Exec("DELETE FROM routes WHERE id = $1", routeID); err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to delete route")
			return
		}

		utils.JSON(w, http.StatusOK, map[string]string{"message": "Route deleted successfully"})
	}
}
