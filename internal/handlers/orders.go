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

// GetOrders returns all orders
func GetOrders(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var orders []models.Order
		err := db.Select(&orders, `
			SELECT id, order_id, value_rs, route_id, delivery_time, created_at, updated_at
			FROM orders
			ORDER BY created_at ASC, order_id ASC
		`)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		utils.JSON(w, http.StatusOK, orders)
	}
}

func GetOrder(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		var order models.Order
		err := db.Get(&order, `
			SELECT id, order_id, value_rs, route_id, delivery_time, created_at, updated_at
			FROM orders
			WHERE id = $1
		`, orderID)
		if err == sql.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch order")
			return
		}

		utils.JSON(w, http.StatusOK, order)
	}
}

func routeExists(db *sqlx.DB, routeID int) (bool, error) {
	var exists bool
	err := db.Get(&exists, "SELECT EXISTS(SELECT 1 FROM routes WHERE route_id = $1)", routeID)
	return exists, err
}

func CreateOrder(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.OrderID <= 0 {
			utils.Error(w, http.StatusBadRequest, "order_id must be positive")
			return
		}
		if req.ValueRs < 0 {
			utils.Error(w, http.StatusBadRequest, "value_rs must be non-negative")
			return
		}

		exists, err := routeExists(db, req.RouteID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create order")
			return
		}
		if !exists {
			utils.Error(w, http.StatusBadRequest, "Route not found")
			return
		}

		id := uuid.New().String()
		now := time.Now().Unix()

		var order models.Order
		err = db.Get(&order, `
			INSERT INTO orders (id, order_id, value_rs, route_id, delivery_time, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING id, order_id, value_rs, route_id, delivery_time, created_at, updated_at
		`, id, req.OrderID, req.ValueRs, req.RouteID, req.DeliveryTime, now)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create order")
			return
		}

		utils.JSON(w, http.StatusCreated, order)
	}
}

func UpdateOrder(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		var req models.UpdateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var order models.Order
		err := db.Get(&order, "SELECT * FROM orders WHERE id = $1", orderID)
		if err == sql.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch order")
			return
		}

		if req.OrderID != nil {
			order.OrderID = *req.OrderID
		}
		if req.ValueRs != nil {
			if *req.ValueRs < 0 {
				utils.Error(w, http.StatusBadRequest, "value_rs must be non-negative")
				return
			}
			order.ValueRs = *req.ValueRs
		}
		if req.RouteID != nil {
			exists, err := routeExists(db, *req.RouteID)
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, "Failed to update order")
				return
			}
			if !exists {
				utils.Error(w, http.StatusBadRequest, "Route not found")
				return
			}
			order.RouteID = *req.RouteID
		}
		if req.DeliveryTime != nil {
			order.DeliveryTime = req.DeliveryTime
		}
		order.UpdatedAt = time.Now().Unix()

		_, err = db.Exec(`
			UPDATE orders
			SET order_id = $1, value_rs = $2, route_id = $3, delivery_time = $4, updated_at = $5
			WHERE id = $6
		`, order.OrderID, order.ValueRs, order.RouteID, order.DeliveryTime, order.UpdatedAt, orderID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to update order")
			return
		}

		utils.JSON(w, http.StatusOK, order)
	}
}

func DeleteOrder(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		result, err := db.Exec("DELETE FROM orders WHERE id = $1", orderID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to delete order")
			return
		}

		rows, _ := result.RowsAffected()
		if rows == 0 {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}

		utils.JSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
	}
}
