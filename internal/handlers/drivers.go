package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fleetsim-backend/internal/models"
	"fleetsim-backend/pkg/utils"
)

// GetDrivers returns the full roster in fetch order
func GetDrivers(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var drivers []models.Driver
		err := db.Select(&drivers, `
			SELECT id, name, current_shift_hours, past_week_hours, created_at, updated_at
			FROM drivers
			ORDER BY created_at ASC, id ASC
		`)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch drivers")
			return
		}

		utils.JSON(w, http.StatusOK, drivers)
	}
}

func GetDriver(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		driverID := chi.URLParam(r, "id")

		var driver models.Driver
		err := db.Get(&driver, `
			SELECT id, name, current_shift_hours, past_week_hours, created_at, updated_at
			FROM drivers
			WHERE id = $1
		`, driverID)
		if err == sql.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "Driver not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch driver")
			return
		}

		utils.JSON(w, http.StatusOK, driver)
	}
}

func CreateDriver(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateDriverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Name == "" {
			utils.Error(w, http.StatusBadRequest, "Missing required field: name")
			return
		}
		if req.CurrentShiftHours < 0 {
			utils.Error(w, http.StatusBadRequest, "current_shift_hours must be non-negative")
			return
		}

		id := uuid.New().String()
		now := time.Now().Unix()

		var driver models.Driver
		err := db.Get(&driver, `
			INSERT INTO drivers (id, name, current_shift_hours, past_week_hours, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING id, name, current_shift_hours, past_week_hours, created_at, updated_at
		`, id, req.Name, req.CurrentShiftHours, pq.Float64Array(req.PastWeekHours), now)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to create driver")
			return
		}

		utils.JSON(w, http.StatusCreated, driver)
	}
}

func UpdateDriver(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		driverID := chi.URLParam(r, "id")

		var req models.UpdateDriverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var driver models.Driver
		err := db.Get(&driver, "SELECT * FROM drivers WHERE id = $1", driverID)
		if err == sql.ErrNoRows {
			utils.Error(w, http.StatusNotFound, "Driver not found")
			return
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to fetch driver")
			return
		}

		if req.Name != nil {
			driver.Name = *req.Name
		}
		if req.CurrentShiftHours != nil {
			if *req.CurrentShiftHours < 0 {
				utils.Error(w, http.StatusBadRequest, "current_shift_hours must be non-negative")
				return
			}
			driver.CurrentShiftHours = *req.CurrentShiftHours
		}
		if req.PastWeekHours != nil {
			driver.PastWeekHours = pq.Float64Array(req.PastWeekHours)
		}
		driver.UpdatedAt = time.Now().Unix()

		_, err = db.Exec(`
			UPDATE drivers
			SET name = $1, current_shift_hours = $2, past_week_hours = $3, updated_at = $4
			WHERE id = $5
		`, driver.Name, driver.CurrentShiftHours, driver.PastWeekHours, driver.UpdatedAt, driverID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to update driver")
			return
		}

		utils.JSON(w, http.StatusOK, driver)
	}
}

func DeleteDriver(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		driverID := chi.URLParam(r, "id")

		result, err := db.Exec("DELETE FROM drivers WHERE id = $1", driverID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to delete driver")
			return
		}

		rows, _ := result.RowsAffected()
		if rows == 0 {
			utils.Error(w, http.StatusNotFound, "Driver not found")
			return
		}

		utils.JSON(w, http.StatusOK, map[string]string{"message": "Driver deleted successfully"})
	}
}
