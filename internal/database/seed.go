package database

import (
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func SeedManagers(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM managers"); err != nil {
		return err
	}

	if count > 0 {
		log.Println("✓ Managers already seeded, skipping...")
		return nil
	}

	log.Println("🌱 Seeding manager account...")

	password, err := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO managers (id, email, password, name)
		VALUES ($1, $2, $3, $4)
	`, uuid.New().String(), "manager@fleetsim.test", string(password), "Fleet Manager")
	if err != nil {
		return err
	}

	log.Println("✓ Manager account seeded (manager@fleetsim.test)")
	return nil
}

func SeedFleet(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM drivers"); err != nil {
		return err
	}

	if count > 0 {
		log.Println("✓ Fleet data already seeded, skipping...")
		return nil
	}

	log.Println("🌱 Seeding demo fleet data...")

	drivers := []struct {
		name       string
		shiftHours float64
		pastWeek   []float64
	}{
		{"Amit", 6, []float64{6, 8, 7, 7, 7, 6, 10}},
		{"Priya", 6, []float64{10, 9, 6, 6, 6, 7, 7}},
		{"Rahul", 10, []float64{10, 10, 6, 10, 7, 8, 10}},
		{"Neha", 9, []float64{10, 8, 6, 7, 9, 8, 8}},
		{"Karan", 7, []float64{7, 8, 6, 6, 9, 6, 8}},
		{"Sneha", 8, []float64{10, 8, 6, 9, 10, 6, 9}},
		{"Vikram", 6, []float64{10, 8, 10, 8, 10, 7, 6}},
		{"Anjali", 6, []float64{7, 8, 6, 7, 6, 9, 8}},
		{"Manoj", 9, []float64{8, 7, 8, 8, 7, 8, 6}},
		{"Pooja", 10, []float64{7, 10, 7, 7, 9, 9, 8}},
	}

	for _, d := range drivers {
		_, err := db.Exec(`
			INSERT INTO drivers (id, name, current_shift_hours, past_week_hours)
			VALUES ($1, $2, $3, $4)
		`, uuid.New().String(), d.name, d.shiftHours, pq.Float64Array(d.pastWeek))
		if err != nil {
			return err
		}
	}

	routes := []struct {
		routeID     int
		distanceKm  float64
		traffic     string
		baseTimeMin float64
		vehicleType string
	}{
		{1, 25, "High", 125, "van"},
		{2, 12, "High", 48, "bike"},
		{3, 6, "Low", 18, "bike"},
		{4, 15, "Medium", 60, "van"},
		{5, 7, "Low", 35, "bike"},
		{6, 15, "Low", 75, "truck"},
		{7, 20, "Medium", 100, "truck"},
		{8, 19, "Low", 76, "van"},
		{9, 9, "Low", 45, "bike"},
		{10, 22, "High", 88, "truck"},
	}

	for _, r := range routes {
		_, err := db.Exec(`
			INSERT INTO routes (id, route_id, distance_km, traffic_level, base_time_min, vehicle_type)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.New().String(), r.routeID, r.distanceKm, r.traffic, r.baseTimeMin, r.vehicleType)
		if err != nil {
			return err
		}
	}

	orders := []struct {
		orderID int
		valueRs float64
		routeID int
	}{
		{1, 2594, 7}, {2, 1835, 6}, {3, 766, 9}, {4, 572, 1}, {5, 826, 3},
		{6, 2642, 2}, {7, 1763, 10}, {8, 2367, 5}, {9, 247, 2}, {10, 1292, 6},
		{11, 1402, 7}, {12, 2058, 9}, {13, 2250, 8}, {14, 635, 2}, {15, 2279, 7},
		{16, 826, 3}, {17, 2059, 1}, {18, 2290, 10}, {19, 1545, 5}, {20, 996, 4},
	}

	for _, o := range orders {
		_, err := db.Exec(`
			INSERT INTO orders (id, order_id, value_rs, route_id)
			VALUES ($1, $2, $3, $4)
		`, uuid.New().String(), o.orderID, o.valueRs, o.routeID)
		if err != nil {
			return err
		}
	}

	log.Printf("✓ Seeded %d drivers, %d routes, %d orders", len(drivers), len(routes), len(orders))
	return nil
}
