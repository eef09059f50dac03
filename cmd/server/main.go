package main

import (
	"log"
	"net/http"
	"os"

	"fleetsim-backend/internal/database"
	"fleetsim-backend/internal/handlers"
	"fleetsim-backend/internal/middleware"
	"fleetsim-backend/internal/simulation"
	"fleetsim-backend/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("🚚 FLEETSIM BACKEND SERVER STARTING")

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables from system")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	if os.Getenv("APP_JWT_SECRET") == "" {
		log.Fatal("APP_JWT_SECRET environment variable is required")
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Database migrations completed")

	if err := database.SeedManagers(db); err != nil {
		log.Fatal(err)
	}
	if err := database.SeedFleet(db); err != nil {
		log.Fatal(err)
	}

	// Simulation engine behind its read/write boundaries
	resultStore := database.NewResultStore(db)
	engine := &simulation.Engine{
		Fleet: database.NewFleetStore(db),
		Store: resultStore,
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()
	log.Println("✅ WebSocket hub started")

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Post("/api/auth/login", handlers.Login(db))

	// Dashboard event stream
	r.Get("/ws", websocket.HandleWebSocket(wsHub))

	r.Route("/api", func(r chi.Router) {
		// Read endpoints (dashboard polls these without a session)
		r.Get("/drivers", handlers.GetDrivers(db))
		r.Get("/drivers/{id}", handlers.GetDriver(db))
		r.Get("/routes", handlers.GetRoutes(db))
		r.Get("/routes/{id}", handlers.GetRoute(db))
		r.Get("/orders", handlers.GetOrders(db))
		r.Get("/orders/{id}", handlers.GetOrder(db))

		r.Get("/simulation/history", handlers.GetSimulationHistory(resultStore))
		r.Get("/simulation/stats", handlers.GetSimulationStats(resultStore))

		// Manager endpoints (require authentication)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)

			r.Post("/drivers", handlers.CreateDriver(db))
			r.Put("/drivers/{id}", handlers.UpdateDriver(db))
			r.Delete("/drivers/{id}", handlers.DeleteDriver(db))

			r.Post("/routes", handlers.CreateRoute(db))
			r.Put("/routes/{id}", handlers.UpdateRoute(db))
			r.Delete("/routes/{id}", handlers.DeleteRoute(db))

			r.Post("/orders", handlers.CreateOrder(db))
			r.Put("/orders/{id}", handlers.UpdateOrder(db))
			r.Delete("/orders/{id}", handlers.DeleteOrder(db))

			r.Post("/simulation/run", handlers.RunSimulation(engine, wsHub))
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server listening on http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
