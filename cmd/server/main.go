package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-scheduler-service/internal/adapters/cache"
	"trip-scheduler-service/internal/adapters/repositories"
	"trip-scheduler-service/internal/api"
	"trip-scheduler-service/internal/config"
	"trip-scheduler-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/trips.json")
	defaultStart := config.Get("DEFAULT_TRIP_START", "")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteTripRepository(db)

	// The schedule cache is optional: without REDIS_ADDR every schedule
	// lookup recomputes from storage.
	var scheduleCache ports.ScheduleCache
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ttl := 24 * time.Hour
		if v := config.Get("SCHEDULE_CACHE_TTL", ""); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				log.Fatalf("invalid SCHEDULE_CACHE_TTL %q: %v", v, err)
			}
			ttl = parsed
		}
		scheduleCache = cache.NewRedisScheduleCache(client, ttl)
		log.Printf("schedule cache enabled addr=%s ttl=%s", addr, ttl)
	}

	router := api.NewRouter(repo, scheduleCache, defaultStart)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
