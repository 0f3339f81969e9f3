package main

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"trip-scheduler-service/internal/adapters/repositories"
	"trip-scheduler-service/internal/config"
	"trip-scheduler-service/internal/platform/db"
)

// dbtool initializes and seeds the Postgres variant of the trip store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL, err := config.MustGet("DATABASE_URL")
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/trips.json")
	if err := initAndSeed(conn, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedPostgresFromJSON(conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
