package main

import (
	"context"
	"database/sql"
	"delivery-fixture-generator/internal/config"
	"delivery-fixture-generator/internal/platform/db"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// main migrates the fixture schema and applies a generated seed script.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	scriptPath := config.Get("SCRIPT_PATH", "scripts/seed_data.sql")
	if err := migrateAndApply(ctx, conn, scriptPath); err != nil {
		log.Fatal(err)
	}
}

func migrateAndApply(ctx context.Context, conn *sql.DB, scriptPath string) error {
	log.Println("Migrating fixture schema...")
	if err := db.Migrate(conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read seed script %q: %w", scriptPath, err)
	}

	log.Printf("Applying seed script path=%s bytes=%d", scriptPath, len(script))
	if err := db.ApplyScript(ctx, conn, string(script)); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
