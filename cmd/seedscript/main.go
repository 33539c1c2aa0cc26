package main

import (
	"bytes"
	"context"
	"delivery-fixture-generator/internal/adapters/sqlscript"
	"delivery-fixture-generator/internal/config"
	"delivery-fixture-generator/internal/platform/obs"
	"delivery-fixture-generator/internal/services"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main renders one transactional bulk-load script and writes it to OUTPUT_PATH.
func main() {
	os.Exit(execute())
}

func execute() int {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	logger, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "json"))
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := obs.WithRunID(context.Background(), uuid.NewString())
	if err := run(ctx, logger); err != nil {
		logger.Error("seed script generation failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, logger *zap.Logger) (err error) {
	defer obs.Time(ctx, logger, "seedscript.run")(&err)

	cfg, err := config.LoadGenerator(time.Now())
	if err != nil {
		return err
	}

	builder, err := services.NewBuilder(cfg)
	if err != nil {
		return err
	}

	graph, err := builder.Build(cfg.BatchSize)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := sqlscript.NewRenderer(sqlscript.DefaultTables()).Render(&buf, graph); err != nil {
		return err
	}

	outPath := config.Get("OUTPUT_PATH", "scripts/seed_data.sql")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write script %q: %w", outPath, err)
	}

	logger.Info("seed script written",
		zap.String("path", outPath),
		zap.Int("customers", len(graph.Customers)),
		zap.Int("addresses", len(graph.Addresses)),
		zap.Int("orders", len(graph.Orders)),
		zap.Time("reference_time", cfg.ReferenceTime))

	return nil
}
