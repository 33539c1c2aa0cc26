package main

import (
	"context"
	"delivery-fixture-generator/internal/adapters/kafka"
	"delivery-fixture-generator/internal/adapters/orderapi"
	"delivery-fixture-generator/internal/adapters/redisq"
	"delivery-fixture-generator/internal/config"
	"delivery-fixture-generator/internal/platform/obs"
	"delivery-fixture-generator/internal/ports"
	"delivery-fixture-generator/internal/services"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main generates ORDERS_PER_CITY orders for every anchor city and submits
// them one by one to the sink selected by SINK (http, kafka or redis).
func main() {
	os.Exit(execute())
}

// execute returns the exit code once every deferred cleanup has run.
func execute() int {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	logger, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "json"))
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Termination stops the batch between two submissions; orders already
	// created stay created on the remote side.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = obs.WithRunID(ctx, uuid.NewString())

	if err := run(ctx, logger); err != nil {
		logger.Error("order load failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg, err := config.LoadGenerator(time.Now())
	if err != nil {
		return err
	}

	builder, err := services.NewBuilder(cfg)
	if err != nil {
		return err
	}

	sink, closeSink, err := newSink(ctx, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	report, err := services.NewLoader(builder, sink, logger).Load(ctx, cfg.OrdersPerCity)
	if report != nil {
		logger.Info("order load finished",
			zap.Int("created", report.Succeeded),
			zap.Int("total", report.Total),
			zap.Int("failed", report.Failed()))
		fmt.Printf("created %d/%d orders across %d cities\n", report.Succeeded, report.Total, len(cfg.Anchors))
	}

	return err
}

func newSink(ctx context.Context, logger *zap.Logger) (ports.OrderSink, func(), error) {
	timeout, err := config.GetDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, nil, err
	}

	switch kind := config.Get("SINK", "http"); kind {
	case "http":
		token, err := bearerToken(ctx, timeout)
		if err != nil {
			return nil, nil, err
		}
		sink, err := orderapi.NewSink(config.Get("ORDERS_URL", "http://localhost:8091/api/orders"), token, timeout)
		if err != nil {
			return nil, nil, err
		}
		return sink, func() {}, nil

	case "kafka":
		producer, err := kafka.NewSyncProducer(config.GetList("KAFKA_BROKERS", []string{"localhost:9092"}))
		if err != nil {
			return nil, nil, err
		}
		sink := kafka.NewSink(producer, config.Get("KAFKA_TOPIC", "orders.created"))
		return sink, func() {
			if err := sink.Close(); err != nil {
				logger.Warn("close kafka producer", zap.Error(err))
			}
		}, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: config.Get("REDIS_ADDR", "localhost:6379")})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return redisq.NewSink(rdb, config.Get("REDIS_KEY", "fixtures:orders")), func() { rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown SINK %q (want http, kafka or redis)", kind)
	}
}

// bearerToken uses API_TOKEN when set, otherwise logs in with API_USERNAME
// and API_PASSWORD. An already expired JWT is rejected before any order is sent.
func bearerToken(ctx context.Context, timeout time.Duration) (string, error) {
	token := config.Get("API_TOKEN", "")
	if token == "" {
		user := config.Get("API_USERNAME", "")
		if user == "" {
			return "", errors.New("API_TOKEN or API_USERNAME is required for the http sink")
		}

		var err error
		token, err = orderapi.Login(ctx, config.Get("AUTH_URL", "http://localhost:8081/api/auth/login"),
			user, os.Getenv("API_PASSWORD"), timeout)
		if err != nil {
			return "", err
		}
	}

	if err := orderapi.CheckTokenExpiry(token, time.Now()); err != nil {
		return "", err
	}

	return token, nil
}
