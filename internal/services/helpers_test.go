package services

import (
	"delivery-fixture-generator/internal/config"
	"math/rand/v2"
	"time"
)

var testReference = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func testConfig() config.Generator {
	cfg := config.Defaults(testReference)
	cfg.Seed = 42
	return cfg
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
