package strategy

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

// HedgeStrategy captures one locked gold spread: the operator is long on one
// platform and short on the other, and cares about the two prices at which
// closing either leg breaks even after the platform deposit.
type HedgeStrategy struct {
	config     models.StrategyConfig
	thresholds models.DerivedThresholds
}

func NewHedgeStrategy(config models.StrategyConfig) (*HedgeStrategy, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("NewHedgeStrategy: %w", err)
	}

	thresholds := models.DeriveThresholds(config)

	log.WithFields(log.Fields{
		"initialPrice":  config.InitialPrice,
		"spread":        config.Spread,
		"depositA":      config.DepositA,
		"depositB":      config.DepositB,
		"breakevenUp":   thresholds.BreakevenUp,
		"breakevenDown": thresholds.BreakevenDown,
	}).Info("strategy initialized")

	return &HedgeStrategy{
		config:     config,
		thresholds: thresholds,
	}, nil
}

func (s *HedgeStrategy) Config() models.StrategyConfig {
	return s.config
}

func (s *HedgeStrategy) Thresholds() models.DerivedThresholds {
	return s.thresholds
}

// Evaluate computes the profit of closing either leg at the given price. It
// is a pure function: the price is rounded to 2 decimals, no state changes.
func (s *HedgeStrategy) Evaluate(price float64, now time.Time) models.ProfitSnapshot {
	price = models.Round2(price)

	return models.ProfitSnapshot{
		Timestamp:    now,
		CurrentPrice: price,
		PriceChange:  models.Round2(price - s.config.InitialPrice),
		ProfitUp:     models.Round2((price - s.thresholds.LockBuyPrice) - s.config.DepositA),
		ProfitDown:   models.Round2((s.thresholds.LockSellPrice - price) - s.config.DepositB),
	}
}

// Ladder evaluates the strategy over prices initialPrice+low to
// initialPrice+high, stepping by step. Stepping is half-open: when high-low
// is not an exact multiple of step, the final boundary price is not emitted.
func (s *HedgeStrategy) Ladder(low, high, step int, now time.Time) []models.ProfitSnapshot {
	if step <= 0 {
		return nil
	}

	var snapshots []models.ProfitSnapshot
	for offset := low; offset <= high; offset += step {
		snapshots = append(snapshots, s.Evaluate(s.config.InitialPrice+float64(offset), now))
	}

	return snapshots
}

// DefaultLadder covers the original reporting window of +/- 120 around the
// initial price in steps of 20.
func (s *HedgeStrategy) DefaultLadder(now time.Time) []models.ProfitSnapshot {
	return s.Ladder(-120, 120, 20, now)
}
