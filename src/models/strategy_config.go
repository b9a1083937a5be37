package models

import (
	"fmt"
	"math"
)

// StrategyConfig holds the four operator-supplied parameters of a locked
// spread. All fields are rounded to 2 decimals by NewStrategyConfig and the
// value is never mutated afterwards.
type StrategyConfig struct {
	InitialPrice float64
	Spread       float64
	DepositA     float64
	DepositB     float64
}

func NewStrategyConfig(initialPrice, spread, depositA, depositB float64) StrategyConfig {
	return StrategyConfig{
		InitialPrice: Round2(initialPrice),
		Spread:       Round2(spread),
		DepositA:     Round2(depositA),
		DepositB:     Round2(depositB),
	}
}

func (c StrategyConfig) Validate() error {
	for _, v := range []float64{c.InitialPrice, c.Spread, c.DepositA, c.DepositB} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("StrategyConfig.Validate: %w", NonFiniteParamErr)
		}
	}

	if c.Spread < 0 {
		return fmt.Errorf("StrategyConfig.Validate: found spread %v: %w", c.Spread, NegativeSpreadErr)
	}

	return nil
}

// DerivedThresholds are computed once per strategy and stay fixed for its
// lifetime. With non negative deposits the ordering is always
// BreakevenDown <= LockSellPrice <= LockBuyPrice <= BreakevenUp.
type DerivedThresholds struct {
	LockSellPrice float64
	LockBuyPrice  float64
	BreakevenUp   float64
	BreakevenDown float64
}

func DeriveThresholds(c StrategyConfig) DerivedThresholds {
	lockSell := Round2(c.InitialPrice - c.Spread/2)
	lockBuy := Round2(c.InitialPrice + c.Spread/2)

	return DerivedThresholds{
		LockSellPrice: lockSell,
		LockBuyPrice:  lockBuy,
		BreakevenUp:   Round2(lockBuy + c.DepositA),
		BreakevenDown: Round2(lockSell - c.DepositB),
	}
}
