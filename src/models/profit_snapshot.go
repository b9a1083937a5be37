package models

import "time"

type ProfitStatus string

const (
	ProfitStatusProfit ProfitStatus = "profit"
	ProfitStatusLoss   ProfitStatus = "loss"
	ProfitStatusFlat   ProfitStatus = "flat"
)

func statusOf(v float64) ProfitStatus {
	switch {
	case v > 0:
		return ProfitStatusProfit
	case v < 0:
		return ProfitStatusLoss
	default:
		return ProfitStatusFlat
	}
}

// ProfitSnapshot is the result of evaluating a strategy against one price
// sample. Snapshots are immutable values; the monitor appends them to the
// session history and the report layer renders them as-is.
type ProfitSnapshot struct {
	Timestamp    time.Time
	CurrentPrice float64
	PriceChange  float64
	ProfitUp     float64
	ProfitDown   float64
}

// ProfitUpStatus labels the profit of closing the upside leg at this price.
func (s ProfitSnapshot) ProfitUpStatus() ProfitStatus {
	return statusOf(s.ProfitUp)
}

// ProfitDownStatus labels the profit of closing the downside leg at this price.
func (s ProfitSnapshot) ProfitDownStatus() ProfitStatus {
	return statusOf(s.ProfitDown)
}
