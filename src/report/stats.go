package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

// HistorySummary condenses a run of snapshots into the figures an operator
// checks first: the price range seen and the best outcome of either leg.
type HistorySummary struct {
	Samples       int
	MinPrice      float64
	MaxPrice      float64
	MeanPrice     float64
	MaxProfitUp   float64
	MaxProfitDown float64
}

func Summarize(snapshots []models.ProfitSnapshot) (HistorySummary, error) {
	if len(snapshots) == 0 {
		return HistorySummary{}, fmt.Errorf("report.Summarize: no snapshots to summarize")
	}

	prices := make([]float64, 0, len(snapshots))
	profitUps := make([]float64, 0, len(snapshots))
	profitDowns := make([]float64, 0, len(snapshots))
	for _, s := range snapshots {
		prices = append(prices, s.CurrentPrice)
		profitUps = append(profitUps, s.ProfitUp)
		profitDowns = append(profitDowns, s.ProfitDown)
	}

	minPrice, err := stats.Min(prices)
	if err != nil {
		return HistorySummary{}, fmt.Errorf("report.Summarize: failed to calculate min: %v", err)
	}

	maxPrice, err := stats.Max(prices)
	if err != nil {
		return HistorySummary{}, fmt.Errorf("report.Summarize: failed to calculate max: %v", err)
	}

	meanPrice, err := stats.Mean(prices)
	if err != nil {
		return HistorySummary{}, fmt.Errorf("report.Summarize: failed to calculate mean: %v", err)
	}

	maxProfitUp, err := stats.Max(profitUps)
	if err != nil {
		return HistorySummary{}, fmt.Errorf("report.Summarize: failed to calculate max profit up: %v", err)
	}

	maxProfitDown, err := stats.Max(profitDowns)
	if err != nil {
		return HistorySummary{}, fmt.Errorf("report.Summarize: failed to calculate max profit down: %v", err)
	}

	return HistorySummary{
		Samples:       len(snapshots),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		MeanPrice:     models.Round2(meanPrice),
		MaxProfitUp:   maxProfitUp,
		MaxProfitDown: maxProfitDown,
	}, nil
}
