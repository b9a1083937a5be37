package pricefeed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

// ManualProvider serves a fixed operator-supplied price. It never fails and
// is useful offline, or pinned at the head of the chain to override the live
// feeds during manual testing.
type ManualProvider struct {
	Price float64
}

func NewManualProvider(price float64) *ManualProvider {
	return &ManualProvider{Price: models.Round2(price)}
}

func (p *ManualProvider) Name() string {
	return "manual"
}

func (p *ManualProvider) Fetch(ctx context.Context) ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", p.Price)), nil
}

func (p *ManualProvider) Parse(payload []byte) (float64, error) {
	price, err := strconv.ParseFloat(string(payload), 64)
	if err != nil {
		return 0, fmt.Errorf("ManualProvider.Parse: invalid price %q: %w", payload, err)
	}

	return price, nil
}
