package pricefeed

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

// Chain resolves one current price from an ordered list of providers.
// Providers are tried sequentially; the first success wins. Every failure is
// classified as a ProviderError and logged, never surfaced: when the whole
// chain is exhausted the configured fallback price is returned with the
// result marked degraded, so the caller always gets a usable price.
type Chain struct {
	providers     []Provider
	fallbackPrice float64
}

func NewChain(fallbackPrice float64, providers ...Provider) *Chain {
	return &Chain{
		providers:     providers,
		fallbackPrice: models.Round2(fallbackPrice),
	}
}

func (c *Chain) Resolve(ctx context.Context) models.PriceResult {
	for _, provider := range c.providers {
		payload, err := provider.Fetch(ctx)
		if err != nil {
			perr := &ProviderError{Provider: provider.Name(), Cause: err}
			log.Warnf("Chain.Resolve: %v", perr)
			continue
		}

		price, err := provider.Parse(payload)
		if err != nil {
			perr := &ProviderError{Provider: provider.Name(), Cause: err}
			log.Warnf("Chain.Resolve: %v", perr)
			continue
		}

		log.Infof("Chain.Resolve: provider %s returned price %.2f", provider.Name(), price)

		return models.PriceResult{
			Price:    models.Round2(price),
			Provider: provider.Name(),
		}
	}

	log.Errorf("Chain.Resolve: all providers failed, using fallback price %.2f", c.fallbackPrice)

	return models.PriceResult{
		Price:    c.fallbackPrice,
		Provider: models.FallbackProviderName,
		Degraded: true,
	}
}
