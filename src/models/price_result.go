package models

// FallbackProviderName identifies a price that was not served by any live
// provider.
const FallbackProviderName = "fallback"

// PriceResult is the outcome of resolving the provider chain. Resolution
// always yields a usable price: when every provider fails, Price carries the
// configured fallback value and Degraded is set.
type PriceResult struct {
	Price    float64
	Provider string
	Degraded bool
}
