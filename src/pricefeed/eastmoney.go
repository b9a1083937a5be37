package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

const eastmoneyDefaultURL = "https://push2.eastmoney.com/api/qt/stock/get?secid=85.AUTD&fields=f43"

// EastmoneyProvider reads the Shanghai Gold Exchange Au(T+D) quote from the
// eastmoney push API. The quote arrives as JSON with the latest price in
// field f43.
type EastmoneyProvider struct {
	URL     string
	Headers map[string]string
	Timeout time.Duration
}

func NewEastmoneyProvider(timeout time.Duration) *EastmoneyProvider {
	return &EastmoneyProvider{
		URL: eastmoneyDefaultURL,
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			"Referer":    "https://quote.eastmoney.com/",
		},
		Timeout: timeout,
	}
}

func (p *EastmoneyProvider) Name() string {
	return "eastmoney"
}

func (p *EastmoneyProvider) Fetch(ctx context.Context) ([]byte, error) {
	return fetchURL(ctx, p.URL, p.Headers, p.Timeout)
}

func (p *EastmoneyProvider) Parse(payload []byte) (float64, error) {
	var respMap map[string]interface{}
	if err := json.Unmarshal(payload, &respMap); err != nil {
		return 0, fmt.Errorf("EastmoneyProvider.Parse: failed to parse payload: %w", err)
	}

	data, ok := respMap["data"].(map[string]interface{})
	if !ok || data == nil {
		return 0, fmt.Errorf("EastmoneyProvider.Parse: payload has no data object")
	}

	switch v := data["f43"].(type) {
	case float64:
		return models.Round2(v), nil
	case string:
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("EastmoneyProvider.Parse: invalid f43 value %q: %w", v, err)
		}
		return models.Round2(price), nil
	default:
		return 0, fmt.Errorf("EastmoneyProvider.Parse: payload has no f43 field")
	}
}
