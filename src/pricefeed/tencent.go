package pricefeed

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

const tencentDefaultURL = "https://finance.qq.com/fund/quotabank/forex/黄金.htm"

var tencentPricePattern = regexp.MustCompile(`黄金现货价格.*?(\d+\.\d+)元/克`)

// TencentProvider scrapes the spot gold price from the Tencent finance page.
// It is the second link in the chain and only kicks in when eastmoney fails.
type TencentProvider struct {
	URL     string
	Headers map[string]string
	Timeout time.Duration
}

func NewTencentProvider(timeout time.Duration) *TencentProvider {
	return &TencentProvider{
		URL: tencentDefaultURL,
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
		},
		Timeout: timeout,
	}
}

func (p *TencentProvider) Name() string {
	return "tencent"
}

func (p *TencentProvider) Fetch(ctx context.Context) ([]byte, error) {
	return fetchURL(ctx, p.URL, p.Headers, p.Timeout)
}

func (p *TencentProvider) Parse(payload []byte) (float64, error) {
	match := tencentPricePattern.FindSubmatch(payload)
	if match == nil {
		return 0, fmt.Errorf("TencentProvider.Parse: no price found in payload")
	}

	price, err := strconv.ParseFloat(string(match[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("TencentProvider.Parse: invalid price %q: %w", match[1], err)
	}

	return models.Round2(price), nil
}
