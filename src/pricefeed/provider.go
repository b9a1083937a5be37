package pricefeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider is a single price source. Fetch retrieves the raw payload under
// the provider's own timeout; Parse extracts the gold price in CNY per gram.
// The chain adds providers by implementing this interface, never by editing
// the fallback logic.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
	Parse(payload []byte) (float64, error)
}

// ProviderError classifies any single-source failure: network errors,
// non-2xx responses, timeouts and malformed payloads all end up here. It is
// always recoverable; the chain logs it and moves to the next provider.
type ProviderError struct {
	Provider string
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

const DefaultTimeout = 5 * time.Second

// fetchURL performs a plain GET with the given headers and timeout and
// returns the response body. Non-2xx statuses are errors.
func fetchURL(ctx context.Context, url string, headers map[string]string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("pricefeed.fetchURL: failed to create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Add(k, v)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pricefeed.fetchURL: request failed: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("pricefeed.fetchURL: unexpected status: %s", res.Status)
	}

	bytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("pricefeed.fetchURL: failed to read response body: %w", err)
	}

	return bytes, nil
}
