package pricefeed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ProviderConfigYAML describes one provider endpoint. The name selects the
// parser; url, headers and timeout are swappable configuration.
type ProviderConfigYAML struct {
	Name           string            `yaml:"name"`
	URL            string            `yaml:"url"`
	Headers        map[string]string `yaml:"headers"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	Price          float64           `yaml:"price"`
}

type ConfigYAML struct {
	FallbackPrice float64              `yaml:"fallback_price"`
	Providers     []ProviderConfigYAML `yaml:"providers"`
}

func (c ProviderConfigYAML) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfig mirrors the stock chain: eastmoney first, tencent as backup,
// 600.0 as the degraded fallback price.
func DefaultConfig() ConfigYAML {
	return ConfigYAML{
		FallbackPrice: 600.0,
		Providers: []ProviderConfigYAML{
			{Name: "eastmoney", TimeoutSeconds: 5},
			{Name: "tencent", TimeoutSeconds: 5},
		},
	}
}

func LoadConfig(path string) (ConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ConfigYAML{}, fmt.Errorf("pricefeed.LoadConfig: failed to read %s: %w", path, err)
	}

	var config ConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return ConfigYAML{}, fmt.Errorf("pricefeed.LoadConfig: failed to parse %s: %w", path, err)
	}

	return config, nil
}

// BuildChain assembles the provider chain in configured order. Unknown
// provider names are rejected rather than skipped.
func (c ConfigYAML) BuildChain() (*Chain, error) {
	var providers []Provider

	for _, pc := range c.Providers {
		switch pc.Name {
		case "eastmoney":
			provider := NewEastmoneyProvider(pc.timeout())
			if pc.URL != "" {
				provider.URL = pc.URL
			}
			if len(pc.Headers) > 0 {
				provider.Headers = pc.Headers
			}
			providers = append(providers, provider)
		case "tencent":
			provider := NewTencentProvider(pc.timeout())
			if pc.URL != "" {
				provider.URL = pc.URL
			}
			if len(pc.Headers) > 0 {
				provider.Headers = pc.Headers
			}
			providers = append(providers, provider)
		case "manual":
			providers = append(providers, NewManualProvider(pc.Price))
		default:
			return nil, fmt.Errorf("ConfigYAML.BuildChain: unknown provider %q", pc.Name)
		}
	}

	return NewChain(c.FallbackPrice, providers...), nil
}
