package market_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	market "timeline-api/pkg/market"
	_ "timeline-api/pkg/market/providers/coingecko"
)

func TestLoadMarketConfig(t *testing.T) {
	dir := t.TempDir()
	configYAML := `
default: coingecko
providers:
  coingecko:
    type: coingecko
    base_url: https://api.coingecko.com/api/v3
    api_key: CG-test-key
    http_timeout: 20s
    max_attempts: 3
    retry_backoff: 500ms
`
	path := filepath.Join(dir, "market.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := market.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Default != "coingecko" {
		t.Fatalf("unexpected default: %s", cfg.Default)
	}

	providers, err := cfg.BuildProviders()
	if err != nil {
		t.Fatalf("BuildProviders error: %v", err)
	}
	if len(providers) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(providers))
	}
	if _, ok := providers["coingecko"]; !ok {
		t.Fatalf("provider map missing coingecko")
	}
}

func TestMarketConfigInvalidType(t *testing.T) {
	dir := t.TempDir()
	configYAML := `
providers:
  demo:
    type: foobar
`
	path := filepath.Join(dir, "market.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := market.LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Fatalf("expected unsupported type error, got %v", err)
	}
}

func TestMarketConfigUnknownDefault(t *testing.T) {
	dir := t.TempDir()
	configYAML := `
default: missing
providers:
  coingecko:
    type: coingecko
`
	path := filepath.Join(dir, "market.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := market.LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "not defined") {
		t.Fatalf("expected default-not-defined error, got %v", err)
	}
}

func TestMarketConfigEnvExpansion(t *testing.T) {
	t.Setenv("CG_TEST_KEY", "CG-from-env")
	dir := t.TempDir()
	configYAML := `
providers:
  coingecko:
    type: coingecko
    api_key: ${CG_TEST_KEY}
`
	path := filepath.Join(dir, "market.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := market.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if got := cfg.Providers["coingecko"].APIKey; got != "CG-from-env" {
		t.Fatalf("api_key not expanded, got %q", got)
	}
}
