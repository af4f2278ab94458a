package infra

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_API_SECRET", "env-secret")
	t.Setenv("TESTNET", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.API.Binance.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.API.Binance.APIKey)
	}
	if !cfg.API.Binance.Testnet {
		t.Error("Testnet should default to true")
	}
	if cfg.BaseURL() != "https://testnet.binancefuture.com" {
		t.Errorf("BaseURL = %q, want testnet URL", cfg.BaseURL())
	}
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
api:
  binance:
    api_key: file-key
    api_secret: file-secret
    testnet: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_API_SECRET", "")
	t.Setenv("TESTNET", "false")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.API.Binance.APIKey != "env-key" {
		t.Errorf("env var should override file key, got %q", cfg.API.Binance.APIKey)
	}
	if cfg.API.Binance.APISecret != "file-secret" {
		t.Errorf("empty env var must not clobber file secret, got %q", cfg.API.Binance.APISecret)
	}
	if cfg.API.Binance.Testnet {
		t.Error("TESTNET=false should switch testnet off")
	}
	if cfg.BaseURL() != "https://fapi.binance.com" {
		t.Errorf("BaseURL = %q, want mainnet URL", cfg.BaseURL())
	}
}

func TestLoadConfig_WithoutCredentials(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "")
	t.Setenv("BINANCE_API_SECRET", "")

	// Loading must succeed: local-only commands need config and logging
	// without signing credentials.
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if err := cfg.ValidateCredentials(); err == nil {
		t.Fatal("ValidateCredentials should fail without credentials")
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		secret  string
		wantErr bool
	}{
		{"both present", "k", "s", false},
		{"missing key", "", "s", true},
		{"missing secret", "k", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.API.Binance.APIKey = tt.key
			cfg.API.Binance.APISecret = tt.secret

			err := cfg.ValidateCredentials()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_RestURLOverride(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.Binance.RestURL = "http://127.0.0.1:9999"

	if cfg.BaseURL() != "http://127.0.0.1:9999" {
		t.Errorf("BaseURL = %q, want override", cfg.BaseURL())
	}
}
