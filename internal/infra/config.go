package infra

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs at startup. Values come from the
// optional YAML file first, then environment variables override the
// sensitive ones. A missing config file is fine: the original workflow
// runs off a .env file alone.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		Binance struct {
			// RestURL overrides the base URL when set; used by tests
			// and for pointing at regional endpoints.
			RestURL      string `yaml:"rest_url"`
			APIKey       string `yaml:"api_key"`
			APISecret    string `yaml:"api_secret"`
			Testnet      bool   `yaml:"testnet"`
			RecvWindowMS int    `yaml:"recv_window_ms"`
		} `yaml:"binance"`
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads the YAML config and applies env overrides.
// Order: defaults -> config file (if present) -> .env -> process env.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No file: env-only configuration.
	default:
		return nil, err
	}

	// .env values become process env without clobbering existing vars.
	_ = godotenv.Load()

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "futures-go"
	// Testnet unless explicitly switched off. Real funds need opting in.
	cfg.API.Binance.Testnet = true
	cfg.API.Binance.RecvWindowMS = 5000
	cfg.Logging.Level = "info"
	return cfg
}

// Validate checks structural configuration validity. Credentials are
// checked separately via ValidateCredentials: local-only commands (such
// as reading history) never sign a request.
func (c *Config) Validate() error {
	if c.API.Binance.RecvWindowMS <= 0 {
		return fmt.Errorf("recv window must be positive")
	}
	return nil
}

// ValidateCredentials ensures the signing credentials are present.
// Required before constructing the exchange client: every gateway
// operation hits a signed endpoint.
func (c *Config) ValidateCredentials() error {
	if c.API.Binance.APIKey == "" {
		return fmt.Errorf("missing API key (set BINANCE_API_KEY)")
	}
	if c.API.Binance.APISecret == "" {
		return fmt.Errorf("missing API secret (set BINANCE_API_SECRET)")
	}
	return nil
}

// BaseURL resolves the REST endpoint from the override and testnet flag.
func (c *Config) BaseURL() string {
	if c.API.Binance.RestURL != "" {
		return c.API.Binance.RestURL
	}
	if c.API.Binance.Testnet {
		return "https://testnet.binancefuture.com"
	}
	return "https://fapi.binance.com"
}

func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("BINANCE_API_KEY"); key != "" {
		cfg.API.Binance.APIKey = key
	}
	if secret := os.Getenv("BINANCE_API_SECRET"); secret != "" {
		cfg.API.Binance.APISecret = secret
	}
	if v := os.Getenv("TESTNET"); v != "" {
		cfg.API.Binance.Testnet = parseBool(v)
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
