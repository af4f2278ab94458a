package app

import (
	"log/slog"

	"futures_go/internal/gateway"
	"futures_go/internal/infra"
	"futures_go/internal/infra/binance"
	"futures_go/internal/infra/storage"
)

// Bootstrap orchestrates the CLI startup sequence.
type Bootstrap struct {
	Config  *infra.Config
	Journal *storage.Journal
	Client  *binance.Client
	Gateway *gateway.Live
	Metrics *infra.Metrics
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{Metrics: &infra.Metrics{}}
}

// Initialize loads config, installs the logger and wires the gateway.
// Requires signing credentials.
func (b *Bootstrap) Initialize(configPath string) error {
	if err := b.initCore(configPath); err != nil {
		return err
	}

	if err := b.Config.ValidateCredentials(); err != nil {
		return err
	}

	b.Client = binance.NewClient(b.Config)
	if b.Journal != nil {
		b.Gateway = gateway.NewLive(b.Client, b.Journal, b.Metrics)
	} else {
		b.Gateway = gateway.NewLive(b.Client, nil, b.Metrics)
	}

	return nil
}

// InitializeLocal prepares config, logging and the journal without
// requiring credentials. Used by commands that never call the exchange.
func (b *Bootstrap) InitializeLocal(configPath string) error {
	return b.initCore(configPath)
}

func (b *Bootstrap) initCore(configPath string) error {
	// 1. Load Config (.env + yaml + env overrides)
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	slog.Info("starting",
		"app", cfg.App.Name,
		"testnet", cfg.API.Binance.Testnet,
		"endpoint", cfg.BaseURL(),
	)

	// 3. Open order journal. Order flow works without it.
	journal, err := storage.NewJournal()
	if err != nil {
		slog.Warn("order journal unavailable, history disabled", "error", err)
	} else {
		b.Journal = journal
	}

	return nil
}
