package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/luminark/holdings/internal/config"
	"github.com/luminark/holdings/internal/db"
	"github.com/luminark/holdings/internal/repositories"
	"github.com/luminark/holdings/internal/services"
)

// App is the wired service graph shared by the HTTP server and the CLI
type App struct {
	DB          *db.DB
	Logger      *zap.Logger
	FXProvider  services.FXProvider
	Converter   services.CurrencyConverter
	Portfolio   services.PortfolioService
	Investments services.InvestmentService
	Export      services.ExportService
	Dashboard   *services.DashboardCache
}

// New connects to the database and builds every service on top of it
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	database, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	fallback, err := cfg.FX.Fallback()
	if err != nil {
		database.Close()
		return nil, err
	}

	provider, err := NewFXProvider(cfg.FX, database)
	if err != nil {
		database.Close()
		return nil, err
	}

	repo := repositories.NewStateRepository(database, cfg.Store.StateKey, cfg.Store.BackupRetention)
	converter := services.NewCurrencyConverter(provider, cfg.FX.BaseCurrency, fallback, logger)
	portfolio := services.NewPortfolioService(converter)
	investments := services.NewInvestmentService(repo, portfolio, logger)

	return &App{
		DB:          database,
		Logger:      logger,
		FXProvider:  provider,
		Converter:   converter,
		Portfolio:   portfolio,
		Investments: investments,
		Export:      services.NewExportService(investments, portfolio, logger),
		Dashboard:   services.NewDashboardCache(investments),
	}, nil
}

// NewFXProvider selects the rate source named by FX_PROVIDER
func NewFXProvider(cfg config.FX, database *db.DB) (services.FXProvider, error) {
	switch cfg.Provider {
	case "static":
		return services.NewStaticFXProvider(), nil
	case "http":
		var cache services.FXCacheService
		if cfg.CacheEnabled {
			cache = services.NewFXCacheService(database)
		}
		return services.NewHTTPFXProvider(cfg.APIURL, cfg.APIKey, cfg.Timeout, cache), nil
	default:
		return nil, fmt.Errorf("unknown FX provider %q", cfg.Provider)
	}
}

// Close releases the database connection
func (a *App) Close() error {
	return a.DB.Close()
}
