package services

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/models"
)

// InvestmentService defines the interface for investment, transaction and cash operations.
// Lookup misses return a nil result and a nil error.
type InvestmentService interface {
	AddInvestment(ctx context.Context, inv *models.Investment) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, id string, update models.InvestmentUpdate) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, id string) (bool, error)
	GetInvestment(ctx context.Context, id string) (*models.Investment, error)
	ListInvestments(ctx context.Context, filter models.InvestmentFilter) ([]models.Investment, error)

	AddTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)

	GetCash(ctx context.Context) (decimal.Decimal, error)
	SetCash(ctx context.Context, amount decimal.Decimal) error

	Dashboard(ctx context.Context) (*models.DashboardStats, error)

	ExportState(ctx context.Context) (*models.AppState, error)
	ImportState(ctx context.Context, state *models.AppState) error
	SnapshotState(ctx context.Context) error
	ListBackups(ctx context.Context) ([]string, error)
	RestoreBackup(ctx context.Context, day string) (*models.AppState, error)
}

// PortfolioService aggregates investments into base-currency totals
type PortfolioService interface {
	Aggregate(ctx context.Context, investments []models.Investment) models.PortfolioSnapshot
	CategoryStats(ctx context.Context, investments []models.Investment) []models.CategoryStats
}

// CurrencyConverter converts amounts into the base currency. It never fails:
// an unavailable rate is replaced by the configured fallback.
type CurrencyConverter interface {
	ConvertToBase(ctx context.Context, amount decimal.Decimal, currency string) decimal.Decimal
	BaseCurrency() string
}

// ExportService renders the application state into downloadable formats
type ExportService interface {
	WriteSpreadsheet(ctx context.Context, w io.Writer) error
	Markdown(ctx context.Context) (string, error)
	HTML(ctx context.Context) ([]byte, error)
	WriteJSON(ctx context.Context, w io.Writer) error
	FileName(ext string) string
}

// FXProvider defines the interface for foreign exchange rate providers
type FXProvider interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
	GetRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error)
	IsSupported(from, to string) bool
	GetSupportedCurrencies() []string
}

// FXCacheService defines the interface for FX rate caching
type FXCacheService interface {
	GetCachedRate(ctx context.Context, from, to string, day time.Time) (*models.FXRate, error)
	CacheRate(ctx context.Context, rate *models.FXRate) error
	GetCachedRates(ctx context.Context, from string, targets []string, day time.Time) (map[string]*models.FXRate, error)
	InvalidateCache(ctx context.Context, from, to string, day time.Time) error
}
