package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luminark/holdings/internal/config"
	"github.com/luminark/holdings/internal/models"
	"github.com/luminark/holdings/internal/services"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		AppEnv: "test",
		DB:     config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "app.db")},
		Store:  config.Store{StateKey: "luminark_investments", BackupRetention: 7},
		FX: config.FX{
			Provider:     "static",
			Timeout:      time.Second,
			BaseCurrency: "IDR",
			FallbackRate: "15000",
		},
	}
}

func TestNew_WiresServices(t *testing.T) {
	a, err := New(testConfig(t), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	_, err = a.Investments.AddInvestment(ctx, &models.Investment{
		Name:           "AAPL",
		Category:       models.CategoryForeignStocks,
		Currency:       "USD",
		InitialCapital: decimal.NewFromInt(1_000_000),
		CurrentValue:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	stats, err := a.Dashboard.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PortfolioCount)
	// static table: 1 USD = 15500 IDR
	assert.True(t, decimal.NewFromInt(1_550_000).Equal(stats.Portfolio.TotalValue), stats.Portfolio.TotalValue.String())
	assert.Equal(t, "IDR", a.Converter.BaseCurrency())
}

func TestNewFXProvider(t *testing.T) {
	cfg := testConfig(t)

	p, err := NewFXProvider(cfg.FX, nil)
	require.NoError(t, err)
	assert.IsType(t, &services.StaticFXProvider{}, p)

	cfg.FX.Provider = "http"
	p, err = NewFXProvider(cfg.FX, nil)
	require.NoError(t, err)
	assert.IsType(t, &services.HTTPFXProvider{}, p)

	cfg.FX.Provider = "carrier-pigeon"
	_, err = NewFXProvider(cfg.FX, nil)
	assert.Error(t, err)
}

func TestNew_BadDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Driver = "mysql"
	_, err := New(cfg, zap.NewNop())
	assert.Error(t, err)
}
