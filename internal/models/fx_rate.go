package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// FXRate represents a cached foreign exchange rate for one pair and one day
type FXRate struct {
	ID           uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	FromCurrency string          `json:"from_currency" gorm:"column:from_currency;type:varchar(10);not null;uniqueIndex:idx_fx_pair_day"`
	ToCurrency   string          `json:"to_currency" gorm:"column:to_currency;type:varchar(10);not null;uniqueIndex:idx_fx_pair_day"`
	Day          string          `json:"day" gorm:"column:day;type:varchar(10);not null;uniqueIndex:idx_fx_pair_day"`
	Rate         decimal.Decimal `json:"rate" gorm:"column:rate;type:decimal(30,10);not null"`
	Source       string          `json:"source" gorm:"column:source;type:varchar(50);not null"`
	CreatedAt    time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the FXRate model
func (FXRate) TableName() string {
	return "fx_rates"
}

// Common FX sources
const (
	FXSourceStatic       = "static"
	FXSourceExchangeRate = "exchangerate-api.com"
	FXSourceFallback     = "fallback"
)

// Common currencies
const (
	CurrencyIDR = "IDR"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencySGD = "SGD"
)

// DayKey formats t as the YYYY-MM-DD key used for daily caches and backups.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Validate validates the FX rate data
func (fx *FXRate) Validate() error {
	if fx.FromCurrency == "" {
		return errors.New("from_currency is required")
	}
	if fx.ToCurrency == "" {
		return errors.New("to_currency is required")
	}
	if fx.FromCurrency == fx.ToCurrency {
		return errors.New("from_currency and to_currency must be different")
	}
	if !fx.Rate.IsPositive() {
		return errors.New("rate must be positive")
	}
	if fx.Day == "" {
		return errors.New("day is required")
	}
	if fx.Source == "" {
		return errors.New("source is required")
	}
	return nil
}

// GetInverseRate calculates the inverse rate (1/rate) to 16 places; zero stays zero
func (fx *FXRate) GetInverseRate() decimal.Decimal {
	if fx.Rate.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).DivRound(fx.Rate, 16)
}
