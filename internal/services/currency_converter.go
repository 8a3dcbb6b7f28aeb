package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/luminark/holdings/internal/models"
)

// DefaultFallbackRate is used when no exchange rate can be obtained.
var DefaultFallbackRate = decimal.NewFromInt(15000)

type currencyConverter struct {
	provider FXProvider
	base     string
	fallback decimal.Decimal
	logger   *zap.Logger
}

// NewCurrencyConverter creates a converter into base. A non-positive fallback
// selects DefaultFallbackRate.
func NewCurrencyConverter(provider FXProvider, base string, fallback decimal.Decimal, logger *zap.Logger) CurrencyConverter {
	if !fallback.IsPositive() {
		fallback = DefaultFallbackRate
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &currencyConverter{
		provider: provider,
		base:     models.NormalizeCurrency(base),
		fallback: fallback,
		logger:   logger,
	}
}

func (c *currencyConverter) BaseCurrency() string {
	return c.base
}

// ConvertToBase returns amount unchanged for the base currency or an empty code.
// Otherwise it asks the provider once and multiplies by the rate.
func (c *currencyConverter) ConvertToBase(ctx context.Context, amount decimal.Decimal, currency string) decimal.Decimal {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || code == c.base {
		return amount
	}
	return amount.Mul(c.rate(ctx, code))
}

func (c *currencyConverter) rate(ctx context.Context, code string) decimal.Decimal {
	if c.provider == nil {
		return c.fallback
	}

	rate, err := c.provider.GetRate(ctx, code, c.base)
	switch {
	case err != nil:
		c.logger.Warn("exchange rate unavailable, using fallback",
			zap.String("from", code),
			zap.String("to", c.base),
			zap.String("fallback", c.fallback.String()),
			zap.Error(err))
		return c.fallback
	case !rate.IsPositive():
		c.logger.Warn("exchange rate not positive, using fallback",
			zap.String("from", code),
			zap.String("to", c.base),
			zap.String("rate", rate.String()),
			zap.String("fallback", c.fallback.String()))
		return c.fallback
	}
	return rate
}
