package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/models"
)

// StaticFXProvider serves a fixed rate table for offline use and tests
type StaticFXProvider struct {
	rates map[string]decimal.Decimal
}

// NewStaticFXProvider creates a provider with hardcoded rates into IDR
func NewStaticFXProvider() FXProvider {
	return NewStaticFXProviderWithRates(map[string]decimal.Decimal{
		"USD:IDR": decimal.NewFromInt(15500),
		"EUR:IDR": decimal.NewFromInt(16800),
		"SGD:IDR": decimal.NewFromInt(11500),
		"GBP:IDR": decimal.NewFromInt(19600),
		"AUD:IDR": decimal.NewFromInt(10200),
		"MYR:IDR": decimal.NewFromInt(3300),
		"JPY:IDR": decimal.NewFromInt(105),
	})
}

// NewStaticFXProviderWithRates creates a provider from "FROM:TO" keyed rates
func NewStaticFXProviderWithRates(rates map[string]decimal.Decimal) FXProvider {
	table := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		table[strings.ToUpper(k)] = v
	}
	return &StaticFXProvider{rates: table}
}

// GetRate retrieves exchange rate from one currency to another
func (p *StaticFXProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	if rate, ok := p.rates[from+":"+to]; ok {
		return rate, nil
	}

	// Try reverse rate
	if reverse, ok := p.rates[to+":"+from]; ok {
		if reverse.IsZero() {
			return decimal.Zero, fmt.Errorf("invalid reverse rate for %s:%s", to, from)
		}
		inverse := models.FXRate{FromCurrency: to, ToCurrency: from, Rate: reverse}
		return inverse.GetInverseRate(), nil
	}

	return decimal.Zero, fmt.Errorf("exchange rate not available for %s to %s", from, to)
}

// GetRates retrieves multiple exchange rates from base currency to targets
func (p *StaticFXProvider) GetRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal, len(targets))
	for _, target := range targets {
		rate, err := p.GetRate(ctx, base, target)
		if err != nil {
			return nil, fmt.Errorf("failed to get rate %s:%s: %w", base, target, err)
		}
		rates[target] = rate
	}
	return rates, nil
}

// IsSupported checks if currency pair is supported
func (p *StaticFXProvider) IsSupported(from, to string) bool {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return true
	}
	_, direct := p.rates[from+":"+to]
	_, reverse := p.rates[to+":"+from]
	return direct || reverse
}

// GetSupportedCurrencies returns list of supported currencies, sorted
func (p *StaticFXProvider) GetSupportedCurrencies() []string {
	seen := make(map[string]bool)
	for key := range p.rates {
		if from, to, ok := strings.Cut(key, ":"); ok {
			seen[from] = true
			seen[to] = true
		}
	}

	result := make([]string, 0, len(seen))
	for c := range seen {
		result = append(result, c)
	}
	sort.Strings(result)
	return result
}
