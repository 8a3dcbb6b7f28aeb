package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/models"
)

const (
	defaultFXBaseURL = "https://api.exchangerate-api.com/v4/latest"
	fxKeyedBaseURL   = "https://v6.exchangerate-api.com/v6/%s/latest"
)

var supportedCurrencies = []string{
	"IDR", "USD", "EUR", "SGD", "GBP", "JPY", "AUD", "CNY", "HKD", "MYR", "KRW", "THB",
}

// HTTPFXProvider provides exchange rates from exchangerate-api.com
type HTTPFXProvider struct {
	client *resty.Client
	cache  FXCacheService
	now    func() time.Time
}

// exchangeRateResponse covers both the v4 (rates) and v6 (conversion_rates) payloads
type exchangeRateResponse struct {
	Result          string                 `json:"result"`
	BaseCode        string                 `json:"base_code"`
	Rates           map[string]json.Number `json:"rates"`
	ConversionRates map[string]json.Number `json:"conversion_rates"`
}

// NewHTTPFXProvider creates a new HTTP FX provider. An empty baseURL selects the
// public v4 endpoint, or the keyed v6 endpoint when apiKey is set. cache may be nil.
func NewHTTPFXProvider(baseURL, apiKey string, timeout time.Duration, cache FXCacheService) FXProvider {
	if baseURL == "" {
		baseURL = defaultFXBaseURL
		if apiKey != "" {
			baseURL = fmt.Sprintf(fxKeyedBaseURL, apiKey)
		}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	return &HTTPFXProvider{client: client, cache: cache, now: time.Now}
}

// GetRate retrieves exchange rate from one currency to another
func (p *HTTPFXProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	day := p.now()

	if p.cache != nil {
		if cached, err := p.cache.GetCachedRate(ctx, from, to, day); err == nil && cached != nil {
			return cached.Rate, nil
		}
	}

	rates, err := p.fetchRates(ctx, from, []string{to})
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate not found for %s to %s", from, to)
	}

	p.store(ctx, from, to, rate, day)
	return rate, nil
}

// GetRates retrieves multiple exchange rates from base currency to targets
func (p *HTTPFXProvider) GetRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	base = strings.ToUpper(base)
	day := p.now()
	rates := make(map[string]decimal.Decimal, len(targets))

	uncached := targets
	if p.cache != nil {
		if cached, err := p.cache.GetCachedRates(ctx, base, upperAll(targets), day); err == nil {
			uncached = nil
			for _, target := range targets {
				if r, ok := cached[strings.ToUpper(target)]; ok {
					rates[target] = r.Rate
				} else {
					uncached = append(uncached, target)
				}
			}
		}
	}

	if len(uncached) == 0 {
		return rates, nil
	}

	fetched, err := p.fetchRates(ctx, base, uncached)
	if err != nil {
		return nil, err
	}
	for _, target := range uncached {
		if rate, ok := fetched[strings.ToUpper(target)]; ok {
			rates[target] = rate
			p.store(ctx, base, strings.ToUpper(target), rate, day)
		}
	}
	return rates, nil
}

// IsSupported checks if currency pair is supported
func (p *HTTPFXProvider) IsSupported(from, to string) bool {
	return isSupportedCurrency(from) && isSupportedCurrency(to)
}

// GetSupportedCurrencies returns list of supported currencies
func (p *HTTPFXProvider) GetSupportedCurrencies() []string {
	return append([]string(nil), supportedCurrencies...)
}

func (p *HTTPFXProvider) store(ctx context.Context, from, to string, rate decimal.Decimal, day time.Time) {
	if p.cache == nil {
		return
	}
	// caching is best effort
	_ = p.cache.CacheRate(ctx, &models.FXRate{
		FromCurrency: from,
		ToCurrency:   to,
		Day:          models.DayKey(day),
		Rate:         rate,
		Source:       models.FXSourceExchangeRate,
	})
}

// fetchRates issues one GET {base}/{FROM} and extracts the requested targets, keyed upper-case.
func (p *HTTPFXProvider) fetchRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get("/" + base)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	var payload exchangeRateResponse
	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Result != "" && payload.Result != "success" {
		return nil, fmt.Errorf("API error: %s", payload.Result)
	}

	raw := payload.ConversionRates
	if raw == nil {
		raw = payload.Rates
	}
	if raw == nil {
		return nil, fmt.Errorf("API response missing rates")
	}

	result := make(map[string]decimal.Decimal, len(targets))
	for _, target := range targets {
		code := strings.ToUpper(target)
		n, ok := raw[code]
		if !ok {
			continue
		}
		rate, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		result[code] = rate
	}
	return result, nil
}

func isSupportedCurrency(code string) bool {
	code = strings.ToUpper(code)
	for _, c := range supportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

func upperAll(codes []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = strings.ToUpper(c)
	}
	return out
}
