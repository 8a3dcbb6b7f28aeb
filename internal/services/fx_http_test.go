package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminark/holdings/internal/config"
	"github.com/luminark/holdings/internal/db"
)

func newRateServer(t *testing.T, calls *int32, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		handler(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func TestHTTPFXProvider_GetRate(t *testing.T) {
	var path string
	ts := newRateServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		writeJSON(w, map[string]any{
			"base": "USD",
			"rates": map[string]any{
				"IDR": 15750.25,
				"EUR": 0.92,
			},
		})
	})

	provider := NewHTTPFXProvider(ts.URL, "", time.Second, nil)
	rate, err := provider.GetRate(context.Background(), "usd", "IDR")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("15750.25").Equal(rate), "got %s", rate)
	assert.Equal(t, "/USD", path)
}

func TestHTTPFXProvider_ConversionRatesPayload(t *testing.T) {
	ts := newRateServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"result":           "success",
			"base_code":        "SGD",
			"conversion_rates": map[string]any{"IDR": 11500},
		})
	})

	provider := NewHTTPFXProvider(ts.URL, "", time.Second, nil)
	rate, err := provider.GetRate(context.Background(), "SGD", "IDR")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(11500).Equal(rate))
}

func TestHTTPFXProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler func(w http.ResponseWriter, r *http.Request)
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
		},
		{
			name: "api error result",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]any{"result": "error", "error-type": "invalid-key"})
			},
		},
		{
			name: "missing rates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]any{"result": "success"})
			},
		},
		{
			name: "missing pair",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]any{"rates": map[string]any{"EUR": 0.9}})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newRateServer(t, nil, tt.handler)
			provider := NewHTTPFXProvider(ts.URL, "", time.Second, nil)
			_, err := provider.GetRate(context.Background(), "USD", "IDR")
			assert.Error(t, err)
		})
	}
}

func TestHTTPFXProvider_GetRates(t *testing.T) {
	ts := newRateServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"rates": map[string]any{"IDR": 15500, "EUR": 0.9, "GBP": 0.78},
		})
	})

	provider := NewHTTPFXProvider(ts.URL, "", time.Second, nil)
	rates, err := provider.GetRates(context.Background(), "USD", []string{"IDR", "EUR", "JPY"})
	require.NoError(t, err)
	assert.Len(t, rates, 2)
	assert.True(t, decimal.NewFromInt(15500).Equal(rates["IDR"]))
	assert.True(t, decimal.RequireFromString("0.9").Equal(rates["EUR"]))
	_, hasJPY := rates["JPY"]
	assert.False(t, hasJPY)
}

func TestHTTPFXProvider_UsesCache(t *testing.T) {
	database, err := db.Connect(config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "fx.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	var calls int32
	ts := newRateServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"rates": map[string]any{"IDR": 16000}})
	})

	provider := NewHTTPFXProvider(ts.URL, "", time.Second, NewFXCacheService(database))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rate, err := provider.GetRate(ctx, "USD", "IDR")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(16000).Equal(rate))
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNewHTTPFXProvider_BaseURL(t *testing.T) {
	public := NewHTTPFXProvider("", "", 0, nil).(*HTTPFXProvider)
	assert.Equal(t, "https://api.exchangerate-api.com/v4/latest", public.client.BaseURL)

	keyed := NewHTTPFXProvider("", "secret", 0, nil).(*HTTPFXProvider)
	assert.Equal(t, "https://v6.exchangerate-api.com/v6/secret/latest", keyed.client.BaseURL)
}

func TestHTTPFXProvider_IsSupported(t *testing.T) {
	provider := NewHTTPFXProvider("", "", 0, nil)
	assert.True(t, provider.IsSupported("usd", "IDR"))
	assert.False(t, provider.IsSupported("USD", "BTC"))
	assert.Contains(t, provider.GetSupportedCurrencies(), "IDR")
}
