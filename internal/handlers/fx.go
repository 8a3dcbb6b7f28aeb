package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/format"
	"github.com/luminark/holdings/internal/models"
	"github.com/luminark/holdings/internal/services"
)

type FXHandler struct {
	converter services.CurrencyConverter
	provider  services.FXProvider
}

func NewFXHandler(converter services.CurrencyConverter, provider services.FXProvider) *FXHandler {
	return &FXHandler{converter: converter, provider: provider}
}

// ConversionResponse is an amount and its value in the base currency
type ConversionResponse struct {
	Amount    decimal.Decimal   `json:"amount"`
	Currency  string            `json:"currency"`
	Converted decimal.Decimal   `json:"converted"`
	Base      string            `json:"base"`
	Formatted map[string]string `json:"formatted"`
}

// RateResponse is a single provider rate
type RateResponse struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// GET /api/fx/convert?amount=100&currency=USD
// @Summary Convert to IDR
// @Description Converts with the configured provider; the fallback rate applies when no rate is available
// @Tags fx
// @Produce json
// @Param amount query string true "Amount"
// @Param currency query string false "Currency of the amount (default USD)"
// @Success 200 {object} ConversionResponse
// @Failure 400 {string} string "Invalid amount"
// @Router /fx/convert [get]
func (h *FXHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}
	currency := q.Get("currency")
	if currency == "" {
		currency = models.CurrencyUSD
	}
	currency = models.NormalizeCurrency(currency)

	base := h.converter.BaseCurrency()
	converted := h.converter.ConvertToBase(r.Context(), amount, currency)
	writeJSON(w, http.StatusOK, ConversionResponse{
		Amount:    amount,
		Currency:  currency,
		Converted: converted,
		Base:      base,
		Formatted: map[string]string{
			"amount":    format.Currency(amount, currency),
			"converted": format.Currency(converted, base),
		},
	})
}

// GET /api/fx/rate?from=USD&to=IDR
// @Summary Get a provider rate
// @Description Raw rate from the configured provider, without the fallback
// @Tags fx
// @Produce json
// @Param from query string false "Base currency (default USD)"
// @Param to query string false "Quote currency (default IDR)"
// @Success 200 {object} RateResponse
// @Failure 502 {string} string "Rate unavailable"
// @Router /fx/rate [get]
func (h *FXHandler) HandleRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")
	if from == "" {
		from = models.CurrencyUSD
	}
	if to == "" {
		to = h.converter.BaseCurrency()
	}
	from, to = models.NormalizeCurrency(from), models.NormalizeCurrency(to)

	rate, err := h.provider.GetRate(r.Context(), from, to)
	if err != nil {
		http.Error(w, "Rate unavailable: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, RateResponse{From: from, To: to, Rate: rate})
}

// GET /api/fx/currencies
// @Summary Supported currencies
// @Tags fx
// @Produce json
// @Success 200 {array} string
// @Router /fx/currencies [get]
func (h *FXHandler) HandleCurrencies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.provider.GetSupportedCurrencies())
}
