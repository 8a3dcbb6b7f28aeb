package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/format"
	"github.com/luminark/holdings/internal/models"
	"github.com/luminark/holdings/internal/services"
)

// DashboardSource serves the latest dashboard
type DashboardSource interface {
	Get(ctx context.Context) (*models.DashboardStats, error)
}

type PortfolioHandler struct {
	investments services.InvestmentService
	portfolio   services.PortfolioService
	dashboard   DashboardSource
}

func NewPortfolioHandler(investments services.InvestmentService, portfolio services.PortfolioService, dashboard DashboardSource) *PortfolioHandler {
	return &PortfolioHandler{investments: investments, portfolio: portfolio, dashboard: dashboard}
}

// PortfolioSummaryResponse is the snapshot plus ROI, cash and display strings
type PortfolioSummaryResponse struct {
	models.PortfolioSnapshot
	ROI       decimal.Decimal   `json:"roi"`
	Cash      decimal.Decimal   `json:"cash"`
	Currency  string            `json:"currency"`
	Formatted map[string]string `json:"formatted"`
}

// CashRequest is the body of PUT /api/cash
type CashRequest struct {
	Cash *decimal.Decimal `json:"cash"`
}

// CashResponse is returned by /api/cash
type CashResponse struct {
	Cash      decimal.Decimal `json:"cash"`
	Formatted string          `json:"formatted"`
}

// ROIResponse is the ROI calculator answer with display strings
type ROIResponse struct {
	models.ROIResult
	Formatted map[string]string `json:"formatted"`
}

// HandleSummary handles GET /api/portfolio/summary
// @Summary Portfolio summary
// @Description Totals over all investments in IDR, with foreign values converted
// @Tags portfolio
// @Produce json
// @Success 200 {object} PortfolioSummaryResponse
// @Failure 500 {string} string "Internal server error"
// @Router /portfolio/summary [get]
func (h *PortfolioHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, err := h.investments.ExportState(r.Context())
	if err != nil {
		writeError(w, "Failed to load portfolio", err)
		return
	}
	snap := h.portfolio.Aggregate(r.Context(), state.Investments)
	base := models.BaseCurrency

	writeJSON(w, http.StatusOK, PortfolioSummaryResponse{
		PortfolioSnapshot: snap,
		ROI:               snap.ROI(),
		Cash:              state.Cash,
		Currency:          base,
		Formatted: map[string]string{
			"totalCapital": format.Currency(snap.TotalCapital, base),
			"totalValue":   format.Currency(snap.TotalValue, base),
			"totalProfit":  format.Currency(snap.TotalProfit, base),
			"totalLoss":    format.Currency(snap.TotalLoss, base),
			"netProfit":    format.Currency(snap.NetProfit, base),
			"roi":          format.Percent(snap.ROI()),
			"cash":         format.Currency(state.Cash, base),
		},
	})
}

// HandleCategories handles GET /api/portfolio/categories
// @Summary Category statistics
// @Description Per-category count, capital, value and profit, in order of first appearance
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.CategoryStats
// @Failure 500 {string} string "Internal server error"
// @Router /portfolio/categories [get]
func (h *PortfolioHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, err := h.investments.ExportState(r.Context())
	if err != nil {
		writeError(w, "Failed to load portfolio", err)
		return
	}
	writeJSON(w, http.StatusOK, h.portfolio.CategoryStats(r.Context(), state.Investments))
}

// HandleDashboard handles GET /api/portfolio/dashboard
// @Summary Dashboard
// @Description Cash, active investment count and portfolio snapshot, refreshed in the background
// @Tags portfolio
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {string} string "Internal server error"
// @Router /portfolio/dashboard [get]
func (h *PortfolioHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.dashboard.Get(r.Context())
	if err != nil {
		writeError(w, "Failed to load dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleROI handles GET /api/roi
// @Summary ROI calculator
// @Description (final - initial) / initial * 100, 0 when initial is 0
// @Tags portfolio
// @Produce json
// @Param initial query string true "Initial investment"
// @Param final query string true "Final value"
// @Success 200 {object} ROIResponse
// @Failure 400 {string} string "Invalid amount"
// @Router /roi [get]
func (h *PortfolioHandler) HandleROI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	initial, err := decimal.NewFromString(q.Get("initial"))
	if err != nil {
		http.Error(w, "Invalid initial amount", http.StatusBadRequest)
		return
	}
	final, err := decimal.NewFromString(q.Get("final"))
	if err != nil {
		http.Error(w, "Invalid final amount", http.StatusBadRequest)
		return
	}

	result := models.NewROIResult(initial, final)
	base := models.BaseCurrency
	writeJSON(w, http.StatusOK, ROIResponse{
		ROIResult: result,
		Formatted: map[string]string{
			"initial": format.Currency(result.Initial, base),
			"final":   format.Currency(result.Final, base),
			"profit":  format.Currency(result.Profit, base),
			"roi":     format.Percent(result.ROI),
		},
	})
}

// HandleCash handles GET and PUT /api/cash
// @Summary Read or set the cash balance
// @Tags portfolio
// @Accept json
// @Produce json
// @Param cash body CashRequest false "New balance (PUT)"
// @Success 200 {object} CashResponse
// @Failure 400 {string} string "Invalid amount"
// @Failure 500 {string} string "Internal server error"
// @Router /cash [get]
// @Router /cash [put]
func (h *PortfolioHandler) HandleCash(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
	case http.MethodPut:
		var req CashRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Cash == nil {
			http.Error(w, "cash is required", http.StatusBadRequest)
			return
		}
		if err := h.investments.SetCash(r.Context(), *req.Cash); err != nil {
			writeError(w, "Failed to set cash", err)
			return
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cash, err := h.investments.GetCash(r.Context())
	if err != nil {
		writeError(w, "Failed to get cash", err)
		return
	}
	writeJSON(w, http.StatusOK, CashResponse{Cash: cash, Formatted: format.Currency(cash, models.BaseCurrency)})
}
