package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot is the derived aggregate over all investments, in base currency.
// It is recomputed per request and never persisted.
type PortfolioSnapshot struct {
	TotalCapital decimal.Decimal `json:"totalCapital"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	TotalLoss    decimal.Decimal `json:"totalLoss"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// NewPortfolioSnapshot returns an all-zero snapshot.
func NewPortfolioSnapshot() PortfolioSnapshot {
	return PortfolioSnapshot{
		TotalCapital: decimal.Zero,
		TotalValue:   decimal.Zero,
		TotalProfit:  decimal.Zero,
		TotalLoss:    decimal.Zero,
		NetProfit:    decimal.Zero,
	}
}

// ROI is NetProfit relative to TotalCapital.
func (p PortfolioSnapshot) ROI() decimal.Decimal {
	return Percentage(p.NetProfit, p.TotalCapital)
}

// CategoryStats aggregates the investments sharing one category.
type CategoryStats struct {
	Category         Category        `json:"category"`
	Count            int             `json:"count"`
	TotalCapital     decimal.Decimal `json:"totalCapital"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	Profit           decimal.Decimal `json:"profit"`
	ProfitPercentage decimal.Decimal `json:"profitPercentage"`
}

// DashboardStats is what the home page shows.
type DashboardStats struct {
	Cash           decimal.Decimal   `json:"cash"`
	PortfolioCount int               `json:"portfolioCount"`
	Portfolio      PortfolioSnapshot `json:"portfolio"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}

// ROIResult is the answer of the ROI calculator.
type ROIResult struct {
	Initial decimal.Decimal `json:"initial"`
	Final   decimal.Decimal `json:"final"`
	Profit  decimal.Decimal `json:"profit"`
	ROI     decimal.Decimal `json:"roi"`
}

// NewROIResult computes the ROI calculator output.
func NewROIResult(initial, final decimal.Decimal) ROIResult {
	return ROIResult{
		Initial: initial,
		Final:   final,
		Profit:  final.Sub(initial),
		ROI:     ComputeROI(initial, final),
	}
}
