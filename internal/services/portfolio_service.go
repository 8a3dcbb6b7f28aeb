package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/models"
)

type portfolioService struct {
	converter CurrencyConverter
}

// NewPortfolioService creates a new portfolio aggregation service
func NewPortfolioService(converter CurrencyConverter) PortfolioService {
	return &portfolioService{converter: converter}
}

// Aggregate sums capital and base-currency value over investments. A non-positive
// per-investment profit counts as loss. Conversions run one after another.
func (s *portfolioService) Aggregate(ctx context.Context, investments []models.Investment) models.PortfolioSnapshot {
	snap := models.NewPortfolioSnapshot()

	for i := range investments {
		inv := &investments[i]
		capital := inv.Capital()
		value := s.converter.ConvertToBase(ctx, inv.CurrentValue, inv.Currency)

		snap.TotalCapital = snap.TotalCapital.Add(capital)
		snap.TotalValue = snap.TotalValue.Add(value)

		profit := value.Sub(capital)
		if profit.IsPositive() {
			snap.TotalProfit = snap.TotalProfit.Add(profit)
		} else {
			snap.TotalLoss = snap.TotalLoss.Add(profit.Abs())
		}
	}

	snap.NetProfit = snap.TotalProfit.Sub(snap.TotalLoss)
	return snap
}

// CategoryStats aggregates each category group, in order of first appearance
func (s *portfolioService) CategoryStats(ctx context.Context, investments []models.Investment) []models.CategoryStats {
	groups := GroupByCategory(investments)
	stats := make([]models.CategoryStats, 0, len(groups))

	for _, g := range groups {
		totalCapital := decimal.Zero
		totalValue := decimal.Zero
		for i := range g.Investments {
			inv := &g.Investments[i]
			totalCapital = totalCapital.Add(inv.Capital())
			totalValue = totalValue.Add(s.converter.ConvertToBase(ctx, inv.CurrentValue, inv.Currency))
		}

		profit := totalValue.Sub(totalCapital)
		pct := decimal.Zero
		if totalCapital.IsPositive() {
			pct = models.Percentage(profit, totalCapital)
		}

		stats = append(stats, models.CategoryStats{
			Category:         g.Category,
			Count:            len(g.Investments),
			TotalCapital:     totalCapital,
			TotalValue:       totalValue,
			Profit:           profit,
			ProfitPercentage: pct,
		})
	}
	return stats
}

// CategoryGroup is one category and its investments, in input order.
type CategoryGroup struct {
	Category    models.Category
	Investments []models.Investment
}

// GroupByCategory partitions investments by exact category string. Groups
// appear in order of first occurrence.
func GroupByCategory(investments []models.Investment) []CategoryGroup {
	index := make(map[models.Category]int)
	groups := make([]CategoryGroup, 0)

	for _, inv := range investments {
		i, ok := index[inv.Category]
		if !ok {
			i = len(groups)
			index[inv.Category] = i
			groups = append(groups, CategoryGroup{Category: inv.Category})
		}
		groups[i].Investments = append(groups[i].Investments, inv)
	}
	return groups
}
