package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminark/holdings/internal/models"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func dp(v int64) *decimal.Decimal {
	x := decimal.NewFromInt(v)
	return &x
}

func newTestPortfolio() PortfolioService {
	return NewPortfolioService(fixedConverter{rates: map[string]decimal.Decimal{
		"USD": d(15_000),
		"SGD": d(11_000),
	}})
}

func TestPortfolioService_AggregateScenario(t *testing.T) {
	investments := []models.Investment{
		{Invested: dp(1_000_000), CurrentValue: d(1_200_000), Currency: "IDR"},
		{Invested: dp(500_000), CurrentValue: d(400_000), Currency: "IDR"},
	}

	snap := newTestPortfolio().Aggregate(context.Background(), investments)

	assert.True(t, d(1_500_000).Equal(snap.TotalCapital), "capital %s", snap.TotalCapital)
	assert.True(t, d(1_600_000).Equal(snap.TotalValue), "value %s", snap.TotalValue)
	assert.True(t, d(200_000).Equal(snap.TotalProfit), "profit %s", snap.TotalProfit)
	assert.True(t, d(100_000).Equal(snap.TotalLoss), "loss %s", snap.TotalLoss)
	assert.True(t, d(100_000).Equal(snap.NetProfit), "net %s", snap.NetProfit)
}

func TestPortfolioService_AggregateEmpty(t *testing.T) {
	snap := newTestPortfolio().Aggregate(context.Background(), nil)
	assert.True(t, snap.TotalCapital.IsZero())
	assert.True(t, snap.TotalValue.IsZero())
	assert.True(t, snap.NetProfit.IsZero())
	assert.True(t, snap.ROI().IsZero())
}

func TestPortfolioService_AggregateConvertsValueOnly(t *testing.T) {
	// capital is summed as entered; only the current value is converted
	investments := []models.Investment{
		{InitialCapital: d(1_400_000), CurrentValue: d(100), Currency: "USD"},
	}
	snap := newTestPortfolio().Aggregate(context.Background(), investments)
	assert.True(t, d(1_400_000).Equal(snap.TotalCapital))
	assert.True(t, d(1_500_000).Equal(snap.TotalValue))
	assert.True(t, d(100_000).Equal(snap.TotalProfit))
}

func TestPortfolioService_BreakevenCountsAsLoss(t *testing.T) {
	investments := []models.Investment{
		{InitialCapital: d(100), CurrentValue: d(100), Currency: "IDR"},
	}
	snap := newTestPortfolio().Aggregate(context.Background(), investments)
	assert.True(t, snap.TotalProfit.IsZero())
	assert.True(t, snap.TotalLoss.IsZero())
}

func TestPortfolioService_AggregateOrderInvariant(t *testing.T) {
	investments := []models.Investment{
		{InitialCapital: d(1_000_000), CurrentValue: d(1_250_000), Currency: "IDR"},
		{InitialCapital: d(3_000_000), Invested: dp(2_500_000), CurrentValue: d(150), Currency: "USD"},
		{InitialCapital: d(750_000), CurrentValue: d(500_000)},
		{InitialCapital: d(0), CurrentValue: d(10), Currency: "SGD"},
		{InitialCapital: d(200_000), Invested: dp(0), CurrentValue: d(0), Currency: "IDR"},
		{InitialCapital: decimal.RequireFromString("123456.78"), CurrentValue: decimal.RequireFromString("98765.43"), Currency: "IDR"},
	}

	svc := newTestPortfolio()
	ctx := context.Background()
	want := svc.Aggregate(ctx, investments)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.Investment(nil), investments...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := svc.Aggregate(ctx, shuffled)
		assert.True(t, want.TotalCapital.Equal(got.TotalCapital))
		assert.True(t, want.TotalValue.Equal(got.TotalValue))
		assert.True(t, want.TotalProfit.Equal(got.TotalProfit))
		assert.True(t, want.TotalLoss.Equal(got.TotalLoss))
		assert.True(t, want.NetProfit.Equal(got.NetProfit))
	}
}

func TestPortfolioService_CategoryStats(t *testing.T) {
	investments := []models.Investment{
		{Category: "A", InitialCapital: d(100), CurrentValue: d(150), Currency: "IDR"},
		{Category: "B", InitialCapital: d(200), CurrentValue: d(100), Currency: "IDR"},
		{Category: "A", InitialCapital: d(300), CurrentValue: d(350), Currency: "IDR"},
	}

	stats := newTestPortfolio().CategoryStats(context.Background(), investments)
	require.Len(t, stats, 2)

	assert.Equal(t, models.Category("A"), stats[0].Category)
	assert.Equal(t, 2, stats[0].Count)
	assert.True(t, d(400).Equal(stats[0].TotalCapital))
	assert.True(t, d(500).Equal(stats[0].TotalValue))
	assert.True(t, d(100).Equal(stats[0].Profit))
	assert.True(t, d(25).Equal(stats[0].ProfitPercentage))

	assert.Equal(t, models.Category("B"), stats[1].Category)
	assert.Equal(t, 1, stats[1].Count)
	assert.True(t, d(-50).Equal(stats[1].ProfitPercentage))
}

func TestPortfolioService_CategoryStatsEdges(t *testing.T) {
	svc := newTestPortfolio()
	ctx := context.Background()

	empty := svc.CategoryStats(ctx, nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	single := []models.Investment{
		{Category: models.CategoryCrypto, InitialCapital: d(0), CurrentValue: d(10), Currency: "USD"},
		{Category: models.CategoryCrypto, InitialCapital: d(0), CurrentValue: d(5), Currency: "USD"},
		{Category: models.CategoryCrypto, InitialCapital: d(0), CurrentValue: d(0), Currency: "USD"},
	}
	stats := svc.CategoryStats(ctx, single)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].Count)
	assert.True(t, d(225_000).Equal(stats[0].TotalValue))
	assert.True(t, stats[0].ProfitPercentage.IsZero(), "zero capital yields zero percentage")
}

func TestGroupByCategory_CaseSensitive(t *testing.T) {
	groups := GroupByCategory([]models.Investment{
		{ID: "1", Category: "Emas"},
		{ID: "2", Category: "emas"},
		{ID: "3", Category: "Emas"},
	})
	require.Len(t, groups, 2)
	assert.Equal(t, models.Category("Emas"), groups[0].Category)
	assert.Equal(t, "1", groups[0].Investments[0].ID)
	assert.Equal(t, "3", groups[0].Investments[1].ID)
	assert.Equal(t, models.Category("emas"), groups[1].Category)
}
