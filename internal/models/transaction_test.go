package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func TestTransaction_PreSave(t *testing.T) {
	tx := &Transaction{
		InvestmentID: "inv-1",
		Type:         " BUY ",
		Amount:       decimal.NewFromFloat(2.5),
		Price:        decimal.NewFromInt(40_000),
		Total:        decimal.NewFromInt(1), // ignored, always recomputed
	}

	require.NoError(t, tx.PreSave())
	assert.Equal(t, TransactionBuy, tx.Type)
	assert.True(t, decimal.NewFromInt(100_000).Equal(tx.Total), "got %s", tx.Total)
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{
			name: "valid sell",
			tx:   Transaction{InvestmentID: "a", Type: TransactionSell, Amount: decimal.NewFromInt(1), Price: decimal.Zero},
		},
		{
			name:    "missing investment",
			tx:      Transaction{Type: TransactionBuy, Amount: decimal.NewFromInt(1)},
			wantErr: true,
		},
		{
			name:    "unknown type",
			tx:      Transaction{InvestmentID: "a", Type: "dividend", Amount: decimal.NewFromInt(1)},
			wantErr: true,
		},
		{
			name:    "zero amount",
			tx:      Transaction{InvestmentID: "a", Type: TransactionBuy},
			wantErr: true,
		},
		{
			name:    "negative price",
			tx:      Transaction{InvestmentID: "a", Type: TransactionBuy, Amount: decimal.NewFromInt(1), Price: decimal.NewFromInt(-1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAppState(t *testing.T) {
	s := NewAppState(fixedTime)
	assert.Empty(t, s.Investments)
	assert.NotNil(t, s.Investments)
	assert.NotNil(t, s.Transactions)
	assert.True(t, s.Cash.IsZero())
	assert.Equal(t, "IDR", s.Settings.Currency)
	assert.Equal(t, StateVersion, s.Settings.Version)
	assert.Equal(t, fixedTime, s.Settings.LastUpdate)
}

func TestPortfolioSnapshot_ROI(t *testing.T) {
	p := PortfolioSnapshot{TotalCapital: decimal.NewFromInt(1_500_000), NetProfit: decimal.NewFromInt(150_000)}
	assert.True(t, decimal.NewFromInt(10).Equal(p.ROI()))

	assert.True(t, NewPortfolioSnapshot().ROI().IsZero())
}

func TestNewROIResult(t *testing.T) {
	r := NewROIResult(decimal.NewFromInt(1000), decimal.NewFromInt(1200))
	assert.True(t, decimal.NewFromInt(200).Equal(r.Profit))
	assert.True(t, decimal.NewFromInt(20).Equal(r.ROI))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-05-17", DayKey(fixedTime))
}
