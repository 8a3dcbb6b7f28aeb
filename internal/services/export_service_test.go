package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/luminark/holdings/internal/models"
)

func setupExport(t *testing.T) (ExportService, *mockStateRepository) {
	t.Helper()
	repo := newMockStateRepository()
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	state := models.NewAppState(created)
	state.Cash = d(250_000)
	state.Investments = []models.Investment{
		{
			ID: "1", Name: "BBCA", Category: models.CategoryIndonesianStocks, Status: models.StatusActive,
			Invested: dp(1_000_000), CurrentValue: d(1_200_000), Currency: "IDR",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "2", Name: "Apple_Inc", Category: models.CategoryForeignStocks, Status: models.StatusActive,
			InitialCapital: d(1_400_000), CurrentValue: d(100), Currency: "USD",
			CreatedAt: created, UpdatedAt: created,
		},
	}
	state.Transactions = []models.Transaction{
		{ID: "t1", InvestmentID: "1", InvestmentName: "BBCA", Type: models.TransactionBuy,
			Amount: d(100), Price: d(10_000), Total: d(1_000_000), CreatedAt: created},
	}
	repo.state = state

	portfolio := newTestPortfolio()
	investments := NewInvestmentService(repo, portfolio, zap.NewNop())
	svc := NewExportService(investments, portfolio, zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return time.Date(2024, 5, 17, 8, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestExportService_FileName(t *testing.T) {
	svc, _ := setupExport(t)
	assert.Equal(t, "luminark-portfolio-2024-05-17.xlsx", svc.FileName("xlsx"))
	assert.Equal(t, "luminark-portfolio-2024-05-17.json", svc.FileName(".json"))
}

func TestExportService_Spreadsheet(t *testing.T) {
	svc, _ := setupExport(t)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteSpreadsheet(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Investasi", "Transaksi", "Ringkasan"}, f.GetSheetList())

	rows, err := f.GetRows("Investasi")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Nama", rows[0][0])
	assert.Equal(t, "BBCA", rows[1][0])
	assert.Equal(t, "200000", rows[1][6])
	assert.Equal(t, "1/5/2024", rows[1][8])
	assert.Equal(t, "", rows[2][4], "absent invested stays blank")

	txRows, err := f.GetRows("Transaksi")
	require.NoError(t, err)
	require.Len(t, txRows, 2)
	assert.Equal(t, "buy", txRows[1][1])

	summary, err := f.GetRows("Ringkasan")
	require.NoError(t, err)
	require.Len(t, summary, 7)
	assert.Equal(t, []string{"Total Modal", "2400000"}, summary[1])
	assert.Equal(t, []string{"Total Nilai", "2700000"}, summary[2])
	assert.Equal(t, []string{"Net Profit", "300000"}, summary[5])
	assert.Equal(t, []string{"Total Kas", "250000"}, summary[6])
}

func TestExportService_Markdown(t *testing.T) {
	svc, _ := setupExport(t)

	md, err := svc.Markdown(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# LuminarK Holdings\n"))
	assert.Contains(t, md, "Tanggal: 17/5/2024")
	assert.Contains(t, md, "| Total Modal | Rp 2.400.000 |")
	assert.Contains(t, md, "| Net Profit | Rp 300.000 |")
	assert.Contains(t, md, "| Total Kas | Rp 250.000 |")
	assert.Contains(t, md, "| Saham Indonesia | 1 | Rp 1.000.000 | Rp 1.200.000 | Rp 200.000 | +20.00% |")
	assert.Contains(t, md, "1. **BBCA**")
	assert.Contains(t, md, `2. **Apple\_Inc**`)
	assert.Contains(t, md, "Modal: $1,400,000.00 | Nilai: $100.00")
}

func TestExportService_HTML(t *testing.T) {
	svc, _ := setupExport(t)

	page, err := svc.HTML(context.Background())
	require.NoError(t, err)

	s := string(page)
	assert.Contains(t, s, "<title>LuminarK Holdings</title>")
	assert.Contains(t, s, "<h1>LuminarK Holdings</h1>")
	assert.Contains(t, s, "<table>")
	assert.Contains(t, s, "<strong>Apple_Inc</strong>")
}

func TestExportService_JSON(t *testing.T) {
	svc, _ := setupExport(t)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteJSON(context.Background(), &buf))

	var state models.AppState
	require.NoError(t, json.Unmarshal(buf.Bytes(), &state))
	assert.Len(t, state.Investments, 2)
	assert.Len(t, state.Transactions, 1)
	assert.True(t, d(250_000).Equal(state.Cash))
	assert.Contains(t, buf.String(), "\n  \"investments\"")
}

func TestExportService_EmptyState(t *testing.T) {
	repo := newMockStateRepository()
	portfolio := newTestPortfolio()
	svc := NewExportService(NewInvestmentService(repo, portfolio, nil), portfolio, nil)

	md, err := svc.Markdown(context.Background())
	require.NoError(t, err)
	assert.Contains(t, md, "Belum ada investasi.")
	assert.NotContains(t, md, "Statistik Kategori")

	var buf bytes.Buffer
	require.NoError(t, svc.WriteSpreadsheet(context.Background(), &buf))
	assert.NotZero(t, buf.Len())
}
