package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"github.com/luminark/holdings/internal/format"
	"github.com/luminark/holdings/internal/models"
)

const (
	exportFilePrefix = "luminark-portfolio"
	reportTitle      = "LuminarK Holdings"

	sheetInvestments  = "Investasi"
	sheetTransactions = "Transaksi"
	sheetSummary      = "Ringkasan"

	// id-ID short date, as shown in the report and the spreadsheet
	displayDate = "2/1/2006"
)

type exportService struct {
	investments InvestmentService
	portfolio   PortfolioService
	logger      *zap.Logger
	now         func() time.Time
}

// NewExportService creates a new export service
func NewExportService(investments InvestmentService, portfolio PortfolioService, logger *zap.Logger) ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &exportService{
		investments: investments,
		portfolio:   portfolio,
		logger:      logger,
		now:         time.Now,
	}
}

// FileName returns the download name for ext, dated today
func (s *exportService) FileName(ext string) string {
	return fmt.Sprintf("%s-%s.%s", exportFilePrefix, models.DayKey(s.now()), strings.TrimPrefix(ext, "."))
}

// WriteSpreadsheet writes a workbook with investment, transaction and summary sheets
func (s *exportService) WriteSpreadsheet(ctx context.Context, w io.Writer) error {
	state, err := s.investments.ExportState(ctx)
	if err != nil {
		return err
	}
	snap := s.portfolio.Aggregate(ctx, state.Investments)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Error("failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetInvestments); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetTransactions, err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetSummary, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#cfe2f3"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	rows := [][]interface{}{{
		"Nama", "Kategori", "Status", "Modal Awal", "Modal Ditanam", "Nilai Sekarang",
		"Profit/Loss", "Mata Uang", "Tanggal Dibuat", "Update Terakhir",
	}}
	for _, inv := range state.Investments {
		var invested interface{}
		if inv.Invested != nil {
			invested = inv.Invested.InexactFloat64()
		}
		rows = append(rows, []interface{}{
			inv.Name,
			string(inv.Category),
			string(inv.Status),
			inv.InitialCapital.InexactFloat64(),
			invested,
			inv.CurrentValue.InexactFloat64(),
			inv.Profit().InexactFloat64(),
			models.NormalizeCurrency(inv.Currency),
			inv.CreatedAt.Format(displayDate),
			inv.UpdatedAt.Format(displayDate),
		})
	}
	if err := writeSheet(f, sheetInvestments, rows, headerStyle); err != nil {
		return err
	}

	rows = [][]interface{}{{"Tanggal", "Tipe", "Investasi", "Jumlah", "Harga", "Total", "Catatan"}}
	for _, tx := range state.Transactions {
		rows = append(rows, []interface{}{
			tx.CreatedAt.Format(displayDate),
			string(tx.Type),
			tx.InvestmentName,
			tx.Amount.InexactFloat64(),
			tx.Price.InexactFloat64(),
			tx.Total.InexactFloat64(),
			tx.Notes,
		})
	}
	if err := writeSheet(f, sheetTransactions, rows, headerStyle); err != nil {
		return err
	}

	rows = [][]interface{}{
		{"Metrik", "Nilai"},
		{"Total Modal", snap.TotalCapital.InexactFloat64()},
		{"Total Nilai", snap.TotalValue.InexactFloat64()},
		{"Total Profit", snap.TotalProfit.InexactFloat64()},
		{"Total Loss", snap.TotalLoss.InexactFloat64()},
		{"Net Profit", snap.NetProfit.InexactFloat64()},
		{"Total Kas", state.Cash.InexactFloat64()},
	}
	if err := writeSheet(f, sheetSummary, rows, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Debug("spreadsheet exported",
		zap.Int("investments", len(state.Investments)),
		zap.Int("transactions", len(state.Transactions)))
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

// Markdown renders the portfolio report: summary, category statistics and the investment list
func (s *exportService) Markdown(ctx context.Context) (string, error) {
	state, err := s.investments.ExportState(ctx)
	if err != nil {
		return "", err
	}
	snap := s.portfolio.Aggregate(ctx, state.Investments)
	stats := s.portfolio.CategoryStats(ctx, state.Investments)
	base := models.BaseCurrency

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", reportTitle)
	b.WriteString("Laporan Portofolio Investasi\n\n")
	fmt.Fprintf(&b, "Tanggal: %s\n\n", s.now().Format(displayDate))

	b.WriteString("## Ringkasan Portofolio\n\n")
	b.WriteString("| Metrik | Nilai |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Total Modal | %s |\n", format.Currency(snap.TotalCapital, base))
	fmt.Fprintf(&b, "| Total Nilai | %s |\n", format.Currency(snap.TotalValue, base))
	fmt.Fprintf(&b, "| Total Profit | %s |\n", format.Currency(snap.TotalProfit, base))
	fmt.Fprintf(&b, "| Total Loss | %s |\n", format.Currency(snap.TotalLoss, base))
	fmt.Fprintf(&b, "| Net Profit | %s |\n", format.Currency(snap.NetProfit, base))
	fmt.Fprintf(&b, "| ROI | %s |\n", format.Percent(snap.ROI()))
	fmt.Fprintf(&b, "| Total Kas | %s |\n\n", format.Currency(state.Cash, base))

	if len(stats) > 0 {
		b.WriteString("## Statistik Kategori\n\n")
		b.WriteString("| Kategori | Jumlah | Modal | Nilai | Profit | % |\n|---|---:|---:|---:|---:|---:|\n")
		for _, st := range stats {
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
				escapeMarkdown(string(st.Category)), st.Count,
				format.Currency(st.TotalCapital, base),
				format.Currency(st.TotalValue, base),
				format.Currency(st.Profit, base),
				format.Percent(st.ProfitPercentage))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Daftar Investasi\n\n")
	if len(state.Investments) == 0 {
		b.WriteString("Belum ada investasi.\n")
	}
	for i, inv := range state.Investments {
		code := models.NormalizeCurrency(inv.Currency)
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, escapeMarkdown(inv.Name))
		fmt.Fprintf(&b, "   - Kategori: %s | Status: %s\n", escapeMarkdown(string(inv.Category)), inv.Status)
		fmt.Fprintf(&b, "   - Modal: %s | Nilai: %s\n", format.Currency(inv.Capital(), code), format.Currency(inv.CurrentValue, code))
		fmt.Fprintf(&b, "   - Profit/Loss: %s (%s)\n", format.Currency(inv.Profit(), code), format.Percent(inv.ProfitPercentage()))
	}

	return b.String(), nil
}

// HTML renders the markdown report into a standalone HTML page
func (s *exportService) HTML(ctx context.Context) ([]byte, error) {
	src, err := s.Markdown(ctx)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := md.Convert([]byte(src), &body); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html lang=\"id\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(reportTitle))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// WriteJSON writes the raw application state as indented JSON
func (s *exportService) WriteJSON(ctx context.Context, w io.Writer) error {
	state, err := s.investments.ExportState(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "|", `\|`, "[", `\[`, "]", `\]`, "#", `\#`, "<", "&lt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
