package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/luminark/holdings/internal/models"
	"github.com/luminark/holdings/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	export      services.ExportService
	investments services.InvestmentService
}

func NewExportHandler(export services.ExportService, investments services.InvestmentService) *ExportHandler {
	return &ExportHandler{export: export, investments: investments}
}

func attachment(w http.ResponseWriter, contentType, name string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}

// HandleXLSX handles GET /api/export/xlsx
// @Summary Spreadsheet export
// @Description Workbook with Investasi, Transaksi and Ringkasan sheets
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {string} string "Internal server error"
// @Router /export/xlsx [get]
func (h *ExportHandler) HandleXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := h.export.WriteSpreadsheet(r.Context(), &buf); err != nil {
		writeError(w, "Failed to export spreadsheet", err)
		return
	}
	attachment(w, xlsxContentType, h.export.FileName("xlsx"))
	_, _ = w.Write(buf.Bytes())
}

// HandleReport handles GET /api/export/report
// @Summary Portfolio report
// @Description HTML report; format=md returns the markdown source instead
// @Tags export
// @Produce html
// @Param format query string false "html (default) or md"
// @Success 200 {string} string "Report"
// @Failure 500 {string} string "Internal server error"
// @Router /export/report [get]
func (h *ExportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Query().Get("format") == "md" {
		md, err := h.export.Markdown(r.Context())
		if err != nil {
			writeError(w, "Failed to render report", err)
			return
		}
		attachment(w, "text/markdown; charset=utf-8", h.export.FileName("md"))
		_, _ = w.Write([]byte(md))
		return
	}

	page, err := h.export.HTML(r.Context())
	if err != nil {
		writeError(w, "Failed to render report", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// HandleJSON handles GET /api/export/json
// @Summary Raw data export
// @Tags export
// @Produce json
// @Success 200 {object} models.AppState
// @Failure 500 {string} string "Internal server error"
// @Router /export/json [get]
func (h *ExportHandler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := h.export.WriteJSON(r.Context(), &buf); err != nil {
		writeError(w, "Failed to export data", err)
		return
	}
	attachment(w, "application/json", h.export.FileName("json"))
	_, _ = w.Write(buf.Bytes())
}

// HandleImport handles POST /api/import
// @Summary Import raw data
// @Description Replaces the whole application state with the posted snapshot
// @Tags export
// @Accept json
// @Produce json
// @Param state body models.AppState true "Application state"
// @Success 200 {object} map[string]int
// @Failure 400 {string} string "Invalid state"
// @Failure 500 {string} string "Internal server error"
// @Router /import [post]
func (h *ExportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var state models.AppState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.investments.ImportState(r.Context(), &state); err != nil {
		writeError(w, "Failed to import", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"investments":  len(state.Investments),
		"transactions": len(state.Transactions),
	})
}

// HandleBackups handles GET /api/backups
// @Summary List daily snapshots
// @Tags backups
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "Internal server error"
// @Router /backups [get]
func (h *ExportHandler) HandleBackups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days, err := h.investments.ListBackups(r.Context())
	if err != nil {
		writeError(w, "Failed to list backups", err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// HandleRestore handles POST /api/backups/{date}/restore
// @Summary Restore a daily snapshot
// @Tags backups
// @Produce json
// @Param date path string true "Snapshot day (YYYY-MM-DD)"
// @Success 200 {object} models.AppState
// @Failure 400 {string} string "Invalid date"
// @Failure 404 {string} string "Backup not found"
// @Failure 500 {string} string "Internal server error"
// @Router /backups/{date}/restore [post]
func (h *ExportHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	day := mux.Vars(r)["date"]
	if _, err := time.Parse("2006-01-02", day); err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	state, err := h.investments.RestoreBackup(r.Context(), day)
	if err != nil {
		writeError(w, "Failed to restore backup", err)
		return
	}
	if state == nil {
		writeError(w, "", notFound("backup", day))
		return
	}
	writeJSON(w, http.StatusOK, state)
}
