package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/luminark/holdings/internal/models"
	"github.com/luminark/holdings/internal/services"
)

type InvestmentHandler struct {
	investmentService services.InvestmentService
}

func NewInvestmentHandler(investmentService services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// HandleInvestments handles GET and POST /api/investments
// @Summary List or create investments
// @Description List investments filtered by name search, category and status, or create a new one
// @Tags investments
// @Accept json
// @Produce json
// @Param q query string false "Case-insensitive name search"
// @Param category query string false "Category"
// @Param status query string false "Active or Closed"
// @Param sort query string false "newest, oldest, profitDesc or capitalDesc"
// @Param investment body models.Investment false "Investment to create (POST)"
// @Success 200 {array} models.Investment
// @Success 201 {object} models.Investment
// @Failure 400 {string} string "Validation error"
// @Failure 500 {string} string "Internal server error"
// @Router /investments [get]
// @Router /investments [post]
func (h *InvestmentHandler) HandleInvestments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listInvestments(w, r)
	case http.MethodPost:
		h.createInvestment(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *InvestmentHandler) listInvestments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.InvestmentFilter{
		Search:   q.Get("q"),
		Category: models.Category(q.Get("category")),
		Status:   models.InvestmentStatus(q.Get("status")),
		Sort:     models.InvestmentSort(q.Get("sort")),
	}

	investments, err := h.investmentService.ListInvestments(r.Context(), filter)
	if err != nil {
		writeError(w, "Failed to list investments", err)
		return
	}
	writeJSON(w, http.StatusOK, investments)
}

func (h *InvestmentHandler) createInvestment(w http.ResponseWriter, r *http.Request) {
	var inv models.Investment
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.investmentService.AddInvestment(r.Context(), &inv)
	if err != nil {
		writeError(w, "Failed to create investment", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleInvestmentByID handles GET, PUT and DELETE /api/investments/{id}
// @Summary Get, update or delete an investment
// @Description Operate on a single investment by ID. PUT applies a partial update.
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param update body models.InvestmentUpdate false "Fields to change (PUT)"
// @Success 200 {object} models.Investment
// @Success 204 "Deleted"
// @Failure 400 {string} string "Validation error"
// @Failure 404 {string} string "Investment not found"
// @Failure 500 {string} string "Internal server error"
// @Router /investments/{id} [get]
// @Router /investments/{id} [put]
// @Router /investments/{id} [delete]
func (h *InvestmentHandler) HandleInvestmentByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Investment ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		inv, err := h.investmentService.GetInvestment(r.Context(), id)
		if err != nil {
			writeError(w, "Failed to get investment", err)
			return
		}
		if inv == nil {
			writeError(w, "", notFound("investment", id))
			return
		}
		writeJSON(w, http.StatusOK, inv)

	case http.MethodPut:
		var update models.InvestmentUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		inv, err := h.investmentService.UpdateInvestment(r.Context(), id, update)
		if err != nil {
			writeError(w, "Failed to update investment", err)
			return
		}
		if inv == nil {
			writeError(w, "", notFound("investment", id))
			return
		}
		writeJSON(w, http.StatusOK, inv)

	case http.MethodDelete:
		deleted, err := h.investmentService.DeleteInvestment(r.Context(), id)
		if err != nil {
			writeError(w, "Failed to delete investment", err)
			return
		}
		if !deleted {
			writeError(w, "", notFound("investment", id))
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleInvestmentTransactions handles GET /api/investments/{id}/transactions
// @Summary List transactions of an investment
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {array} models.Transaction
// @Failure 404 {string} string "Investment not found"
// @Failure 500 {string} string "Internal server error"
// @Router /investments/{id}/transactions [get]
func (h *InvestmentHandler) HandleInvestmentTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := mux.Vars(r)["id"]

	inv, err := h.investmentService.GetInvestment(r.Context(), id)
	if err != nil {
		writeError(w, "Failed to get investment", err)
		return
	}
	if inv == nil {
		writeError(w, "", notFound("investment", id))
		return
	}

	txs, err := h.investmentService.ListTransactions(r.Context(), models.TransactionFilter{InvestmentID: id})
	if err != nil {
		writeError(w, "Failed to list transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}
