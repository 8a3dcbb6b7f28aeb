package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/luminark/holdings/internal/models"
	"github.com/luminark/holdings/internal/services"
)

type TransactionHandler struct {
	service services.InvestmentService
}

func NewTransactionHandler(service services.InvestmentService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// HandleTransactions handles collection-level operations for transactions.
// Transactions are append-only; there is no update or delete.
// @Summary List or create transactions
// @Description Get all transactions, optionally for one investment, or record a buy or sell
// @Tags transactions
// @Accept json
// @Produce json
// @Param investment_id query string false "Only transactions of this investment"
// @Param transaction body models.Transaction false "Transaction to record (POST)"
// @Success 200 {array} models.Transaction
// @Success 201 {object} models.Transaction
// @Failure 400 {string} string "Invalid request"
// @Failure 500 {string} string "Internal server error"
// @Router /transactions [get]
// @Router /transactions [post]
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := models.TransactionFilter{InvestmentID: r.URL.Query().Get("investment_id")}
		txs, err := h.service.ListTransactions(r.Context(), filter)
		if err != nil {
			writeError(w, "Failed to list transactions", err)
			return
		}
		writeJSON(w, http.StatusOK, txs)

	case http.MethodPost:
		var tx models.Transaction
		if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		created, err := h.service.AddTransaction(r.Context(), &tx)
		if err != nil {
			writeError(w, "Failed to create transaction", err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
