package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/luminark/holdings/docs"
	"github.com/luminark/holdings/internal/services"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Health() error
}

// DashboardStore is a DashboardSource that can be told its value is stale
type DashboardStore interface {
	DashboardSource
	Invalidate()
}

// Dependencies are the services the HTTP API is built on
type Dependencies struct {
	Investments services.InvestmentService
	Portfolio   services.PortfolioService
	Converter   services.CurrencyConverter
	FXProvider  services.FXProvider
	Export      services.ExportService
	Dashboard   DashboardStore
	Health      HealthChecker
	Logger      *zap.Logger
}

// NewRouter registers every route and wraps them in CORS and request logging
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	investmentHandler := NewInvestmentHandler(deps.Investments)
	transactionHandler := NewTransactionHandler(deps.Investments)
	portfolioHandler := NewPortfolioHandler(deps.Investments, deps.Portfolio, deps.Dashboard)
	exportHandler := NewExportHandler(deps.Export, deps.Investments)
	fxHandler := NewFXHandler(deps.Converter, deps.FXProvider)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if deps.Health != nil {
			if err := deps.Health.Health(); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "luminark-holdings",
		})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	if deps.Dashboard != nil {
		api.Use(invalidateOnWrite(deps.Dashboard))
	}

	api.HandleFunc("/investments", investmentHandler.HandleInvestments)
	api.HandleFunc("/investments/{id}", investmentHandler.HandleInvestmentByID)
	api.HandleFunc("/investments/{id}/transactions", investmentHandler.HandleInvestmentTransactions)

	api.HandleFunc("/transactions", transactionHandler.HandleTransactions)

	api.HandleFunc("/cash", portfolioHandler.HandleCash)
	api.HandleFunc("/portfolio/summary", portfolioHandler.HandleSummary)
	api.HandleFunc("/portfolio/categories", portfolioHandler.HandleCategories)
	api.HandleFunc("/portfolio/dashboard", portfolioHandler.HandleDashboard)
	api.HandleFunc("/roi", portfolioHandler.HandleROI)

	api.HandleFunc("/fx/convert", fxHandler.HandleConvert)
	api.HandleFunc("/fx/rate", fxHandler.HandleRate)
	api.HandleFunc("/fx/currencies", fxHandler.HandleCurrencies)

	api.HandleFunc("/export/xlsx", exportHandler.HandleXLSX)
	api.HandleFunc("/export/report", exportHandler.HandleReport)
	api.HandleFunc("/export/json", exportHandler.HandleJSON)
	api.HandleFunc("/import", exportHandler.HandleImport)
	api.HandleFunc("/backups", exportHandler.HandleBackups)
	api.HandleFunc("/backups/{date}/restore", exportHandler.HandleRestore)

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return cors(requestLogger(logger)(router))
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// invalidateOnWrite drops the cached dashboard after any successful mutating request
func invalidateOnWrite(store DashboardStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			if r.Method != http.MethodGet && rec.status < http.StatusBadRequest {
				store.Invalidate()
			}
		})
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
