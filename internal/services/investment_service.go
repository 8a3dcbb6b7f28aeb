package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/luminark/holdings/internal/errors"
	"github.com/luminark/holdings/internal/models"
	"github.com/luminark/holdings/internal/repositories"
)

// errLookupMiss aborts a mutation without writing; it never leaves the service.
var errLookupMiss = errors.New("lookup miss")

type investmentService struct {
	repo      repositories.StateRepository
	portfolio PortfolioService
	logger    *zap.Logger
	now       func() time.Time

	// mu serializes read-modify-write cycles on the state blob
	mu sync.Mutex
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(repo repositories.StateRepository, portfolio PortfolioService, logger *zap.Logger) InvestmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &investmentService{
		repo:      repo,
		portfolio: portfolio,
		logger:    logger,
		now:       time.Now,
	}
}

// mutate loads the state, applies fn and writes the state back when fn succeeds
func (s *investmentService) mutate(ctx context.Context, fn func(state *models.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	if err := fn(state); err != nil {
		return err
	}
	if err := s.repo.Put(ctx, state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func (s *investmentService) load(ctx context.Context) (*models.AppState, error) {
	state, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return state, nil
}

// AddInvestment validates inv, assigns an id and timestamps, and stores it
func (s *investmentService) AddInvestment(ctx context.Context, inv *models.Investment) (*models.Investment, error) {
	created := *inv
	created.Normalize()
	if err := created.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	err := s.mutate(ctx, func(state *models.AppState) error {
		state.Investments = append(state.Investments, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("investment added",
		zap.String("id", created.ID),
		zap.String("name", created.Name),
		zap.String("category", string(created.Category)))
	return &created, nil
}

// UpdateInvestment merges update into the investment with id
func (s *investmentService) UpdateInvestment(ctx context.Context, id string, update models.InvestmentUpdate) (*models.Investment, error) {
	var updated *models.Investment

	err := s.mutate(ctx, func(state *models.AppState) error {
		idx := state.FindInvestment(id)
		if idx < 0 {
			return errLookupMiss
		}

		inv := state.Investments[idx]
		update.Apply(&inv)
		inv.Normalize()
		if err := inv.Validate(); err != nil {
			return err
		}
		inv.UpdatedAt = s.now().UTC()

		state.Investments[idx] = inv
		updated = &inv
		return nil
	})
	if errors.Is(err, errLookupMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteInvestment removes the investment with id and reports whether it existed
func (s *investmentService) DeleteInvestment(ctx context.Context, id string) (bool, error) {
	err := s.mutate(ctx, func(state *models.AppState) error {
		idx := state.FindInvestment(id)
		if idx < 0 {
			return errLookupMiss
		}
		state.Investments = append(state.Investments[:idx], state.Investments[idx+1:]...)
		return nil
	})
	if errors.Is(err, errLookupMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.logger.Info("investment deleted", zap.String("id", id))
	return true, nil
}

// GetInvestment returns the investment with id, or nil when absent
func (s *investmentService) GetInvestment(ctx context.Context, id string) (*models.Investment, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := state.FindInvestment(id)
	if idx < 0 {
		return nil, nil
	}
	inv := state.Investments[idx]
	return &inv, nil
}

// ListInvestments filters and sorts investments the way the portfolio page does
func (s *investmentService) ListInvestments(ctx context.Context, filter models.InvestmentFilter) ([]models.Investment, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	status := models.InvestmentStatus("")
	if filter.Status != "" {
		status = models.NormalizeStatus(filter.Status)
	}

	result := make([]models.Investment, 0, len(state.Investments))
	for _, inv := range state.Investments {
		if search != "" && !strings.Contains(strings.ToLower(inv.Name), search) {
			continue
		}
		if filter.Category != "" && inv.Category != filter.Category {
			continue
		}
		if status != "" && models.NormalizeStatus(inv.Status) != status {
			continue
		}
		result = append(result, inv)
	}

	sortInvestments(result, filter.Sort)
	return result, nil
}

func sortInvestments(list []models.Investment, order models.InvestmentSort) {
	switch order {
	case models.SortOldest:
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	case models.SortProfitDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Profit().GreaterThan(list[j].Profit()) })
	case models.SortCapitalDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Capital().GreaterThan(list[j].Capital()) })
	default:
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	}
}

// AddTransaction records a buy or sell. The investment name is copied when the investment exists.
func (s *investmentService) AddTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	created := *tx
	if err := created.PreSave(); err != nil {
		return nil, err
	}
	created.ID = uuid.NewString()
	created.CreatedAt = s.now().UTC()

	err := s.mutate(ctx, func(state *models.AppState) error {
		if idx := state.FindInvestment(created.InvestmentID); idx >= 0 {
			created.InvestmentName = state.Investments[idx].Name
		}
		state.Transactions = append(state.Transactions, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transaction added",
		zap.String("id", created.ID),
		zap.String("investment_id", created.InvestmentID),
		zap.String("type", string(created.Type)),
		zap.String("total", created.Total.String()))
	return &created, nil
}

// ListTransactions returns all transactions, or only those of filter.InvestmentID
func (s *investmentService) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Transaction, 0, len(state.Transactions))
	for _, tx := range state.Transactions {
		if filter.InvestmentID != "" && tx.InvestmentID != filter.InvestmentID {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}

func (s *investmentService) GetCash(ctx context.Context) (decimal.Decimal, error) {
	state, err := s.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return state.Cash, nil
}

func (s *investmentService) SetCash(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &apperrors.ErrValidation{Field: "cash", Message: "must be non-negative"}
	}
	return s.mutate(ctx, func(state *models.AppState) error {
		state.Cash = amount
		return nil
	})
}

// Dashboard computes cash, active investment count and the portfolio snapshot
func (s *investmentService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		Cash:           state.Cash,
		PortfolioCount: state.ActiveCount(),
		Portfolio:      s.portfolio.Aggregate(ctx, state.Investments),
		GeneratedAt:    s.now().UTC(),
	}, nil
}

func (s *investmentService) ExportState(ctx context.Context) (*models.AppState, error) {
	return s.load(ctx)
}

// ImportState replaces the whole state after validating every investment
func (s *investmentService) ImportState(ctx context.Context, state *models.AppState) error {
	if state == nil {
		return &apperrors.ErrValidation{Field: "state", Message: "is required"}
	}
	state.EnsureDefaults()
	for i := range state.Investments {
		state.Investments[i].Normalize()
		if err := state.Investments[i].Validate(); err != nil {
			return fmt.Errorf("investment %d: %w", i, err)
		}
	}
	if state.Cash.IsNegative() {
		return &apperrors.ErrValidation{Field: "cash", Message: "must be non-negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Put(ctx, state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	s.logger.Info("state imported",
		zap.Int("investments", len(state.Investments)),
		zap.Int("transactions", len(state.Transactions)))
	return nil
}

// SnapshotState rewrites the current state unchanged so today's backup exists
func (s *investmentService) SnapshotState(ctx context.Context) error {
	return s.mutate(ctx, func(*models.AppState) error { return nil })
}

func (s *investmentService) ListBackups(ctx context.Context) ([]string, error) {
	return s.repo.ListBackups(ctx)
}

// RestoreBackup makes the snapshot of day the current state. Returns nil when no
// snapshot exists for that day.
func (s *investmentService) RestoreBackup(ctx context.Context, day string) (*models.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.repo.GetBackup(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load backup %s: %w", day, err)
	}
	if snap == nil {
		return nil, nil
	}
	if err := s.repo.Put(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to restore backup %s: %w", day, err)
	}

	s.logger.Info("backup restored", zap.String("day", day))
	return snap, nil
}
