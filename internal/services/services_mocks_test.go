package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/models"
)

// ---- Mocks for providers and repositories used in unit tests ----

type mockFXProvider struct {
	mu    sync.Mutex
	rates map[string]decimal.Decimal
	err   error
	calls int
}

func (m *mockFXProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return decimal.Zero, m.err
	}
	rate, ok := m.rates[from+":"+to]
	if !ok {
		return decimal.Zero, errors.New("no rate")
	}
	return rate, nil
}
func (m *mockFXProvider) GetRates(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	for _, t := range targets {
		r, err := m.GetRate(ctx, base, t)
		if err != nil {
			return nil, err
		}
		out[t] = r
	}
	return out, nil
}
func (m *mockFXProvider) IsSupported(from, to string) bool { return true }
func (m *mockFXProvider) GetSupportedCurrencies() []string { return nil }
func (m *mockFXProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// fixedConverter multiplies non-IDR amounts by a per-currency rate
type fixedConverter struct {
	rates map[string]decimal.Decimal
}

func (c fixedConverter) ConvertToBase(ctx context.Context, amount decimal.Decimal, currency string) decimal.Decimal {
	if currency == "" || currency == models.BaseCurrency {
		return amount
	}
	return amount.Mul(c.rates[currency])
}
func (c fixedConverter) BaseCurrency() string { return models.BaseCurrency }

type mockStateRepository struct {
	state   *models.AppState
	backups map[string]*models.AppState
	puts    int
	getErr  error
	putErr  error
	now     func() time.Time
}

func newMockStateRepository() *mockStateRepository {
	return &mockStateRepository{
		backups: make(map[string]*models.AppState),
		now:     func() time.Time { return time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC) },
	}
}

func (m *mockStateRepository) Get(ctx context.Context) (*models.AppState, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.state == nil {
		return models.NewAppState(m.now()), nil
	}
	return cloneState(m.state), nil
}
func (m *mockStateRepository) Put(ctx context.Context, state *models.AppState) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	state.Settings.LastUpdate = m.now()
	m.state = cloneState(state)
	m.backups[models.DayKey(m.now())] = cloneState(state)
	return nil
}
func (m *mockStateRepository) ListBackups(ctx context.Context) ([]string, error) {
	days := make([]string, 0, len(m.backups))
	for d := range m.backups {
		days = append(days, d)
	}
	return days, nil
}
func (m *mockStateRepository) GetBackup(ctx context.Context, day string) (*models.AppState, error) {
	if s, ok := m.backups[day]; ok {
		return cloneState(s), nil
	}
	return nil, nil
}

func cloneState(s *models.AppState) *models.AppState {
	c := *s
	c.Investments = append([]models.Investment(nil), s.Investments...)
	c.Transactions = append([]models.Transaction(nil), s.Transactions...)
	return &c
}
