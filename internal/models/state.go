package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StateVersion is the schema version written into new application states.
const StateVersion = "1.0.0"

// Settings holds the application-wide preferences stored with the state.
type Settings struct {
	Currency   string    `json:"currency"`
	Version    string    `json:"version"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// AppState is the whole persisted blob: investments, transactions, cash and settings.
// It is read, modified and written back as a unit; there is no partial write.
type AppState struct {
	Investments  []Investment    `json:"investments"`
	Transactions []Transaction   `json:"transactions"`
	Cash         decimal.Decimal `json:"cash"`
	Settings     Settings        `json:"settings"`
}

// NewAppState returns the initial, empty application state.
func NewAppState(now time.Time) *AppState {
	return &AppState{
		Investments:  []Investment{},
		Transactions: []Transaction{},
		Cash:         decimal.Zero,
		Settings: Settings{
			Currency:   BaseCurrency,
			Version:    StateVersion,
			LastUpdate: now,
		},
	}
}

// EnsureDefaults repairs a decoded state that is missing collections or settings.
func (s *AppState) EnsureDefaults() {
	if s.Investments == nil {
		s.Investments = []Investment{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Settings.Currency == "" {
		s.Settings.Currency = BaseCurrency
	}
	if s.Settings.Version == "" {
		s.Settings.Version = StateVersion
	}
}

// FindInvestment returns the index of the investment with id, or -1.
func (s *AppState) FindInvestment(id string) int {
	for i := range s.Investments {
		if s.Investments[i].ID == id {
			return i
		}
	}
	return -1
}

// ActiveCount counts investments whose status is Active.
func (s *AppState) ActiveCount() int {
	n := 0
	for i := range s.Investments {
		if s.Investments[i].IsActive() {
			n++
		}
	}
	return n
}

// StateEntry is a row of the key-value table backing the application state.
type StateEntry struct {
	Key       string    `gorm:"primaryKey;column:kv_key;type:varchar(255)"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the StateEntry model
func (StateEntry) TableName() string {
	return "kv_entries"
}
