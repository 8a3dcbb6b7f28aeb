package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/luminark/holdings/internal/errors"
)

// Category classifies an investment. Grouping is by exact string, so values
// outside the known set still aggregate, they just fail validation on write.
type Category string

const (
	CategoryIndonesianStocks Category = "Saham Indonesia"
	CategoryForeignStocks    Category = "Saham Luar Negeri"
	CategoryMutualFunds      Category = "Reksadana"
	CategoryCrypto           Category = "Crypto"
	CategoryGold             Category = "Emas"
	CategoryBonds            Category = "Obligasi"
	CategorySavings          Category = "Tabungan"
	CategoryProperty         Category = "Properti"
)

// Categories returns the fixed enumeration in display order.
func Categories() []Category {
	return []Category{
		CategoryIndonesianStocks,
		CategoryForeignStocks,
		CategoryMutualFunds,
		CategoryCrypto,
		CategoryGold,
		CategoryBonds,
		CategorySavings,
		CategoryProperty,
	}
}

// IsValidCategory reports whether c belongs to the enumeration.
func IsValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// InvestmentStatus is either Active or Closed.
type InvestmentStatus string

const (
	StatusActive InvestmentStatus = "Active"
	StatusClosed InvestmentStatus = "Closed"

	// statusActiveLegacy is what older exports wrote for active positions.
	statusActiveLegacy = "Aktif"
)

// NormalizeStatus maps empty and legacy values onto the canonical statuses.
func NormalizeStatus(s InvestmentStatus) InvestmentStatus {
	switch strings.TrimSpace(string(s)) {
	case "", statusActiveLegacy, string(StatusActive):
		return StatusActive
	case string(StatusClosed):
		return StatusClosed
	}
	return s
}

// BaseCurrency is the currency all aggregated totals are expressed in.
const BaseCurrency = "IDR"

// Investment is a single tracked position.
type Investment struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       Category         `json:"category"`
	Status         InvestmentStatus `json:"status"`
	InitialCapital decimal.Decimal  `json:"initialCapital"`
	// Invested is optional; nil resolves to InitialCapital (see Capital).
	Invested     *decimal.Decimal `json:"invested,omitempty"`
	CurrentValue decimal.Decimal  `json:"currentValue"`
	Currency     string           `json:"currency"`
	Description  string           `json:"description,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	ProofImages  []string         `json:"proofImages,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// InvestmentUpdate carries the fields of a partial update. Nil fields are left untouched.
type InvestmentUpdate struct {
	Name           *string           `json:"name,omitempty"`
	Category       *Category         `json:"category,omitempty"`
	Status         *InvestmentStatus `json:"status,omitempty"`
	InitialCapital *decimal.Decimal  `json:"initialCapital,omitempty"`
	Invested       *decimal.Decimal  `json:"invested,omitempty"`
	CurrentValue   *decimal.Decimal  `json:"currentValue,omitempty"`
	Currency       *string           `json:"currency,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
	ProofImages    []string          `json:"proofImages,omitempty"`
}

// Apply merges u into inv.
func (u *InvestmentUpdate) Apply(inv *Investment) {
	if u.Name != nil {
		inv.Name = *u.Name
	}
	if u.Category != nil {
		inv.Category = *u.Category
	}
	if u.Status != nil {
		inv.Status = *u.Status
	}
	if u.InitialCapital != nil {
		inv.InitialCapital = *u.InitialCapital
	}
	if u.Invested != nil {
		invested := *u.Invested
		inv.Invested = &invested
	}
	if u.CurrentValue != nil {
		inv.CurrentValue = *u.CurrentValue
	}
	if u.Currency != nil {
		inv.Currency = *u.Currency
	}
	if u.Description != nil {
		inv.Description = *u.Description
	}
	if u.Notes != nil {
		inv.Notes = *u.Notes
	}
	if u.ProofImages != nil {
		inv.ProofImages = append([]string(nil), u.ProofImages...)
	}
}

// InvestmentFilter represents filters for listing investments
type InvestmentFilter struct {
	Search   string
	Category Category
	Status   InvestmentStatus
	Sort     InvestmentSort
}

// InvestmentSort selects the list ordering.
type InvestmentSort string

const (
	SortNewest      InvestmentSort = "newest"
	SortOldest      InvestmentSort = "oldest"
	SortProfitDesc  InvestmentSort = "profitDesc"
	SortCapitalDesc InvestmentSort = "capitalDesc"
)

// Normalize fills defaults: currency IDR upper-cased and a canonical status.
func (inv *Investment) Normalize() {
	inv.Name = strings.TrimSpace(inv.Name)
	inv.Currency = NormalizeCurrency(inv.Currency)
	inv.Status = NormalizeStatus(inv.Status)
}

// NormalizeCurrency upper-cases code and defaults empty codes to the base currency.
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return BaseCurrency
	}
	return code
}

// Validate validates the investment data
func (inv *Investment) Validate() error {
	if strings.TrimSpace(inv.Name) == "" {
		return &apperrors.ErrValidation{Field: "name", Message: "is required"}
	}
	if inv.Category == "" {
		return &apperrors.ErrValidation{Field: "category", Message: "is required"}
	}
	if !IsValidCategory(inv.Category) {
		return &apperrors.ErrValidation{Field: "category", Message: "is not supported"}
	}
	if inv.Status != StatusActive && inv.Status != StatusClosed {
		return &apperrors.ErrValidation{Field: "status", Message: "must be Active or Closed"}
	}
	if inv.InitialCapital.IsNegative() {
		return &apperrors.ErrValidation{Field: "initialCapital", Message: "must be non-negative"}
	}
	if inv.Invested != nil && inv.Invested.IsNegative() {
		return &apperrors.ErrValidation{Field: "invested", Message: "must be non-negative"}
	}
	if inv.CurrentValue.IsNegative() {
		return &apperrors.ErrValidation{Field: "currentValue", Message: "must be non-negative"}
	}
	return nil
}

// Capital resolves the invested amount: Invested when set, InitialCapital otherwise.
// An explicit zero Invested stays zero.
func (inv *Investment) Capital() decimal.Decimal {
	return ResolveCapital(inv.InitialCapital, inv.Invested)
}

// Profit is CurrentValue minus Capital, in the investment's own currency.
func (inv *Investment) Profit() decimal.Decimal {
	return Profit(inv.CurrentValue, inv.InitialCapital, inv.Invested)
}

// ProfitPercentage is Profit relative to Capital, 0 when Capital is 0.
func (inv *Investment) ProfitPercentage() decimal.Decimal {
	return ProfitPercentage(inv.CurrentValue, inv.InitialCapital, inv.Invested)
}

// IsActive reports whether the investment is still open.
func (inv *Investment) IsActive() bool {
	return NormalizeStatus(inv.Status) == StatusActive
}

var hundred = decimal.NewFromInt(100)

// ResolveCapital returns invested when present, initialCapital otherwise.
func ResolveCapital(initialCapital decimal.Decimal, invested *decimal.Decimal) decimal.Decimal {
	if invested != nil {
		return *invested
	}
	return initialCapital
}

// Profit returns currentValue - (invested or initialCapital).
func Profit(currentValue, initialCapital decimal.Decimal, invested *decimal.Decimal) decimal.Decimal {
	return currentValue.Sub(ResolveCapital(initialCapital, invested))
}

// ProfitPercentage returns profit / (invested or initialCapital) * 100, or 0 when the
// denominator is 0.
func ProfitPercentage(currentValue, initialCapital decimal.Decimal, invested *decimal.Decimal) decimal.Decimal {
	capital := ResolveCapital(initialCapital, invested)
	if capital.IsZero() {
		return decimal.Zero
	}
	return currentValue.Sub(capital).Div(capital).Mul(hundred)
}

// ComputeROI returns (final - initial) / initial * 100, or 0 when initial is 0.
func ComputeROI(initial, final decimal.Decimal) decimal.Decimal {
	if initial.IsZero() {
		return decimal.Zero
	}
	return final.Sub(initial).Div(initial).Mul(hundred)
}

// Percentage returns part / whole * 100, or 0 when whole is 0.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
