package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luminark/holdings/internal/db"
	"github.com/luminark/holdings/internal/models"
)

// FXCacheServiceImpl implements FXCacheService on the fx_rates table. Rates are
// keyed by pair and UTC day, so a cached rate is reused until the day rolls over.
type FXCacheServiceImpl struct {
	db *db.DB
}

// NewFXCacheService creates a new FX cache service
func NewFXCacheService(database *db.DB) FXCacheService {
	return &FXCacheServiceImpl{db: database}
}

// GetCachedRate retrieves a cached exchange rate, or nil when none exists
func (s *FXCacheServiceImpl) GetCachedRate(ctx context.Context, from, to string, day time.Time) (*models.FXRate, error) {
	var rate models.FXRate
	err := s.db.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ? AND day = ?",
			strings.ToUpper(from), strings.ToUpper(to), models.DayKey(day)).
		Order("created_at DESC").
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached rate: %w", err)
	}
	return &rate, nil
}

// CacheRate stores an exchange rate, replacing the one cached for the same pair and day
func (s *FXCacheServiceImpl) CacheRate(ctx context.Context, rate *models.FXRate) error {
	rate.FromCurrency = strings.ToUpper(rate.FromCurrency)
	rate.ToCurrency = strings.ToUpper(rate.ToCurrency)
	if err := rate.Validate(); err != nil {
		return fmt.Errorf("invalid rate: %w", err)
	}
	rate.CreatedAt = time.Now()

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_currency"}, {Name: "to_currency"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "source", "created_at"}),
	}).Create(rate).Error
	if err != nil {
		return fmt.Errorf("failed to cache rate: %w", err)
	}
	return nil
}

// GetCachedRates retrieves cached rates from one currency to each target, keyed by target
func (s *FXCacheServiceImpl) GetCachedRates(ctx context.Context, from string, targets []string, day time.Time) (map[string]*models.FXRate, error) {
	result := make(map[string]*models.FXRate)
	if len(targets) == 0 {
		return result, nil
	}

	var rows []models.FXRate
	err := s.db.WithContext(ctx).
		Where("from_currency = ? AND day = ? AND to_currency IN ?",
			strings.ToUpper(from), models.DayKey(day), targets).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cached rates: %w", err)
	}

	for i := range rows {
		result[rows[i].ToCurrency] = &rows[i]
	}
	return result, nil
}

// InvalidateCache removes cached rates for a specific currency pair and day
func (s *FXCacheServiceImpl) InvalidateCache(ctx context.Context, from, to string, day time.Time) error {
	err := s.db.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ? AND day = ?",
			strings.ToUpper(from), strings.ToUpper(to), models.DayKey(day)).
		Delete(&models.FXRate{}).Error
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
