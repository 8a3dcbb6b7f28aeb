package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luminark/holdings/internal/db"
	"github.com/luminark/holdings/internal/models"
)

type stateRepository struct {
	db        *db.DB
	key       string
	retention int
	now       func() time.Time
}

// NewStateRepository creates a state repository storing under key and keeping
// at most retention daily snapshots
func NewStateRepository(database *db.DB, key string, retention int) StateRepository {
	return NewStateRepositoryWithClock(database, key, retention, time.Now)
}

// NewStateRepositoryWithClock is NewStateRepository with an injectable clock
func NewStateRepositoryWithClock(database *db.DB, key string, retention int, now func() time.Time) StateRepository {
	if retention < 1 {
		retention = 1
	}
	return &stateRepository{db: database, key: key, retention: retention, now: now}
}

func (r *stateRepository) backupPrefix() string {
	return r.key + "_backup_"
}

// Get returns the stored state, or a fresh initial state when nothing was stored yet
func (r *stateRepository) Get(ctx context.Context) (*models.AppState, error) {
	state, err := r.load(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return models.NewAppState(r.now().UTC()), nil
	}
	return state, nil
}

// Put stamps LastUpdate, writes the state and today's snapshot, then evicts the
// oldest snapshots beyond the retention limit
func (r *stateRepository) Put(ctx context.Context, state *models.AppState) error {
	if state == nil {
		return fmt.Errorf("state is required")
	}
	now := r.now().UTC()
	state.EnsureDefaults()
	state.Settings.LastUpdate = now

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, r.key, string(payload), now); err != nil {
			return fmt.Errorf("failed to save state: %w", err)
		}
		if err := upsert(tx, r.backupPrefix()+models.DayKey(now), string(payload), now); err != nil {
			return fmt.Errorf("failed to save backup: %w", err)
		}
		return r.prune(tx)
	})
}

// ListBackups returns the snapshot days, oldest first
func (r *stateRepository) ListBackups(ctx context.Context) ([]string, error) {
	keys, err := r.backupKeys(r.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, len(keys))
	for _, k := range keys {
		days = append(days, strings.TrimPrefix(k, r.backupPrefix()))
	}
	return days, nil
}

// GetBackup returns the snapshot of day, or nil when there is none
func (r *stateRepository) GetBackup(ctx context.Context, day string) (*models.AppState, error) {
	return r.load(ctx, r.backupPrefix()+day)
}

func (r *stateRepository) load(ctx context.Context, key string) (*models.AppState, error) {
	var entry models.StateEntry
	err := r.db.WithContext(ctx).Where("kv_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	state := &models.AppState{}
	if err := json.Unmarshal([]byte(entry.Value), state); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	state.EnsureDefaults()
	return state, nil
}

func (r *stateRepository) backupKeys(tx *gorm.DB) ([]string, error) {
	var keys []string
	// LIKE treats '_' as a wildcard, so the prefix is re-checked below
	err := tx.Model(&models.StateEntry{}).
		Where("kv_key LIKE ?", r.backupPrefix()+"%").
		Pluck("kv_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	out := keys[:0]
	for _, k := range keys {
		if strings.HasPrefix(k, r.backupPrefix()) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *stateRepository) prune(tx *gorm.DB) error {
	keys, err := r.backupKeys(tx)
	if err != nil {
		return err
	}
	for len(keys) > r.retention {
		if err := tx.Where("kv_key = ?", keys[0]).Delete(&models.StateEntry{}).Error; err != nil {
			return fmt.Errorf("failed to evict backup %s: %w", keys[0], err)
		}
		keys = keys[1:]
	}
	return nil
}

func upsert(tx *gorm.DB, key, value string, now time.Time) error {
	entry := models.StateEntry{Key: key, Value: value, UpdatedAt: now}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
