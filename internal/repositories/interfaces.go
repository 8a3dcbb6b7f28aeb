package repositories

import (
	"context"

	"github.com/luminark/holdings/internal/models"
)

// StateRepository persists the whole application state as one key-value blob,
// plus one rotating snapshot per day.
type StateRepository interface {
	Get(ctx context.Context) (*models.AppState, error)
	Put(ctx context.Context, state *models.AppState) error
	ListBackups(ctx context.Context) ([]string, error)
	GetBackup(ctx context.Context, day string) (*models.AppState, error)
}
