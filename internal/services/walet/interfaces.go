package walet

import (
	"context"
	"time"

	"walet/internal/models"
	"walet/internal/utils/pagination"
)

// Service defines the walet resource operations.
type Service interface {
	Create(ctx context.Context, w *models.Walet) (*models.Walet, error)
	Update(ctx context.Context, id int64, w *models.Walet) (*models.Walet, error)
	PartialUpdate(ctx context.Context, id int64, patch *models.Walet) (*models.Walet, error)
	GetAll(ctx context.Context, sort []pagination.Sort) ([]models.Walet, error)
	Get(ctx context.Context, id int64) (*models.Walet, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier is told about every successful mutation.
type Notifier interface {
	Notify(ctx context.Context, action Action, entityName string, id int64)
}

// MetricsCollector records per-operation outcomes.
type MetricsCollector interface {
	RecordOperationDuration(op string, duration time.Duration)
	RecordOperationResult(op, result string)
	RecordError(op, err string)
}

// PasswordEncoder turns a raw password into its stored form.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
}
