package repositories

import (
	"context"
	"errors"

	"walet/internal/models"
	"walet/internal/utils/pagination"
)

var ErrWaletNotFound = errors.New("walet not found")

// WaletRepository is the data access layer for walets.
// It adds no business rules on top of the store.
type WaletRepository interface {
	// Save inserts w when it has no id, otherwise upserts it.
	// The stored row is written back into w and returned.
	Save(ctx context.Context, w *models.Walet) (*models.Walet, error)
	// FindByID returns ErrWaletNotFound when no row has that id.
	FindByID(ctx context.Context, id int64) (*models.Walet, error)
	FindAll(ctx context.Context, sort []pagination.Sort) ([]models.Walet, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// DeleteByID is a no-op for a missing id.
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
