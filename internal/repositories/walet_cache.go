package repositories

import (
	"context"

	"walet/internal/models"
	"walet/internal/utils/cache"
	"walet/internal/utils/pagination"

	"go.uber.org/zap"
)

// WaletCache is the subset of cache.CacheService used for walet rows.
type WaletCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// cachedWaletRepository is a read-through cache keyed by walet id.
// Cache failures are logged and never fail the call.
type cachedWaletRepository struct {
	next   WaletRepository
	cache  WaletCache
	logger *zap.Logger
}

// NewCachedWaletRepository wraps next with a read-through cache.
func NewCachedWaletRepository(next WaletRepository, c WaletCache, logger *zap.Logger) WaletRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedWaletRepository{
		next:   next,
		cache:  c,
		logger: logger,
	}
}

func (r *cachedWaletRepository) Save(ctx context.Context, w *models.Walet) (*models.Walet, error) {
	saved, err := r.next.Save(ctx, w)
	if err != nil {
		return nil, err
	}
	if saved.ID != nil {
		r.put(ctx, saved)
	}
	return saved, nil
}

func (r *cachedWaletRepository) FindByID(ctx context.Context, id int64) (*models.Walet, error) {
	key := cache.WaletKey(id)

	var cached models.Walet
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.logger.Warn("walet cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return &cached, nil
	}

	w, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.put(ctx, w)
	return w, nil
}

func (r *cachedWaletRepository) FindAll(ctx context.Context, sort []pagination.Sort) ([]models.Walet, error) {
	return r.next.FindAll(ctx, sort)
}

func (r *cachedWaletRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var cached models.Walet
	found, err := r.cache.Get(ctx, cache.WaletKey(id), &cached)
	if err == nil && found {
		return true, nil
	}
	return r.next.ExistsByID(ctx, id)
}

func (r *cachedWaletRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.next.DeleteByID(ctx, id); err != nil {
		return err
	}
	key := cache.WaletKey(id)
	if err := r.cache.Delete(ctx, key); err != nil {
		r.logger.Warn("walet cache eviction failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (r *cachedWaletRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *cachedWaletRepository) put(ctx context.Context, w *models.Walet) {
	key := cache.WaletKey(*w.ID)
	if err := r.cache.Set(ctx, key, w); err != nil {
		r.logger.Warn("walet cache write failed", zap.String("key", key), zap.Error(err))
	}
}
