package repositories

import (
	"context"
	"errors"
	"fmt"

	"walet/internal/models"
	"walet/internal/utils/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortableColumns maps JSON field names to walet columns.
var sortableColumns = map[string]string{
	"id":       "id",
	"idCLient": "id_c_lient",
	"login":    "login",
	"password": "password",
}

type waletRepository struct {
	db *gorm.DB
}

func NewWaletRepository(db *gorm.DB) WaletRepository {
	return &waletRepository{
		db: db,
	}
}

func (r *waletRepository) Save(ctx context.Context, w *models.Walet) (*models.Walet, error) {
	if err := r.db.WithContext(ctx).Save(w).Error; err != nil {
		return nil, fmt.Errorf("failed to save walet: %w", err)
	}
	return w, nil
}

func (r *waletRepository) FindByID(ctx context.Context, id int64) (*models.Walet, error) {
	var w models.Walet
	if err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWaletNotFound
		}
		return nil, fmt.Errorf("failed to get walet: %w", err)
	}
	return &w, nil
}

func (r *waletRepository) FindAll(ctx context.Context, sort []pagination.Sort) ([]models.Walet, error) {
	query := r.db.WithContext(ctx).Model(&models.Walet{})

	ordered := false
	for _, s := range sort {
		column, ok := sortableColumns[s.Field]
		if !ok {
			continue
		}
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: s.Desc})
		ordered = true
	}
	if !ordered {
		query = query.Order("id")
	}

	walets := make([]models.Walet, 0)
	if err := query.Find(&walets).Error; err != nil {
		return nil, fmt.Errorf("failed to list walets: %w", err)
	}
	return walets, nil
}

func (r *waletRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Walet{}).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check walet existence: %w", err)
	}
	return count > 0, nil
}

func (r *waletRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Walet{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete walet: %w", err)
	}
	return nil
}

func (r *waletRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Walet{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count walets: %w", err)
	}
	return count, nil
}
