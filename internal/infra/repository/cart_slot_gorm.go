package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartSlotGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartSlotGormRepository(db *gorm.DB) *CartSlotGormRepository {
	return &CartSlotGormRepository{db: db}
}

// キーのblobを読む
func (r *CartSlotGormRepository) Load(ctx context.Context, key string) (string, error) {
	var slot model.CartSlot

	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return slot.Value, nil
}

// キーのblobを丸ごと書き換える（同期書き込み）
func (r *CartSlotGormRepository) Save(ctx context.Context, key string, value string) error {
	slot := model.CartSlot{Key: key, Value: value}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

// キーごと削除。元々無くてもエラーにしない。
func (r *CartSlotGormRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.CartSlot{}).Error
}
