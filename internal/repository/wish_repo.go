package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Digital-jump/PulseHR/internal/model"
)

// WishRepository 生日祝福数据访问接口
type WishRepository interface {
	Create(ctx context.Context, wish *model.BirthdayWish) error
	List(ctx context.Context) ([]model.BirthdayWish, error)
}

// wishRepo WishRepository 的 GORM 实现
type wishRepo struct {
	db *gorm.DB
}

// NewWishRepo 创建 WishRepository 实例
func NewWishRepo(db *gorm.DB) WishRepository {
	return &wishRepo{db: db}
}

func (r *wishRepo) Create(ctx context.Context, wish *model.BirthdayWish) error {
	return r.db.WithContext(ctx).Create(wish).Error
}

func (r *wishRepo) List(ctx context.Context) ([]model.BirthdayWish, error) {
	var wishes []model.BirthdayWish
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&wishes).Error
	return wishes, err
}
