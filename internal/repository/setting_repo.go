package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"slimclinic/backend/internal/model"
)

// SettingRepository 系统配置数据访问接口
type SettingRepository interface {
	List(ctx context.Context) ([]model.Setting, error)
	// UpdateValue 按键更新配置值；键不存在返回 gorm.ErrRecordNotFound
	UpdateValue(ctx context.Context, key, value string) error
}

type settingRepo struct {
	db *gorm.DB
}

// NewSettingRepo 创建 SettingRepository 实例
func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) List(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	err := r.db.WithContext(ctx).
		Order("setting_key ASC").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepo) UpdateValue(ctx context.Context, key, value string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Setting{}).
		Where("setting_key = ?", key).
		Updates(map[string]interface{}{
			"setting_value": value,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

