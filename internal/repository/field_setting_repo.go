package repository

import (
	"context"

	"gorm.io/gorm"

	"slimclinic/backend/internal/model"
)

// FieldSettingRepository 字段呈现配置数据访问接口
type FieldSettingRepository interface {
	// List 按显示顺序返回字段配置；tableName 非空时只返回该表单的配置
	List(ctx context.Context, tableName string) ([]model.FieldSetting, error)
	GetByID(ctx context.Context, id uint) (*model.FieldSetting, error)
	Update(ctx context.Context, fs *model.FieldSetting) error
}

type fieldSettingRepo struct {
	db *gorm.DB
}

// NewFieldSettingRepo 创建 FieldSettingRepository 实例
func NewFieldSettingRepo(db *gorm.DB) FieldSettingRepository {
	return &fieldSettingRepo{db: db}
}

func (r *fieldSettingRepo) List(ctx context.Context, tableName string) ([]model.FieldSetting, error) {
	db := r.db.WithContext(ctx).Model(&model.FieldSetting{})

	if tableName != "" {
		db = db.Where("table_name = ?", tableName)
	}

	var list []model.FieldSetting
	err := db.Order("field_order ASC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *fieldSettingRepo) GetByID(ctx context.Context, id uint) (*model.FieldSetting, error) {
	var fs model.FieldSetting
	err := r.db.WithContext(ctx).First(&fs, id).Error
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

func (r *fieldSettingRepo) Update(ctx context.Context, fs *model.FieldSetting) error {
	return r.db.WithContext(ctx).Save(fs).Error
}

