package repository

import (
	"context"

	"gorm.io/gorm"

	"slimclinic/backend/internal/model"
)

// MeasurementRepository 测量数据访问接口
type MeasurementRepository interface {
	Create(ctx context.Context, m *model.Measurement) error
	GetByID(ctx context.Context, id uint) (*model.Measurement, error)
	// ListByPatient 按测量时间倒序返回某患者的全部测量
	ListByPatient(ctx context.Context, patientID uint) ([]model.Measurement, error)
	Update(ctx context.Context, m *model.Measurement) error
	Delete(ctx context.Context, id uint) error
}

type measurementRepo struct {
	db *gorm.DB
}

// NewMeasurementRepo 创建 MeasurementRepository 实例
func NewMeasurementRepo(db *gorm.DB) MeasurementRepository {
	return &measurementRepo{db: db}
}

func (r *measurementRepo) Create(ctx context.Context, m *model.Measurement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *measurementRepo) GetByID(ctx context.Context, id uint) (*model.Measurement, error) {
	var m model.Measurement
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *measurementRepo) ListByPatient(ctx context.Context, patientID uint) ([]model.Measurement, error) {
	var list []model.Measurement
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("measurement_date DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *measurementRepo) Update(ctx context.Context, m *model.Measurement) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *measurementRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Measurement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

