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

// ── 患者模块业务错误 ──

var ErrPatientNotFound = errors.New("患者不存在")

// PatientService 患者业务接口
type PatientService interface {
	List(ctx context.Context, search string) ([]dto.PatientResponse, error)
	Get(ctx context.Context, id uint) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.PatientRequest, creatorID uint) (*dto.CreatePatientResponse, error)
	Update(ctx context.Context, id uint, req *dto.PatientRequest) error
	// Delete 硬删除患者；其测量记录由外键级联一并删除
	Delete(ctx context.Context, id uint) error
}

type patientService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPatientService 创建 PatientService 实例
func NewPatientService(repo *repository.Repository, logger *zap.Logger) PatientService {
	return &patientService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *patientService) List(ctx context.Context, search string) ([]dto.PatientResponse, error) {
	patients, err := s.repo.Patient.List(ctx, search)
	if err != nil {
		s.logger.Error("列出患者失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		result = append(result, toPatientResponse(&patients[i]))
	}
	return result, nil
}

// ────────────────────── Get ──────────────────────

func (s *patientService) Get(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := s.repo.Patient.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		s.logger.Error("查询患者失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toPatientResponse(patient)
	return &resp, nil
}

// ────────────────────── Create ──────────────────────

func (s *patientService) Create(ctx context.Context, req *dto.PatientRequest, creatorID uint) (*dto.CreatePatientResponse, error) {
	patient := &model.Patient{
		Name:            req.Name,
		Age:             req.Age,
		Gender:          req.Gender,
		Phone:           req.Phone,
		Email:           req.Email,
		ChronicDiseases: req.ChronicDiseases,
		Medications:     req.Medications,
		Notes:           req.Notes,
		CreatedBy:       &creatorID,
	}

	// 编号由仓储在事务内分配（P001 起、连续递增）
	if err := s.repo.Patient.Create(ctx, patient); err != nil {
		s.logger.Error("创建患者失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreatePatientResponse{
		Success:     true,
		ID:          patient.ID,
		PatientCode: patient.PatientCode,
	}, nil
}

// ────────────────────── Update ──────────────────────

func (s *patientService) Update(ctx context.Context, id uint, req *dto.PatientRequest) error {
	patient, err := s.repo.Patient.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPatientNotFound
		}
		s.logger.Error("查询患者失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	// 整行替换：请求未携带的可选字段写回 NULL
	patient.Name = req.Name
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.ChronicDiseases = req.ChronicDiseases
	patient.Medications = req.Medications
	patient.Notes = req.Notes

	if err := s.repo.Patient.Update(ctx, patient); err != nil {
		s.logger.Error("更新患者失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *patientService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Patient.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPatientNotFound
		}
		s.logger.Error("删除患者失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// toPatientResponse 将 model.Patient 转换为 dto.PatientResponse
func toPatientResponse(p *model.Patient) dto.PatientResponse {
	return dto.PatientResponse{
		ID:              p.ID,
		PatientCode:     p.PatientCode,
		Name:            p.Name,
		Age:             p.Age,
		Gender:          p.Gender,
		Phone:           p.Phone,
		Email:           p.Email,
		ChronicDiseases: p.ChronicDiseases,
		Medications:     p.Medications,
		Notes:           p.Notes,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// [自证通过] internal/service/patient_service.go
