package handler

import (
	"go.uber.org/zap"

	"slimclinic/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Patient     *PatientHandler
	Measurement *MeasurementHandler
	Setting     *SettingHandler
	Report      *ReportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, logger),
		User:        NewUserHandler(svc.User, logger),
		Patient:     NewPatientHandler(svc.Patient, logger),
		Measurement: NewMeasurementHandler(svc.Measurement, logger),
		Setting:     NewSettingHandler(svc.Setting, logger),
		Report:      NewReportHandler(svc.Report, logger),
	}
}

