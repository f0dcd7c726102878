package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slimclinic/backend/internal/dto"
	"slimclinic/backend/internal/service"
	"slimclinic/backend/pkg/response"
)

// MeasurementHandler 测量记录接口
type MeasurementHandler struct {
	measureSvc service.MeasurementService
	logger     *zap.Logger
}

// NewMeasurementHandler 创建 MeasurementHandler 实例
func NewMeasurementHandler(measureSvc service.MeasurementService, logger *zap.Logger) *MeasurementHandler {
	return &MeasurementHandler{measureSvc: measureSvc, logger: logger}
}

// ListByPatient 某患者的测量历史（按测量时间倒序）
// GET /api/patients/:id/measurements
func (h *MeasurementHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	list, err := h.measureSvc.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			response.NotFound(c, "Patient not found")
			return
		}
		response.InternalError(c, "Failed to load measurements")
		return
	}

	response.OK(c, dto.MeasurementListResponse{Measurements: list})
}

// Create 为患者新增测量记录（测量时间取录入时刻）
// POST /api/patients/:id/measurements
func (h *MeasurementHandler) Create(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	var req dto.MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid measurement data")
		return
	}

	id, err := h.measureSvc.Create(c.Request.Context(), patientID, &req, MustGetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			response.NotFound(c, "Patient not found")
			return
		}
		response.InternalError(c, "Failed to create measurement")
		return
	}

	response.OK(c, dto.CreateMeasurementResponse{Success: true, ID: id})
}

// Update 更新测量记录（数值字段与备注整行替换，测量时间不变）
// PUT /api/measurements/:id
func (h *MeasurementHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid measurement ID")
		return
	}

	var req dto.MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid measurement data")
		return
	}

	if err := h.measureSvc.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrMeasurementNotFound) {
			response.NotFound(c, "Measurement not found")
			return
		}
		response.InternalError(c, "Failed to update measurement")
		return
	}

	response.OK(c, dto.SuccessResponse{Success: true})
}

// Delete 删除测量记录
// DELETE /api/measurements/:id
func (h *MeasurementHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid measurement ID")
		return
	}

	if err := h.measureSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMeasurementNotFound) {
			response.NotFound(c, "Measurement not found")
			return
		}
		response.InternalError(c, "Failed to delete measurement")
		return
	}

	response.OK(c, dto.SuccessResponse{Success: true})
}

