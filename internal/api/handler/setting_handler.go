package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slimclinic/backend/internal/dto"
	"slimclinic/backend/internal/service"
	"slimclinic/backend/pkg/response"
)

// SettingHandler 系统配置与字段呈现配置接口（仅管理员）
type SettingHandler struct {
	settingSvc service.SettingService
	logger     *zap.Logger
}

// NewSettingHandler 创建 SettingHandler 实例
func NewSettingHandler(settingSvc service.SettingService, logger *zap.Logger) *SettingHandler {
	return &SettingHandler{settingSvc: settingSvc, logger: logger}
}

// List 配置列表
// GET /api/settings
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to load settings")
		return
	}

	response.OK(c, dto.SettingListResponse{Settings: settings})
}

// Update 按键更新配置值
// PUT /api/settings/:key
func (h *SettingHandler) Update(c *gin.Context) {
	key := c.Param("key")

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Value is required")
		return
	}

	if err := h.settingSvc.UpdateValue(c.Request.Context(), key, *req.Value); err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			response.NotFound(c, "Setting not found")
			return
		}
		response.InternalError(c, "Failed to update setting")
		return
	}

	response.OK(c, dto.SuccessResponse{Success: true})
}

// ListFieldSettings 字段呈现配置列表（支持 ?table= 过滤）
// GET /api/field-settings
func (h *SettingHandler) ListFieldSettings(c *gin.Context) {
	list, err := h.settingSvc.ListFieldSettings(c.Request.Context(), c.Query("table"))
	if err != nil {
		response.InternalError(c, "Failed to load field settings")
		return
	}

	response.OK(c, dto.FieldSettingListResponse{FieldSettings: list})
}

// UpdateFieldSetting 更新字段呈现配置（整行替换可变字段）
// PUT /api/field-settings/:id
func (h *SettingHandler) UpdateFieldSetting(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid field setting ID")
		return
	}

	var req dto.UpdateFieldSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid field setting data")
		return
	}

	if err := h.settingSvc.UpdateFieldSetting(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrFieldSettingNotFound) {
			response.NotFound(c, "Field setting not found")
			return
		}
		response.InternalError(c, "Failed to update field setting")
		return
	}

	response.OK(c, dto.SuccessResponse{Success: true})
}

