package dto

import "time"

// ── 配置模块 DTO（仅管理员） ──

// SettingResponse 配置项响应
type SettingResponse struct {
	ID           uint      `json:"id"`
	SettingKey   string    `json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SettingListResponse 配置列表响应
type SettingListResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// UpdateSettingRequest 更新配置项请求
// 指针 + required：允许显式置空串，但不允许缺省
type UpdateSettingRequest struct {
	Value *string `json:"value" binding:"required"`
}

// FieldSettingResponse 字段呈现配置响应
type FieldSettingResponse struct {
	ID            uint   `json:"id"`
	TableName     string `json:"table_name"`
	FieldName     string `json:"field_name"`
	DisplayNameAr string `json:"display_name_ar"`
	DisplayNameEn string `json:"display_name_en"`
	IsVisible     bool   `json:"is_visible"`
	IsRequired    bool   `json:"is_required"`
	FieldOrder    int    `json:"field_order"`
}

// FieldSettingListResponse 字段配置列表响应（按 field_order 升序）
type FieldSettingListResponse struct {
	FieldSettings []FieldSettingResponse `json:"fieldSettings"`
}

// UpdateFieldSettingRequest 更新字段呈现配置请求（整行替换）
type UpdateFieldSettingRequest struct {
	DisplayNameAr string `json:"display_name_ar" binding:"max=100"`
	DisplayNameEn string `json:"display_name_en" binding:"max=100"`
	IsVisible     *bool  `json:"is_visible"  binding:"required"`
	IsRequired    *bool  `json:"is_required" binding:"required"`
	FieldOrder    *int   `json:"field_order" binding:"required,min=0"`
}

