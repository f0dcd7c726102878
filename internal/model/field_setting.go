package model

// FieldSetting 表单字段呈现配置表 — 对应 field_settings
// 控制某张表单字段的双语标签、可见性、必填性与显示顺序
type FieldSetting struct {
	ID            uint   `gorm:"primaryKey"                 json:"id"`
	TableName     string `gorm:"type:varchar(50);not null"  json:"table_name"`
	FieldName     string `gorm:"type:varchar(50);not null"  json:"field_name"`
	DisplayNameAr string `gorm:"type:varchar(100);not null;default:''" json:"display_name_ar"`
	DisplayNameEn string `gorm:"type:varchar(100);not null;default:''" json:"display_name_en"`
	IsVisible     bool   `gorm:"not null;default:true"      json:"is_visible"`
	IsRequired    bool   `gorm:"not null;default:false"     json:"is_required"`
	FieldOrder    int    `gorm:"not null;default:0"         json:"field_order"`
}
