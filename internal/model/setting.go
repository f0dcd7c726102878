package model

import "time"

// Setting 系统配置表 — 对应 settings（键值对）
type Setting struct {
	ID           uint      `gorm:"primaryKey"                           json:"id"`
	SettingKey   string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"setting_key"`
	SettingValue string    `gorm:"type:text;not null;default:''"         json:"setting_value"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"updated_at"`
}

// TableName 指定表名
func (Setting) TableName() string { return "settings" }

