package dto

import "time"

// ── 测量模块 DTO ──

// MeasurementRequest 创建/更新测量请求
// 与患者更新一致：整行替换，未携带字段写回 NULL
type MeasurementRequest struct {
	Weight          *float64 `json:"weight"           binding:"omitempty,min=0"`
	BodyFat         *float64 `json:"body_fat"         binding:"omitempty,min=0,max=100"`
	MuscleMass      *float64 `json:"muscle_mass"      binding:"omitempty,min=0"`
	WaterPercentage *float64 `json:"water_percentage" binding:"omitempty,min=0,max=100"`
	MetabolismRate  *float64 `json:"metabolism_rate"  binding:"omitempty,min=0"`
	BMR             *float64 `json:"bmr"              binding:"omitempty,min=0"`
	BMI             *float64 `json:"bmi"              binding:"omitempty,min=0"`
	FFM             *float64 `json:"ffm"              binding:"omitempty,min=0"`
	Notes           *string  `json:"notes"`
}

// MeasurementResponse 测量记录响应
type MeasurementResponse struct {
	ID              uint      `json:"id"`
	PatientID       uint      `json:"patient_id"`
	Weight          *float64  `json:"weight"`
	BodyFat         *float64  `json:"body_fat"`
	MuscleMass      *float64  `json:"muscle_mass"`
	WaterPercentage *float64  `json:"water_percentage"`
	MetabolismRate  *float64  `json:"metabolism_rate"`
	BMR             *float64  `json:"bmr"`
	BMI             *float64  `json:"bmi"`
	FFM             *float64  `json:"ffm"`
	Notes           *string   `json:"notes"`
	MeasurementDate time.Time `json:"measurement_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// MeasurementListResponse 某患者的测量列表响应
type MeasurementListResponse struct {
	Measurements []MeasurementResponse `json:"measurements"`
}

// CreateMeasurementResponse 创建测量响应
type CreateMeasurementResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

