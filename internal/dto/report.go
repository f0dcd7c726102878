package dto

// ── 报告模块 DTO ──

// ReportStatistics 报告统计块
// 变化量 = 最新一次测量值 − 最早一次测量值（各自取该字段非空的记录），保留 1 位小数
type ReportStatistics struct {
	TotalMeasurements int     `json:"totalMeasurements"`
	WeightChange      float64 `json:"weightChange"`
	BodyFatChange     float64 `json:"bodyFatChange"`
}

// PatientReportResponse 患者报告响应（前端打印页的数据源）
type PatientReportResponse struct {
	Patient      PatientResponse       `json:"patient"`
	Measurements []MeasurementResponse `json:"measurements"`
	Statistics   ReportStatistics      `json:"statistics"`
	Settings     map[string]string     `json:"settings"`
}
