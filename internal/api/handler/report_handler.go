package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slimclinic/backend/internal/service"
	"slimclinic/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler 患者报告接口
type ReportHandler struct {
	reportSvc service.ReportService
	logger    *zap.Logger
}

// NewReportHandler 创建 ReportHandler 实例
func NewReportHandler(reportSvc service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, logger: logger}
}

// Report 患者报告（JSON，前端打印页数据源）
// GET /api/patients/:id/report
func (h *ReportHandler) Report(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	report, err := h.reportSvc.PatientReport(c.Request.Context(), patientID)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			response.NotFound(c, "Patient not found")
			return
		}
		response.InternalError(c, "Failed to build report")
		return
	}

	response.OK(c, report)
}

// Export 患者报告导出为 Excel (.xlsx)
// GET /api/patients/:id/report/export
func (h *ReportHandler) Export(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	buf, filename, err := h.reportSvc.ExportReport(c.Request.Context(), patientID)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			response.NotFound(c, "Patient not found")
			return
		}
		response.InternalError(c, "Failed to export report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

