package handlers

import (
	"net/http"

	"energy_oracle/internal/export"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// @Summary      Download metrics workbook
// @Description  XLSX with summary, per-asset and sensor sheets.
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/exports/metrics.xlsx [get]
// @Security     BearerAuth
func (h *Handler) exportMetricsXLSX(c *gin.Context) {
	raw, err := export.BuildMetricsXLSX(h.services.Status(), h.services.AssetMetricsList(), h.services.Sensors())
	if err != nil {
		h.writeLedgerError(c, err, "export_xlsx_failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="oracle-metrics.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, raw)
}

// @Summary      Download production report
// @Description  One-page PDF: ledger status plus the per-asset table.
// @Tags         exports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/exports/report.pdf [get]
// @Security     BearerAuth
func (h *Handler) exportReportPDF(c *gin.Context) {
	raw, err := export.BuildProductionPDF(h.services.Status(), h.services.AssetMetricsList())
	if err != nil {
		h.writeLedgerError(c, err, "export_pdf_failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="oracle-report.pdf"`)
	c.Data(http.StatusOK, contentTypePDF, raw)
}
