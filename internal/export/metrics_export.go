// Package export renders ledger snapshots as downloadable documents for
// operators and auditors.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"energy_oracle/internal/models"
)

// BuildMetricsXLSX renders the oracle status, per-asset totals and the
// sensor registry as a three-sheet workbook. Totals are written as text so
// 128-bit values survive the spreadsheet.
func BuildMetricsXLSX(status models.OracleStatus, assets []models.AssetMetrics, sensors []models.Sensor) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	assetsSheet := "assets"
	sensorsSheet := "sensors"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(assetsSheet)
	f.NewSheet(sensorsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Energy Oracle Metrics")
	_ = f.SetCellValue(summarySheet, "A3", "Admin")
	_ = f.SetCellValue(summarySheet, "B3", string(status.Admin))
	_ = f.SetCellValue(summarySheet, "A4", "Operator")
	_ = f.SetCellValue(summarySheet, "B4", string(status.Operator))
	_ = f.SetCellValue(summarySheet, "A5", "Paused")
	_ = f.SetCellValue(summarySheet, "B5", status.Paused)
	_ = f.SetCellValue(summarySheet, "A6", "Height")
	_ = f.SetCellValue(summarySheet, "B6", status.Height)
	_ = f.SetCellValue(summarySheet, "A7", "Sensors")
	_ = f.SetCellValue(summarySheet, "B7", status.SensorCount)
	_ = f.SetCellValue(summarySheet, "A8", "Assets")
	_ = f.SetCellValue(summarySheet, "B8", status.AssetCount)
	_ = f.SetCellValue(summarySheet, "A9", "Readings")
	_ = f.SetCellValue(summarySheet, "B9", status.ReadingCount)
	_ = f.SetCellValue(summarySheet, "A10", "Events")
	_ = f.SetCellValue(summarySheet, "B10", status.EventCount)

	_ = f.SetCellValue(assetsSheet, "A1", "Asset")
	_ = f.SetCellValue(assetsSheet, "B1", "Energy Type")
	_ = f.SetCellValue(assetsSheet, "C1", "Total Output")
	_ = f.SetCellValue(assetsSheet, "D1", "Last Output")
	_ = f.SetCellValue(assetsSheet, "E1", "Last Update Timestamp")
	for i, m := range assets {
		row := i + 2
		_ = f.SetCellValue(assetsSheet, fmt.Sprintf("A%d", row), m.AssetID)
		_ = f.SetCellValue(assetsSheet, fmt.Sprintf("B%d", row), string(m.EnergyType))
		_ = f.SetCellValue(assetsSheet, fmt.Sprintf("C%d", row), m.TotalEnergyOutput.String())
		_ = f.SetCellValue(assetsSheet, fmt.Sprintf("D%d", row), m.LastEnergyOutput)
		_ = f.SetCellValue(assetsSheet, fmt.Sprintf("E%d", row), m.LastUpdateTimestamp)
	}

	_ = f.SetCellValue(sensorsSheet, "A1", "Sensor")
	_ = f.SetCellValue(sensorsSheet, "B1", "Owner")
	_ = f.SetCellValue(sensorsSheet, "C1", "Energy Type")
	_ = f.SetCellValue(sensorsSheet, "D1", "Active")
	for i, s := range sensors {
		row := i + 2
		_ = f.SetCellValue(sensorsSheet, fmt.Sprintf("A%d", row), s.SensorID)
		_ = f.SetCellValue(sensorsSheet, fmt.Sprintf("B%d", row), string(s.Owner))
		_ = f.SetCellValue(sensorsSheet, fmt.Sprintf("C%d", row), string(s.EnergyType))
		_ = f.SetCellValue(sensorsSheet, fmt.Sprintf("D%d", row), s.IsActive)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildProductionPDF renders a one-page production report: ledger status
// followed by a per-asset table.
func BuildProductionPDF(status models.OracleStatus, assets []models.AssetMetrics) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Energy Oracle Production Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Admin: %s", status.Admin))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Operator: %s", status.Operator))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Paused: %v", status.Paused))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Height: %d", status.Height))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Sensors: %d  Assets: %d  Readings: %d  Events: %d",
		status.SensorCount, status.AssetCount, status.ReadingCount, status.EventCount))
	pdf.Ln(8)

	// Assets table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 6, "Asset", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 6, "Total Output", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Last Output", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Last Update", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, m := range assets {
		pdf.CellFormat(45, 6, m.AssetID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, string(m.EnergyType), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, m.TotalEnergyOutput.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", m.LastEnergyOutput), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", m.LastUpdateTimestamp), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
