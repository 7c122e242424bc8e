package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"energy_oracle/internal/models"
)

func sampleStatus() models.OracleStatus {
	return models.OracleStatus{
		Admin:        "alice",
		Operator:     "bob",
		Paused:       false,
		Height:       1200,
		NextEventID:  4,
		SensorCount:  2,
		AssetCount:   1,
		ReadingCount: 3,
		EventCount:   4,
	}
}

func sampleAssets() []models.AssetMetrics {
	return []models.AssetMetrics{
		{
			AssetID:             "plant-7",
			TotalEnergyOutput:   models.Uint128{Hi: 1, Lo: 5}, // 2^64 + 5
			LastUpdateTimestamp: 1100,
			LastEnergyOutput:    250,
			EnergyType:          models.EnergySolar,
		},
	}
}

func TestBuildMetricsXLSX(t *testing.T) {
	sensors := []models.Sensor{
		{SensorID: "sensor-1", Owner: "alice", EnergyType: models.EnergySolar, IsActive: true},
		{SensorID: "sensor-2", Owner: "carol", EnergyType: models.EnergyWind, IsActive: false},
	}

	raw, err := BuildMetricsXLSX(sampleStatus(), sampleAssets(), sensors)
	if err != nil {
		t.Fatalf("BuildMetricsXLSX() error = %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("BuildMetricsXLSX() returned empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	admin, err := f.GetCellValue("summary", "B3")
	if err != nil {
		t.Fatalf("reading summary cell: %v", err)
	}
	if admin != "alice" {
		t.Errorf("summary admin = %q, want %q", admin, "alice")
	}

	total, err := f.GetCellValue("assets", "C2")
	if err != nil {
		t.Fatalf("reading assets cell: %v", err)
	}
	if total != "18446744073709551621" {
		t.Errorf("asset total = %q, want the full 128-bit decimal", total)
	}

	owner, err := f.GetCellValue("sensors", "B3")
	if err != nil {
		t.Fatalf("reading sensors cell: %v", err)
	}
	if owner != "carol" {
		t.Errorf("second sensor owner = %q, want %q", owner, "carol")
	}
}

func TestBuildProductionPDF(t *testing.T) {
	raw, err := BuildProductionPDF(sampleStatus(), sampleAssets())
	if err != nil {
		t.Fatalf("BuildProductionPDF() error = %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("BuildProductionPDF() returned empty document")
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Errorf("document does not start with a PDF header: %q", raw[:8])
	}
}
