package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"energy_oracle/internal/models"
	"energy_oracle/internal/service"
)

func TestAssetHandlers_MetricsAndList(t *testing.T) {
	auth := &mockAuth{parseIdentity: "alice"}
	mon := &mockMonitoring{
		metrics: models.AssetMetrics{
			AssetID:             "plant-1",
			TotalEnergyOutput:   models.Uint128{Hi: 1, Lo: 5},
			LastUpdateTimestamp: 900,
			LastEnergyOutput:    60,
			EnergyType:          models.EnergyWind,
		},
		metricsList: []models.AssetMetrics{
			{AssetID: "plant-1", EnergyType: models.EnergyWind},
			{AssetID: "plant-2", EnergyType: models.EnergySolar},
			{AssetID: "plant-3", EnergyType: models.EnergySolar},
		},
	}
	s := &service.Service{Authorization: auth, Monitoring: mon}
	r := newTestRouter(s)

	// Aggregate lookup → 200, 128-bit total rendered as a decimal string
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/plant-1/metrics", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status=%d, body=%s", w.Code, w.Body.String())
	}
	var m struct {
		AssetID           string `json:"asset_id"`
		TotalEnergyOutput string `json:"total_energy_output"`
		LastEnergyOutput  uint64 `json:"last_energy_output"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal metrics: %v", err)
	}
	if m.AssetID != "plant-1" || m.LastEnergyOutput != 60 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
	if m.TotalEnergyOutput != "18446744073709551621" {
		t.Fatalf("total over 64 bits mangled in transit: %q", m.TotalEnergyOutput)
	}
	if mon.lastAssetID != "plant-1" {
		t.Fatalf("asset id: got %q", mon.lastAssetID)
	}

	// List → 200 with count
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                   `json:"count"`
		Assets []models.AssetMetrics `json:"assets"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 3 || len(out.Assets) != 3 {
		t.Fatalf("unexpected list response: %+v", out)
	}
}
