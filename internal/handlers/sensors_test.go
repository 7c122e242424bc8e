package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"energy_oracle/internal/models"
	"energy_oracle/internal/oracle"
	"energy_oracle/internal/service"
)

func TestSensorHandlers_RegisterDeactivateLookupList(t *testing.T) {
	auth := &mockAuth{parseIdentity: "alice"}
	evID := uint64(0)
	reg := &mockRegistry{
		registerEvent: models.Event{EventID: evID, Type: models.EventSensorRegistered, SensorID: "sensor-1", Timestamp: 500},
		sensor:        models.Sensor{SensorID: "sensor-1", Owner: "carol", EnergyType: models.EnergySolar, IsActive: true},
	}
	s := &service.Service{Authorization: auth, Registry: reg}
	r := newTestRouter(s)

	// Registration requires auth → 401 without header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sensors",
		bytes.NewBufferString(`{"sensor_id":"sensor-1","owner":"carol","energy_type":"solar"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}
	if reg.registerCalls != 0 {
		t.Fatalf("RegisterSensor called without auth")
	}

	// With auth → 200 with status, event and stored sensor
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sensors",
		bytes.NewBufferString(`{"sensor_id":"sensor-1","owner":"carol","energy_type":"solar"}`))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Status string        `json:"status"`
		Event  models.Event  `json:"event"`
		Sensor models.Sensor `json:"sensor"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusRegistered {
		t.Fatalf("expected status %q, got %q", statusRegistered, resp.Status)
	}
	if resp.Event.Type != models.EventSensorRegistered || resp.Event.EventID != evID {
		t.Fatalf("bad event in response: %+v", resp.Event)
	}
	if resp.Sensor.Owner != "carol" || !resp.Sensor.IsActive {
		t.Fatalf("bad sensor in response: %+v", resp.Sensor)
	}
	if reg.lastCaller != "alice" {
		t.Fatalf("caller identity: got %q, want alice", reg.lastCaller)
	}
	if reg.lastRegister.SensorID != "sensor-1" || reg.lastRegister.Owner != "carol" || reg.lastRegister.EnergyType != models.EnergySolar {
		t.Fatalf("wrong register params: %+v", reg.lastRegister)
	}

	// Missing required field → 400 before the service is reached
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sensors",
		bytes.NewBufferString(`{"sensor_id":"sensor-2"}`))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	calls := reg.registerCalls
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
	if reg.registerCalls != calls {
		t.Fatalf("RegisterSensor called despite invalid body")
	}

	// Deactivate → 200 with deactivated status
	reg.deactivateEvent = models.Event{EventID: 1, Type: models.EventSensorDeactivated, SensorID: "sensor-1", Timestamp: 501}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sensors/sensor-1/deactivate", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate status=%d, body=%s", w.Code, w.Body.String())
	}
	if reg.lastDeactivateID != "sensor-1" {
		t.Fatalf("deactivate id: got %q", reg.lastDeactivateID)
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusDeactivated || resp.Event.Type != models.EventSensorDeactivated {
		t.Fatalf("bad deactivate response: %+v", resp)
	}

	// Lookup never fails: unknown id still answers 200
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/sensors/ghost", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get sensor status=%d", w.Code)
	}
	if reg.lastSensorID != "ghost" {
		t.Fatalf("lookup id: got %q", reg.lastSensorID)
	}

	// List reports count alongside the records
	reg.sensors = []models.Sensor{
		{SensorID: "sensor-1", Owner: "carol"},
		{SensorID: "sensor-2", Owner: "dave"},
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/sensors", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var list struct {
		Count   int             `json:"count"`
		Sensors []models.Sensor `json:"sensors"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if list.Count != 2 || len(list.Sensors) != 2 {
		t.Fatalf("unexpected list response: %+v", list)
	}
}

func TestSensorHandlers_RejectionMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode uint32
	}{
		{"non-admin caller", &oracle.Error{Code: oracle.CodeNotAuthorized, Reason: "only the admin can register sensors"}, http.StatusForbidden, 200},
		{"duplicate id", &oracle.Error{Code: oracle.CodeAlreadyRegistered, Reason: "sensor sensor-1 is already registered"}, http.StatusConflict, 205},
		{"unknown energy type", &oracle.Error{Code: oracle.CodeInvalidEnergyType, Reason: "energy type geothermal is not recognized"}, http.StatusBadRequest, 207},
		{"empty sensor id", &oracle.Error{Code: oracle.CodeInvalidData, Reason: "sensor id must not be empty"}, http.StatusBadRequest, 203},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseIdentity: "mallory"}
			reg := &mockRegistry{registerErr: tc.err}
			s := &service.Service{Authorization: auth, Registry: reg}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sensors",
				bytes.NewBufferString(`{"sensor_id":"sensor-1","owner":"carol","energy_type":"solar"}`))
			req.Header.Set("Content-Type", "application/json")
			for k, vv := range authHeader("valid") {
				for _, v := range vv {
					req.Header.Add(k, v)
				}
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantHTTP {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantHTTP, w.Body.String())
			}
			var body struct {
				Error string `json:"error"`
				Code  uint32 `json:"code"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body.Code != tc.wantCode {
				t.Fatalf("code: got %d, want %d", body.Code, tc.wantCode)
			}
			if body.Error == "" {
				t.Fatalf("expected a reason in the error body")
			}
		})
	}
}
