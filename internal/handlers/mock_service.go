package handlers

import (
	"context"
	"net/http"

	"energy_oracle/internal/models"
	"energy_oracle/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseIdentity models.Identity
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (models.Identity, error) {
	m.lastParseToken = token
	return m.parseIdentity, m.parseErr
}

type mockRegistry struct {
	registerEvent   models.Event
	registerErr     error
	deactivateEvent models.Event
	deactivateErr   error
	sensor          models.Sensor
	sensors         []models.Sensor

	lastCaller       models.Identity
	lastRegister     service.RegisterSensorParams
	lastDeactivateID string
	lastSensorID     string
	registerCalls    int
	deactivateCalls  int
}

func (m *mockRegistry) RegisterSensor(ctx context.Context, caller models.Identity, p service.RegisterSensorParams) (models.Event, error) {
	m.registerCalls++
	m.lastCaller = caller
	m.lastRegister = p
	return m.registerEvent, m.registerErr
}
func (m *mockRegistry) DeactivateSensor(ctx context.Context, caller models.Identity, sensorID string) (models.Event, error) {
	m.deactivateCalls++
	m.lastCaller = caller
	m.lastDeactivateID = sensorID
	return m.deactivateEvent, m.deactivateErr
}
func (m *mockRegistry) Sensor(sensorID string) models.Sensor {
	m.lastSensorID = sensorID
	return m.sensor
}
func (m *mockRegistry) Sensors() []models.Sensor { return m.sensors }

type mockIngestion struct {
	submitEvent models.Event
	submitErr   error
	reading     models.SensorReading

	lastCaller    models.Identity
	lastSubmit    service.SubmitReadingParams
	lastSensorID  string
	lastTimestamp uint64
	submitCalls   int
}

func (m *mockIngestion) SubmitReading(ctx context.Context, caller models.Identity, p service.SubmitReadingParams) (models.Event, error) {
	m.submitCalls++
	m.lastCaller = caller
	m.lastSubmit = p
	return m.submitEvent, m.submitErr
}
func (m *mockIngestion) Reading(sensorID string, timestamp uint64) models.SensorReading {
	m.lastSensorID = sensorID
	m.lastTimestamp = timestamp
	return m.reading
}

type mockEventLog struct {
	event  models.Event
	events []models.Event

	lastID     uint64
	lastFilter service.EventFilter
}

func (m *mockEventLog) Event(id uint64) models.Event {
	m.lastID = id
	return m.event
}
func (m *mockEventLog) Events(f service.EventFilter) []models.Event {
	m.lastFilter = f
	return m.events
}

type mockMonitoring struct {
	status      models.OracleStatus
	metrics     models.AssetMetrics
	metricsList []models.AssetMetrics

	lastAssetID string
}

func (m *mockMonitoring) Status() models.OracleStatus { return m.status }
func (m *mockMonitoring) AssetMetrics(assetID string) models.AssetMetrics {
	m.lastAssetID = assetID
	return m.metrics
}
func (m *mockMonitoring) AssetMetricsList() []models.AssetMetrics { return m.metricsList }

type mockAdmin struct {
	pausedResp  bool
	pausedErr   error
	operatorErr error
	transferErr error
	heightErr   error

	lastCaller   models.Identity
	lastPaused   bool
	lastOperator models.Identity
	lastAdmin    models.Identity
	lastHeight   uint64
}

func (m *mockAdmin) SetPaused(ctx context.Context, caller models.Identity, pause bool) (bool, error) {
	m.lastCaller = caller
	m.lastPaused = pause
	return m.pausedResp, m.pausedErr
}
func (m *mockAdmin) SetOperator(ctx context.Context, caller, newOperator models.Identity) error {
	m.lastCaller = caller
	m.lastOperator = newOperator
	return m.operatorErr
}
func (m *mockAdmin) TransferAdmin(ctx context.Context, caller, newAdmin models.Identity) error {
	m.lastCaller = caller
	m.lastAdmin = newAdmin
	return m.transferErr
}
func (m *mockAdmin) SetHeight(caller models.Identity, height uint64) error {
	m.lastCaller = caller
	m.lastHeight = height
	return m.heightErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
