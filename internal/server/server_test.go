package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltworks/voltcalc/internal/config"
)

func testConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:           0,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		AllowedOrigins: []string{"*"},
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestOhmEndpoint(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/ohm", map[string]any{
		"voltage": 230, "current": 10,
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"voltage":230,"current":10,"resistance":23,"power":2300}`, rr.Body.String())
}

func TestOhmEndpoint_UndefinedField(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/ohm", map[string]any{
		"resistance": 0, "power": 10,
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]*float64
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Nil(t, body["current"])
	assert.Nil(t, body["voltage"])
	require.NotNil(t, body["power"])
	assert.Equal(t, 10.0, *body["power"])
}

func TestOhmEndpoint_InsufficientInputs(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/ohm", map[string]any{"voltage": 230})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "at least two")
}

func TestOhmEndpoint_BadBody(t *testing.T) {
	h := New(testConfig()).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ohm", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPowerEndpoint(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/power", map[string]any{
		"phase": "three", "voltage": 230, "current": 10, "power_factor": 0.95,
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.InDelta(t, 3784.53, body["real_power_watts"], 0.01)
	assert.InDelta(t, 3983.72, body["apparent_power_va"], 0.01)
	assert.Equal(t, 12.5, body["recommended_breaker_amps"])
}

func TestPowerEndpoint_DomainViolation(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/power", map[string]any{
		"phase": "single", "voltage": 230, "current": 10, "power_factor": 0.2,
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "power_factor")
}

func TestPowerEndpoint_UnknownPhase(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/power", map[string]any{
		"phase": "two", "voltage": 230, "current": 10, "power_factor": 0.9,
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown phase")
}

func TestDropEndpoint(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/voltage-drop", map[string]any{
		"length_meters": 30, "current_amps": 16, "area_mm2": 2.5, "supply_volts": 230,
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"drop_volts":6.72,"drop_percent":2.92,"loop_resistance_ohms":0.42}`, rr.Body.String())
}

func TestDropEndpoint_DomainViolation(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/voltage-drop", map[string]any{
		"length_meters": 30, "current_amps": 16, "area_mm2": 50, "supply_volts": 230,
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "area_mm2")
}

func TestReferenceEndpoint(t *testing.T) {
	h := New(testConfig()).Handler()

	rr := doJSON(t, h, http.MethodGet, "/api/v1/reference", nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Formulas   []map[string]any `json:"formulas"`
		Voltages   []map[string]any `json:"voltages"`
		Conductors []map[string]any `json:"conductors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Formulas)
	assert.NotEmpty(t, body.Voltages)
	assert.NotEmpty(t, body.Conductors)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	h := New(cfg).Handler()

	first := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRequestID_EchoesClientID(t *testing.T) {
	h := New(testConfig()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}
