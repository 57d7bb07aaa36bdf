package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/cnpj-geo/internal/config"
	"github.com/nexconsult/cnpj-geo/internal/logger"
	"github.com/nexconsult/cnpj-geo/internal/models"
	"github.com/nexconsult/cnpj-geo/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, Environment: "test"},
		Cache:  config.CacheConfig{TTL: time.Minute, KeyPrefix: "cnpj:"},
		Security: config.SecurityConfig{
			RateLimit: config.RateLimitConfig{RequestsPerMinute: 6000, BurstSize: 1000, CleanupInterval: time.Minute},
			CORS: config.CORSConfig{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "DELETE"},
				AllowedHeaders: []string{"Content-Type"},
			},
		},
		Workers: config.WorkersConfig{Count: 2, QueueSize: 16, JobTimeout: time.Second},
		Batch:   config.BatchConfig{MaxItems: 3},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	container, err := services.NewContainer(cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Close()) })
	return NewServer(cfg, logger.Discard(), container)
}

type envelope struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
	Error   *models.ErrorDetails `json:"error"`
	Meta    *models.ResponseMeta `json:"meta"`
}

func call(t *testing.T, s *Server, method, path, contentType, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestGetCNPJ(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := call(t, s, http.MethodGet, "/api/v1/cnpj/11222333000181", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, models.StatusSuccess, env.Status)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.NotEmpty(t, env.Meta.ExecutionTime)

	var info map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, true, info["valid"])
	assert.Equal(t, "11.222.333/0001-81", info["formatted"])
	assert.Equal(t, "MATRIZ", info["kind"])

	w, _ = call(t, s, http.MethodGet, "/api/v1/cnpj/11222333000181", "", "")
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))

	w, env = call(t, s, http.MethodGet, "/api/v1/cnpj/11222333000182", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, false, info["valid"])
	assert.Equal(t, "checksum_mismatch", info["reason"])
}

func TestValidateCNPJ(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := call(t, s, http.MethodPost, "/api/v1/cnpj/validate", "application/json", `{"cnpj":"12.345.678/0001-95"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusSuccess, env.Status)

	w, env = call(t, s, http.MethodPost, "/api/v1/cnpj/validate", "application/json", `{"cnpj":"11.111.111/1111-11"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, models.ErrorCodeInvalidCNPJ, env.Error.Code)
	assert.Equal(t, "repeated_digits", env.Error.Details.(map[string]any)["reason"])

	w, env = call(t, s, http.MethodPost, "/api/v1/cnpj/validate", "application/json", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrorCodeInvalidRequest, env.Error.Code)
}

func TestBatchCNPJ(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := call(t, s, http.MethodPost, "/api/v1/cnpj/batch", "application/json",
		`{"cnpjs":["11222333000181","123","11444777000161"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3, resp.Stats.Total)
	assert.Equal(t, 2, resp.Stats.Valid)
	assert.Equal(t, 1, resp.Stats.Invalid)
	assert.Equal(t, "123", resp.Results[1].Input)

	w, env = call(t, s, http.MethodPost, "/api/v1/cnpj/batch", "application/json", `{"cnpjs":["1","2","3","4"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrorCodeBatchTooLarge, env.Error.Code)

	w, env = call(t, s, http.MethodPost, "/api/v1/cnpj/batch", "application/json", `{"cnpjs":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrorCodeInvalidRequest, env.Error.Code)
}

func TestExtractCNPJ(t *testing.T) {
	s := newTestServer(t, testConfig())

	html := `<html><body><p>Empresa 11.222.333/0001-81</p><input value="11444777000161"><script>var x = "12345678000195";</script></body></html>`
	w, env := call(t, s, http.MethodPost, "/api/v1/cnpj/extract", "text/html", html)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExtractResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 2, resp.Count)

	w, _ = call(t, s, http.MethodPost, "/api/v1/cnpj/extract", "text/plain", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateCNPJ(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := call(t, s, http.MethodGet, "/api/v1/cnpj/generate/112223330001", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "11222333000181", resp.CNPJ)

	w, _ = call(t, s, http.MethodGet, "/api/v1/cnpj/generate/123", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeometryIntersection(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := call(t, s, http.MethodPost, "/api/v1/geometry/intersection", "application/json",
		`{"a":{"x1":3,"y1":5,"x2":11,"y2":11},"b":{"x1":7,"y1":2,"x2":13,"y2":7}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, true, resp["intersects"])
	assert.EqualValues(t, 15, resp["intersection_area"])
	assert.EqualValues(t, 63, resp["area_a"])
	assert.EqualValues(t, 42, resp["area_b"])
	assert.Equal(t, map[string]any{"x1": 7.0, "y1": 5.0, "x2": 11.0, "y2": 7.0}, resp["intersection"])

	w, env = call(t, s, http.MethodPost, "/api/v1/geometry/intersection", "application/json",
		`{"a":{"x1":3,"y1":5,"x2":11,"y2":11},"b":{"x1":12,"y1":2,"x2":13,"y2":4}}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, false, resp["intersects"])
	assert.Nil(t, resp["intersection"])
	assert.EqualValues(t, 0, resp["intersection_area"])

	w, env = call(t, s, http.MethodPost, "/api/v1/geometry/intersection", "application/json",
		`{"a":{"x1":5,"y1":5,"x2":1,"y2":11},"b":{"x1":7,"y1":2,"x2":13,"y2":7}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrorCodeInvalidGeometry, env.Error.Code)
}

func TestGeometryContainsAndArea(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := call(t, s, http.MethodPost, "/api/v1/geometry/contains", "application/json",
		`{"rectangle":{"x1":0,"y1":0,"x2":4,"y2":4},"x":4,"y":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	var contains models.ContainsResponse
	require.NoError(t, json.Unmarshal(env.Data, &contains))
	assert.True(t, contains.Contains)

	w, env = call(t, s, http.MethodGet, "/api/v1/geometry/area?rect=3,5,11,11", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.EqualValues(t, 63, info["area"])
	assert.EqualValues(t, 8, info["width"])
	assert.EqualValues(t, 6, info["height"])
	assert.Equal(t, "Rectangle[(3,5),(11,11)]", info["string"])

	w, _ = call(t, s, http.MethodGet, "/api/v1/geometry/area?rect=1,2,3", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = call(t, s, http.MethodGet, "/api/v1/geometry/area", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCacheEndpoints(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, _ := call(t, s, http.MethodDelete, "/api/v1/cache/11222333000181", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	call(t, s, http.MethodGet, "/api/v1/cnpj/11222333000181", "", "")

	w, _ = call(t, s, http.MethodGet, "/api/v1/cache/stats", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, s, http.MethodDelete, "/api/v1/cache/11.222.333-0001-81", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, s, http.MethodDelete, "/api/v1/cache/123", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, s, http.MethodDelete, "/api/v1/cache/clear", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthAndStats(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, _ := call(t, s, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, Version, health.Version)
	assert.Contains(t, health.Services, "workers")

	w, _ = call(t, s, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = call(t, s, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := call(t, s, http.MethodGet, "/api/v1/stats", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Contains(t, stats, "workers")
	assert.Contains(t, stats, "rate_limiter")
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := call(t, s, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrorCodeNotFound, env.Error.Code)

	w, _ = call(t, s, http.MethodPut, "/health", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRateLimitAppliesToAPIOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RateLimit = config.RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1, CleanupInterval: time.Minute}
	s := newTestServer(t, cfg)

	w, _ := call(t, s, http.MethodGet, "/api/v1/geometry/area?rect=0,0,1,1", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, env := call(t, s, http.MethodGet, "/api/v1/geometry/area?rect=0,0,1,1", "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, models.ErrorCodeRateLimit, env.Error.Code)

	w, _ = call(t, s, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
