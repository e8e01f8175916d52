package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/planner"
)

func newTestServer(t *testing.T, opts Options) http.Handler {
	t.Helper()
	svc := planner.NewService(catalog.Default(), planner.Config{})
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })
	return NewServer(0, opts, svc).Handler()
}

func TestServer_Routes(t *testing.T) {
	h := newTestServer(t, Options{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{"healthz", "GET", "/healthz", "", http.StatusOK, `"status":"ok"`},
		{"readyz", "GET", "/readyz", "", http.StatusOK, `"status":"ok"`},
		{"version", "GET", "/version", "", http.StatusOK, `"go_version"`},
		{"metrics", "GET", "/metrics", "", http.StatusOK, "http_requests_in_flight"},
		{"catalog", "GET", "/api/v1/catalog", "", http.StatusOK, `"tomato"`},
		{"resolve", "GET", "/api/v1/catalog/resolve?name=Tomato", "", http.StatusOK, `"crop":"tomato"`},
		{"simulate", "POST", "/api/v1/simulate", `{"save_code":"v0.2_DIM-1_CROPS-TNNNNNNNN","harvest":{"days":4}}`, http.StatusOK, `"day":4`},
		{"produce", "POST", "/api/v1/produce", `{"save_code":"v0.2_DIM-1_CROPS-TNNNNNNNN","harvest":{"days":10},"options":[{"crop":"tomato","product":"seed"}]}`, http.StatusOK, `"total_value"`},
		{"value", "POST", "/api/v1/value", `{"save_code":"v0.2_DIM-1_CROPS-TNNNNNNNN"}`, http.StatusOK, `"valuation"`},
		{"compare", "POST", "/api/v1/compare", `{"layouts":[{"save_code":"v0.2_DIM-1_CROPS-TNNNNNNNN"}]}`, http.StatusOK, `"best":0`},
		{"normalize", "POST", "/api/v1/layout/normalize", `{"save_code":"v0.1_DIM-1_CROPS-Ct.QUCoSpNcBcNN.HPNN"}`, http.StatusOK, `"upgraded":true`},
		{"bad save code", "POST", "/api/v1/simulate", `{"save_code":"v0.2_DIM-1"}`, http.StatusBadRequest, "invalid save format"},
		{"wrong method", "GET", "/api/v1/simulate", "", http.StatusMethodNotAllowed, ""},
		{"unknown route", "GET", "/api/v1/nope", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.want != "" {
				assert.Contains(t, rec.Body.String(), tt.want)
			}
		})
	}
}

func TestServer_SetsRequestID(t *testing.T) {
	h := newTestServer(t, Options{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/catalog", nil))

	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestServer_APIKey(t *testing.T) {
	h := newTestServer(t, Options{APIKey: "k"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
	req.Header.Set(HeaderAPIKey, "k")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "crops")
}

func TestServer_RateLimitsPlannerOnly(t *testing.T) {
	h := newTestServer(t, Options{RateLimitRPS: 1.0 / 3600, RateLimitBurst: 1})
	body := `{"save_code":"v0.2_DIM-1_CROPS-TNNNNNNNN"}`

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/simulate", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/simulate", strings.NewReader(body)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
