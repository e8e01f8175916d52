package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlannerRequest(t *testing.T) {
	InitValidator()

	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantError  string
		wantFields []string
	}{
		{
			name: "valid save code",
			body: `{"save_code": "v0.2_DIM-1_CROPS-TNNNNNNNN"}`,
		},
		{
			name:      "not json",
			body:      `save_code=v0.2`,
			wantErr:   true,
			wantError: ErrMsgInvalidRequest,
		},
		{
			name:      "empty body",
			body:      ``,
			wantErr:   true,
			wantError: ErrMsgInvalidRequest,
		},
		{
			name:       "missing save code",
			body:       `{}`,
			wantErr:    true,
			wantError:  ErrMsgInvalidRequestSummary,
			wantFields: []string{"save_code"},
		},
		{
			name:       "malformed save code",
			body:       `{"save_code": "v9_DIM-x"}`,
			wantErr:    true,
			wantError:  ErrMsgInvalidRequestSummary,
			wantFields: []string{"save_code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/layout/normalize", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dst NormalizeRequest
			err := decodePlannerRequest(rec, req, &dst, OpNormalize)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "v0.2_DIM-1_CROPS-TNNNNNNNN", dst.SaveCode)
				assert.Zero(t, rec.Body.Len())
				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
			for _, f := range tt.wantFields {
				assert.Contains(t, resp.Fields, f)
			}
		})
	}
}

func TestQueryParam(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		rec := httptest.NewRecorder()
		got, ok := queryParam(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/resolve?name=tomatoe", nil), QueryParamName)
		assert.True(t, ok)
		assert.Equal(t, "tomatoe", got)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("empty", func(t *testing.T) {
		rec := httptest.NewRecorder()
		_, ok := queryParam(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/resolve?name=", nil), QueryParamName)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamName), resp.Error)
	})
}

func TestHandlePlannerAction_PassesRequestContext(t *testing.T) {
	InitValidator()

	type ctxKey struct{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/layout/normalize",
		strings.NewReader(`{"save_code": "v0.2_DIM-1_CROPS-TNNNNNNNN"}`))
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	rec := httptest.NewRecorder()

	handlePlannerAction(rec, req, OpNormalize, func(ctx context.Context, in NormalizeRequest) (map[string]string, error) {
		return map[string]string{"code": in.SaveCode, "marker": ctx.Value(ctxKey{}).(string)}, nil
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "marker", out["marker"])
	assert.Equal(t, "v0.2_DIM-1_CROPS-TNNNNNNNN", out["code"])
}
