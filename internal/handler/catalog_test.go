package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/handler"
	"github.com/osse101/GardenPlanner_Go/mocks"
)

func TestHandleGetCatalog(t *testing.T) {
	mockSvc := mocks.NewMockPlannerService(t)
	mockSvc.On("Catalog").Return(catalog.Default())

	w := httptest.NewRecorder()
	handler.HandleGetCatalog(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got handler.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Crops, len(catalog.Default().Crops()))
	assert.Len(t, got.Fertilisers, len(catalog.Default().Fertilisers()))
}

func TestHandleResolveCrop(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCrop   domain.CropKind
		expectedError  string
	}{
		{name: "kind", query: "?name=tomato", expectedStatus: http.StatusOK, expectedCrop: "tomato"},
		{name: "display name", query: "?name=Tomato", expectedStatus: http.StatusOK, expectedCrop: "tomato"},
		{name: "unknown", query: "?name=mandrake", expectedStatus: http.StatusNotFound, expectedError: domain.ErrMsgUnknownCrop},
		{name: "missing param", query: "", expectedStatus: http.StatusBadRequest, expectedError: "Missing name query parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockPlannerService(t)
			if tt.query != "" {
				mockSvc.On("Catalog").Return(catalog.Default())
			}

			w := httptest.NewRecorder()
			handler.HandleResolveCrop(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/resolve"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var got handler.ResolveResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedCrop, got.Crop)
			assert.Equal(t, "Tomato", got.DisplayName)
		})
	}
}
