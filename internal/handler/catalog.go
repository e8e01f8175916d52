package handler

import (
	"net/http"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/logger"
)

// CatalogProvider exposes the crop table a planner runs against
type CatalogProvider interface {
	Catalog() *catalog.Table
}

// CatalogResponse lists every crop and fertiliser
type CatalogResponse struct {
	Crops       []domain.Crop       `json:"crops"`
	Fertilisers []domain.Fertiliser `json:"fertilisers"`
}

// ResolveResponse is the crop a free-form name resolved to
type ResolveResponse struct {
	Query       string          `json:"query"`
	Crop        domain.CropKind `json:"crop"`
	DisplayName string          `json:"display_name"`
}

// HandleGetCatalog returns the crop catalog
func HandleGetCatalog(p CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := p.Catalog()
		respondJSON(w, http.StatusOK, CatalogResponse{
			Crops:       table.Crops(),
			Fertilisers: table.Fertilisers(),
		})
	}
}

// HandleResolveCrop resolves ?name= to a crop kind, suggesting a close match on failure
func HandleResolveCrop(p CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := queryParam(w, r, QueryParamName)
		if !ok {
			return
		}

		table := p.Catalog()
		kind, err := table.Resolve(name)
		if err != nil {
			logger.FromContext(r.Context()).Debug("Crop resolve failed", "name", name, "error", err)
			respondError(w, http.StatusNotFound, err.Error())
			return
		}

		display := catalog.DisplayName(string(kind))
		if crop, ok := table.LookupCrop(kind); ok && crop.Name != "" {
			display = crop.Name
		}
		respondJSON(w, http.StatusOK, ResolveResponse{
			Query:       name,
			Crop:        kind,
			DisplayName: display,
		})
	}
}
