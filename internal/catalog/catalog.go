package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// Catalog is a read-only lookup of crop and fertiliser definitions.
// Returned records are values; callers cannot mutate the catalog.
type Catalog interface {
	LookupCrop(kind domain.CropKind) (domain.Crop, bool)
	LookupFertiliser(kind domain.FertiliserKind) (domain.Fertiliser, bool)
}

// Table is the in-memory Catalog built from a Document
type Table struct {
	crops       map[domain.CropKind]domain.Crop
	fertilisers map[domain.FertiliserKind]domain.Fertiliser
	cropOrder   []domain.CropKind
	fertOrder   []domain.FertiliserKind
}

// NewTable indexes the given definitions, keeping their order for listing.
// Later duplicates replace earlier ones; the loader rejects duplicates before this point.
func NewTable(crops []domain.Crop, fertilisers []domain.Fertiliser) *Table {
	t := &Table{
		crops:       make(map[domain.CropKind]domain.Crop, len(crops)),
		fertilisers: make(map[domain.FertiliserKind]domain.Fertiliser, len(fertilisers)),
	}
	for _, c := range crops {
		if _, seen := t.crops[c.Kind]; !seen {
			t.cropOrder = append(t.cropOrder, c.Kind)
		}
		if c.Name == "" {
			c.Name = DisplayName(string(c.Kind))
		}
		t.crops[c.Kind] = c
	}
	for _, f := range fertilisers {
		if _, seen := t.fertilisers[f.Kind]; !seen {
			t.fertOrder = append(t.fertOrder, f.Kind)
		}
		if f.Name == "" {
			f.Name = DisplayName(string(f.Kind))
		}
		t.fertilisers[f.Kind] = f
	}
	return t
}

// LookupCrop returns the crop definition for kind
func (t *Table) LookupCrop(kind domain.CropKind) (domain.Crop, bool) {
	c, ok := t.crops[kind]
	return c, ok
}

// LookupFertiliser returns the fertiliser definition for kind
func (t *Table) LookupFertiliser(kind domain.FertiliserKind) (domain.Fertiliser, bool) {
	f, ok := t.fertilisers[kind]
	return f, ok
}

// Crops lists every crop in catalog order
func (t *Table) Crops() []domain.Crop {
	out := make([]domain.Crop, 0, len(t.cropOrder))
	for _, k := range t.cropOrder {
		out = append(out, t.crops[k])
	}
	return out
}

// Fertilisers lists every fertiliser in catalog order
func (t *Table) Fertilisers() []domain.Fertiliser {
	out := make([]domain.Fertiliser, 0, len(t.fertOrder))
	for _, k := range t.fertOrder {
		out = append(out, t.fertilisers[k])
	}
	return out
}

// DisplayName turns a snake_case kind into a title-cased name ("spicy_pepper" -> "Spicy Pepper")
func DisplayName(kind string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(kind, "_", " "))
}
