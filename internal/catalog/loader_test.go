package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

const validDocument = `{
	"version": "1.0",
	"description": "Test crops",
	"crops": [
		{
			"kind": "tomato",
			"footprint": 1,
			"bonus": "water",
			"base": 2, "with_bonus": 3,
			"growth_days": 4, "reharvest_cooldown": 2, "reharvest_limit": 3,
			"crop_price": {"base": 10, "star": 15},
			"seed_price": {"base": 6, "star": 9},
			"preserve_price": {"base": 39, "star": 58},
			"crops_per_seed": 1, "seeds_per_conversion": 2, "seed_minutes": 31,
			"crops_per_preserve": 1, "preserve_minutes": 60
		}
	],
	"fertilisers": [
		{"kind": "quality_up", "bonus": "quality"}
	]
}`

func validCrop(kind domain.CropKind) domain.Crop {
	return domain.Crop{
		Kind:               kind,
		Footprint:          domain.FootprintSingle,
		Bonus:              domain.BonusWater,
		Base:               2,
		WithBonus:          3,
		GrowthDays:         4,
		ReharvestCooldown:  2,
		ReharvestLimit:     3,
		CropsPerSeed:       1,
		SeedsPerConversion: 2,
		CropsPerPreserve:   1,
	}
}

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCatalogLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		doc, err := loader.Load(createTempFile(t, validDocument))
		require.NoError(t, err)
		assert.Equal(t, "1.0", doc.Version)
		require.Len(t, doc.Crops, 1)
		assert.Equal(t, domain.CropKind("tomato"), doc.Crops[0].Kind)
		assert.Equal(t, 15, doc.Crops[0].CropPrice.Star)
		require.Len(t, doc.Fertilisers, 1)
		assert.Equal(t, domain.BonusQuality, doc.Fertilisers[0].Bonus)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{invalid json}`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("schema rejects unknown bonus", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{"version": "1.0", "crops": [{"kind": "x", "bonus": "luck"}], "fertilisers": []}`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("schema rejects zero growth days", func(t *testing.T) {
		_, err := loader.Parse([]byte(`{"version": "1.0", "crops": [` +
			`{"kind": "x", "footprint": 1, "bonus": "none", "base": 1, "with_bonus": 1,` +
			` "growth_days": 0, "reharvest_cooldown": 0, "reharvest_limit": 0,` +
			` "crop_price": {"base": 1, "star": 1}, "seed_price": {"base": 1, "star": 1},` +
			` "preserve_price": {"base": 1, "star": 1}, "crops_per_seed": 1,` +
			` "seeds_per_conversion": 1, "seed_minutes": 1, "crops_per_preserve": 1,` +
			` "preserve_minutes": 1}], "fertilisers": []}`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "/crops/0/growth_days")
	})
}

func TestCatalogLoader_Validate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		mutate  func(doc *Document)
		wantErr error
		errMsg  string
	}{
		{
			name:   "valid document",
			mutate: func(doc *Document) {},
		},
		{
			name:    "no crops",
			mutate:  func(doc *Document) { doc.Crops = nil },
			wantErr: ErrInvalidConfig,
			errMsg:  ErrMsgNoCropsDefined,
		},
		{
			name:    "empty kind",
			mutate:  func(doc *Document) { doc.Crops[0].Kind = domain.CropNone },
			wantErr: ErrInvalidConfig,
			errMsg:  "index 0",
		},
		{
			name:    "duplicate crop",
			mutate:  func(doc *Document) { doc.Crops = append(doc.Crops, doc.Crops[0]) },
			wantErr: ErrDuplicateKind,
		},
		{
			name:    "with_bonus below base",
			mutate:  func(doc *Document) { doc.Crops[0].WithBonus = 1 },
			wantErr: ErrInvalidConfig,
			errMsg:  "below base",
		},
		{
			name:    "negative base yield",
			mutate:  func(doc *Document) { doc.Crops[0].Base = -1 },
			wantErr: ErrInvalidConfig,
			errMsg:  "negative base",
		},
		{
			name:    "bad footprint",
			mutate:  func(doc *Document) { doc.Crops[0].Footprint = 4 },
			wantErr: ErrInvalidConfig,
			errMsg:  "footprint",
		},
		{
			name:    "negative reharvest limit",
			mutate:  func(doc *Document) { doc.Crops[0].ReharvestLimit = -1 },
			wantErr: ErrInvalidConfig,
			errMsg:  "reharvest_limit",
		},
		{
			name:    "reharvest without cooldown",
			mutate:  func(doc *Document) { doc.Crops[0].ReharvestCooldown = 0 },
			wantErr: ErrInvalidConfig,
			errMsg:  "zero cooldown",
		},
		{
			name:    "zero seed ratio",
			mutate:  func(doc *Document) { doc.Crops[0].CropsPerSeed = 0 },
			wantErr: ErrInvalidConfig,
			errMsg:  "crops_per_seed",
		},
		{
			name:    "fertiliser without bonus",
			mutate:  func(doc *Document) { doc.Fertilisers[0].Bonus = domain.BonusNone },
			wantErr: ErrInvalidConfig,
			errMsg:  "quality_up",
		},
		{
			name:    "duplicate fertiliser",
			mutate:  func(doc *Document) { doc.Fertilisers = append(doc.Fertilisers, doc.Fertilisers[0]) },
			wantErr: ErrDuplicateKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{
				Version: "1.0",
				Crops:   []domain.Crop{validCrop("tomato")},
				Fertilisers: []domain.Fertiliser{
					{Kind: "quality_up", Bonus: domain.BonusQuality},
				},
			}
			tt.mutate(doc)

			err := loader.Validate(doc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}

	t.Run("nil document", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestDefault(t *testing.T) {
	table := Default()

	assert.Len(t, table.Crops(), 15)
	assert.Len(t, table.Fertilisers(), 5)

	tomato, ok := table.LookupCrop("tomato")
	require.True(t, ok)
	assert.Equal(t, 4, tomato.GrowthDays)
	assert.Equal(t, 2, tomato.ReharvestCooldown)
	assert.Equal(t, 3, tomato.ReharvestLimit)
	assert.Equal(t, 2, tomato.Base)

	apple, ok := table.LookupCrop("apple")
	require.True(t, ok)
	assert.Equal(t, 9, apple.TileCount())

	blueberry, ok := table.LookupCrop("blueberry")
	require.True(t, ok)
	assert.Equal(t, 4, blueberry.TileCount())

	fert, ok := table.LookupFertiliser("quality_up")
	require.True(t, ok)
	assert.Equal(t, domain.BonusQuality, fert.Bonus)

	_, ok = table.LookupCrop("mandrake")
	assert.False(t, ok)

	assert.Same(t, table, Default())
}

func TestOpen(t *testing.T) {
	t.Run("empty path uses embedded catalog", func(t *testing.T) {
		table, err := Open("")
		require.NoError(t, err)
		assert.Same(t, Default(), table)
	})

	t.Run("override file", func(t *testing.T) {
		table, err := Open(createTempFile(t, validDocument))
		require.NoError(t, err)
		require.Len(t, table.Crops(), 1)

		crop, ok := table.LookupCrop("tomato")
		require.True(t, ok)
		assert.Equal(t, "Tomato", crop.Name, "missing names default to the display name")

		fert, ok := table.LookupFertiliser("quality_up")
		require.True(t, ok)
		assert.Equal(t, "Quality Up", fert.Name)
	})
}

func TestSchema(t *testing.T) {
	schema, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(schema), "Garden Planner Catalog")
	assert.Contains(t, string(schema), "growth_days")
}
