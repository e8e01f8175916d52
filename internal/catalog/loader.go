package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/validation"
)

// Sentinel errors for catalog loader
var (
	ErrDuplicateKind = errors.New("duplicate kind")

	ErrInvalidConfig = errors.New("invalid catalog")
)

//go:embed data/catalog.json
var defaultDocument []byte

// Document represents the JSON catalog file
type Document struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Crops       []domain.Crop       `json:"crops"`
	Fertilisers []domain.Fertiliser `json:"fertilisers"`
}

// Loader handles loading and validating catalog documents
type Loader interface {
	Load(path string) (*Document, error)
	Parse(data []byte) (*Document, error)
	Validate(doc *Document) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	doc, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse validates data against the catalog schema and decodes it
func (l *catalogLoader) Parse(data []byte) (*Document, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, SchemaName, schema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &doc, nil
}

// Validate checks the catalog for errors the schema cannot express
func (l *catalogLoader) Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(doc.Crops) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoCropsDefined)
	}

	kinds := make(map[domain.CropKind]bool, len(doc.Crops))
	for i := range doc.Crops {
		if err := validateCrop(i, &doc.Crops[i], kinds); err != nil {
			return err
		}
	}

	fertKinds := make(map[domain.FertiliserKind]bool, len(doc.Fertilisers))
	for i, f := range doc.Fertilisers {
		if f.Kind == domain.FertiliserNone {
			return fmt.Errorf(ErrFmtFertAtIndexEmpty, ErrInvalidConfig, i)
		}
		if fertKinds[f.Kind] {
			return fmt.Errorf(ErrFmtDuplicateFertiliser, ErrDuplicateKind, f.Kind)
		}
		fertKinds[f.Kind] = true

		if !f.Bonus.IsValid() || f.Bonus == domain.BonusNone {
			return fmt.Errorf(ErrFmtFertBadBonus, ErrInvalidConfig, f.Kind, f.Bonus)
		}
	}

	return nil
}

func validateCrop(index int, c *domain.Crop, kinds map[domain.CropKind]bool) error {
	if c.Kind == domain.CropNone {
		return fmt.Errorf(ErrFmtCropAtIndexEmpty, ErrInvalidConfig, index)
	}

	if kinds[c.Kind] {
		return fmt.Errorf(ErrFmtDuplicateCrop, ErrDuplicateKind, c.Kind)
	}
	kinds[c.Kind] = true

	switch c.Footprint {
	case domain.FootprintSingle, domain.FootprintBush, domain.FootprintTree:
	default:
		return fmt.Errorf(ErrFmtCropBadFootprint, ErrInvalidConfig, c.Kind, c.Footprint)
	}

	if !c.Bonus.IsValid() {
		return fmt.Errorf(ErrFmtCropBadBonus, ErrInvalidConfig, c.Kind, c.Bonus)
	}

	if c.Base < 0 {
		return fmt.Errorf(ErrFmtCropNegativeYield, ErrInvalidConfig, c.Kind)
	}
	if c.WithBonus < c.Base {
		return fmt.Errorf(ErrFmtCropBonusBelowBase, ErrInvalidConfig, c.Kind, c.WithBonus, c.Base)
	}
	if c.GrowthDays < 1 {
		return fmt.Errorf(ErrFmtCropBadGrowth, ErrInvalidConfig, c.Kind)
	}
	if c.ReharvestLimit < 0 {
		return fmt.Errorf(ErrFmtCropNegativeLimit, ErrInvalidConfig, c.Kind)
	}
	if c.ReharvestCooldown < 0 {
		return fmt.Errorf(ErrFmtCropNegativeCooldown, ErrInvalidConfig, c.Kind)
	}
	if c.ReharvestLimit > 0 && c.ReharvestCooldown == 0 {
		return fmt.Errorf(ErrFmtCropNoCooldown, ErrInvalidConfig, c.Kind)
	}

	ratios := []struct {
		name  string
		value int
	}{
		{"crops_per_seed", c.CropsPerSeed},
		{"seeds_per_conversion", c.SeedsPerConversion},
		{"crops_per_preserve", c.CropsPerPreserve},
	}
	for _, r := range ratios {
		if r.value < 1 {
			return fmt.Errorf(ErrFmtCropBadRatio, ErrInvalidConfig, c.Kind, r.name)
		}
	}

	return nil
}

// Build parses and validates a document and indexes it into a Table
func Build(l Loader, data []byte) (*Table, error) {
	doc, err := l.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(doc); err != nil {
		return nil, err
	}
	return NewTable(doc.Crops, doc.Fertilisers), nil
}

// Open loads the catalog at path, or the embedded default when path is empty
func Open(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	l := NewLoader()
	doc, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewTable(doc.Crops, doc.Fertilisers), nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded catalog. It panics if the embedded document
// is invalid, which the package tests rule out.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Build(NewLoader(), defaultDocument)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}
