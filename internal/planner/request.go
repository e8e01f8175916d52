package planner

import (
	"github.com/osse101/GardenPlanner_Go/internal/crafter"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
	"github.com/osse101/GardenPlanner_Go/internal/harvest"
	"github.com/osse101/GardenPlanner_Go/internal/production"
	"github.com/osse101/GardenPlanner_Go/internal/valuation"
)

// Request is everything one planner run depends on. The same request always
// produces the same report.
type Request struct {
	SaveCode string              `json:"save_code" validate:"required,max=4096"`
	Harvest  harvest.Options     `json:"harvest"`
	Options  []domain.CropOption `json:"options,omitempty" validate:"max=30,dive"`
	Strategy production.Strategy `json:"strategy"`
	// Crafter overrides the default crafter settings
	Crafter *crafter.Settings `json:"crafter,omitempty"`
	// OpenPool fixes the open strategy's pool instead of deriving it
	OpenPool *OpenPool `json:"open_pool,omitempty"`
}

// OpenPool sizes the shared crafter pool
type OpenPool struct {
	Seeders int `json:"seeders" validate:"min=0,max=30"`
	Jars    int `json:"jars" validate:"min=0,max=30"`
}

// settings returns the production settings the request asks for
func (r Request) settings() production.Settings {
	s := production.DefaultSettings()
	s.Strategy = r.Strategy
	if r.Crafter != nil {
		s.Crafter = *r.Crafter
	}
	return s
}

// SimulateReport is a harvest run over a decoded layout
type SimulateReport struct {
	SaveCode string          `json:"save_code"`
	Summary  garden.Summary  `json:"summary"`
	Harvest  *harvest.Result `json:"harvest"`
}

// ProduceReport is a production run fed by a harvest run
type ProduceReport struct {
	SaveCode   string             `json:"save_code"`
	Harvest    *harvest.Result    `json:"harvest"`
	Production *production.Report `json:"production"`
	Ledger     []domain.DayLedger `json:"ledger"`
}

// ValueReport is a harvest log valued in gold
type ValueReport struct {
	SaveCode   string               `json:"save_code"`
	Valuation  *valuation.Valuation `json:"valuation"`
	Remainders []valuation.Entry    `json:"remainders"`
}

// NormalizeReport is a save code rewritten in the current version
type NormalizeReport struct {
	SaveCode      string         `json:"save_code"`
	SourceVersion string         `json:"source_version"`
	Upgraded      bool           `json:"upgraded"`
	Summary       garden.Summary `json:"summary"`
}

// CompareEntry is one layout's outcome in a batch
type CompareEntry struct {
	Index      int    `json:"index"`
	SaveCode   string `json:"save_code,omitempty"`
	TotalValue int    `json:"total_value"`
	Days       int    `json:"days"`
	Crafters   int    `json:"crafters"`
	Error      string `json:"error,omitempty"`
}

// CompareReport ranks a batch of layouts by total gold. Best is -1 when every
// layout failed.
type CompareReport struct {
	Entries []CompareEntry `json:"entries"`
	Best    int            `json:"best"`
}
