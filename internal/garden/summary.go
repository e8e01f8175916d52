package garden

import "github.com/osse101/GardenPlanner_Go/internal/domain"

// Summary counts what a garden holds. BonusCoverage counts planted tiles on
// which each bonus is active.
type Summary struct {
	Plots         int                           `json:"plots"`
	ActivePlots   int                           `json:"active_plots"`
	Footprints    int                           `json:"footprints"`
	TilesUsed     int                           `json:"tiles_used"`
	Crops         map[domain.CropKind]int       `json:"crops"`
	Fertilisers   map[domain.FertiliserKind]int `json:"fertilisers"`
	BonusCoverage map[domain.Bonus]int          `json:"bonus_coverage"`
}

// Summarize counts footprints per crop, fertilised tiles per fertiliser and
// planted tiles per active bonus.
func (g *Garden) Summarize() Summary {
	if g.dirty {
		g.RecomputeBonuses()
	}

	s := Summary{
		Plots:         len(g.plots),
		Crops:         make(map[domain.CropKind]int),
		Fertilisers:   make(map[domain.FertiliserKind]int),
		BonusCoverage: make(map[domain.Bonus]int),
	}
	seen := make(map[int]bool)
	for p := range g.plots {
		if !g.plots[p].Active {
			continue
		}
		s.ActivePlots++
		for r := 0; r < PlotSize; r++ {
			for c := 0; c < PlotSize; c++ {
				t := g.plots[p].Tiles[r][c]
				if t.Fertiliser != domain.FertiliserNone {
					s.Fertilisers[t.Fertiliser]++
				}
				if t.IsEmpty() {
					continue
				}
				s.TilesUsed++
				for b := range t.Active {
					s.BonusCoverage[b]++
				}
				if !seen[t.FootprintID] {
					seen[t.FootprintID] = true
					s.Footprints++
					s.Crops[t.Crop]++
				}
			}
		}
	}
	return s
}
