package garden

import (
	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// north, south, east, west as (row, col) steps
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// PlantedTile is one footprint as the harvest simulator sees it: the crop
// definition and the bonuses active on the footprint.
type PlantedTile struct {
	Plot        int
	Row         int
	Col         int
	FootprintID int
	Crop        domain.Crop
	Bonuses     domain.BonusSet
}

// RecomputeBonuses refreshes Received and Active on every tile.
//
// Pass 1 collects, per tile, its fertiliser's bonus and the innate bonus of
// every orthogonal neighbour growing a different crop. Pass 2 turns received
// bonuses into active ones: single tiles keep them all, while bushes and trees
// apply a bonus to the whole footprint only when enough of their tiles
// received it.
func (g *Garden) RecomputeBonuses() {
	for p := range g.plots {
		for r := 0; r < PlotSize; r++ {
			for c := 0; c < PlotSize; c++ {
				g.plots[p].Tiles[r][c].Received = g.received(p, r, c)
			}
		}
	}

	groups := make(map[int][]tileRef)
	for p := range g.plots {
		for r := 0; r < PlotSize; r++ {
			for c := 0; c < PlotSize; c++ {
				t := &g.plots[p].Tiles[r][c]
				if t.FootprintID != 0 && g.footprintSize(t.Crop) > 1 {
					groups[t.FootprintID] = append(groups[t.FootprintID], tileRef{plot: p, row: r, col: c})
					continue
				}
				if t.Received != nil {
					t.Active = t.Received.Clone()
				} else {
					t.Active = nil
				}
			}
		}
	}

	for _, refs := range groups {
		first := g.tile(refs[0])
		threshold := bushThreshold
		if g.footprintSize(first.Crop) == domain.FootprintTree {
			threshold = treeThreshold
		}

		counts := make(map[domain.Bonus]int)
		for _, ref := range refs {
			for b := range g.tile(ref).Received {
				counts[b]++
			}
		}
		active := domain.BonusSet{}
		for b, n := range counts {
			if n >= threshold {
				active.Add(b)
			}
		}
		for _, ref := range refs {
			g.tile(ref).Active = active.Clone()
		}
	}

	g.dirty = false
}

// received computes pass 1 for one tile. Tiles on inactive plots receive nothing.
func (g *Garden) received(p, r, c int) domain.BonusSet {
	if !g.plots[p].Active {
		return nil
	}
	t := &g.plots[p].Tiles[r][c]
	set := domain.BonusSet{}

	if t.Fertiliser != domain.FertiliserNone {
		if f, ok := g.catalog.LookupFertiliser(t.Fertiliser); ok {
			set.Add(f.Bonus)
		}
	}

	for _, o := range neighborOffsets {
		ref, ok := g.offset(p, r, c, o[0], o[1])
		if !ok {
			continue
		}
		n := g.tile(ref)
		if n.Crop == domain.CropNone || n.Crop == t.Crop {
			continue
		}
		if crop, ok := g.catalog.LookupCrop(n.Crop); ok {
			set.Add(crop.Bonus)
		}
	}
	return set
}

func (g *Garden) footprintSize(kind domain.CropKind) int {
	if kind == domain.CropNone {
		return 0
	}
	crop, ok := g.catalog.LookupCrop(kind)
	if !ok {
		return domain.FootprintSingle
	}
	return crop.Footprint
}

// CroppedTiles returns one entry per placed footprint in plot, row, col order,
// taken from the footprint's first tile in that order. Bonuses are recomputed
// first if the garden changed since the last pass.
func (g *Garden) CroppedTiles() []PlantedTile {
	if g.dirty {
		g.RecomputeBonuses()
	}

	seen := make(map[int]bool)
	var out []PlantedTile
	for p := range g.plots {
		if !g.plots[p].Active {
			continue
		}
		for r := 0; r < PlotSize; r++ {
			for c := 0; c < PlotSize; c++ {
				t := g.plots[p].Tiles[r][c]
				if t.IsEmpty() || seen[t.FootprintID] {
					continue
				}
				seen[t.FootprintID] = true

				crop, ok := g.catalog.LookupCrop(t.Crop)
				if !ok {
					continue
				}
				out = append(out, PlantedTile{
					Plot:        p,
					Row:         r,
					Col:         c,
					FootprintID: t.FootprintID,
					Crop:        crop,
					Bonuses:     t.Active.Clone(),
				})
			}
		}
	}
	return out
}
