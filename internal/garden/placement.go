package garden

import (
	"fmt"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

type tileRef struct {
	plot, row, col int
}

// offset walks dr tiles south and dc tiles east of (plot, row, col), following
// plot adjacency across edges. Negative offsets walk north and west.
func (g *Garden) offset(plot, row, col, dr, dc int) (tileRef, bool) {
	p, r, c := plot, row+dr, col+dc
	step := func(d Direction) bool {
		next, ok := g.plots[p].Neighbor(d)
		if !ok || !g.plots[next].Active {
			return false
		}
		p = next
		return true
	}
	for ; r >= PlotSize; r -= PlotSize {
		if !step(South) {
			return tileRef{}, false
		}
	}
	for ; r < 0; r += PlotSize {
		if !step(North) {
			return tileRef{}, false
		}
	}
	for ; c >= PlotSize; c -= PlotSize {
		if !step(East) {
			return tileRef{}, false
		}
	}
	for ; c < 0; c += PlotSize {
		if !step(West) {
			return tileRef{}, false
		}
	}
	return tileRef{plot: p, row: r, col: c}, true
}

func (g *Garden) tile(ref tileRef) *Tile {
	return &g.plots[ref.plot].Tiles[ref.row][ref.col]
}

// footprint resolves every tile a crop of the given size would cover when
// anchored at (plot, row, col).
func (g *Garden) footprint(plot, row, col, size int) ([]tileRef, bool) {
	refs := make([]tileRef, 0, size*size)
	for dr := 0; dr < size; dr++ {
		for dc := 0; dc < size; dc++ {
			ref, ok := g.offset(plot, row, col, dr, dc)
			if !ok {
				return nil, false
			}
			refs = append(refs, ref)
		}
	}
	return refs, true
}

// PlaceCrop plants kind with its footprint's top-left tile at (plot, row, col).
// Bushes and trees extend east and south, possibly into neighbouring plots.
// If any covered tile is occupied or lies on a missing or inactive plot the
// call fails with domain.ErrInvalidPlacement and the garden is unchanged.
func (g *Garden) PlaceCrop(plot, row, col int, kind domain.CropKind) error {
	if err := g.checkTile(plot, row, col); err != nil {
		return err
	}
	if kind == domain.CropNone {
		return fmt.Errorf(ErrFmtNoCrop, domain.ErrInvalidInput)
	}
	crop, ok := g.catalog.LookupCrop(kind)
	if !ok {
		return fmt.Errorf(ErrFmtUnknownCrop, domain.ErrUnknownCrop, kind)
	}
	if !g.plots[plot].Active {
		return fmt.Errorf(ErrFmtPlotInactive, domain.ErrInvalidPlacement, plot)
	}

	refs, ok := g.footprint(plot, row, col, crop.Footprint)
	if !ok {
		return fmt.Errorf(ErrFmtNoRoom, domain.ErrInvalidPlacement, kind, plot, row, col)
	}
	for _, ref := range refs {
		if t := g.tile(ref); !t.IsEmpty() {
			return fmt.Errorf(ErrFmtTileOccupied, domain.ErrInvalidPlacement, ref.plot, ref.row, ref.col, t.Crop)
		}
	}

	g.nextID++
	for _, ref := range refs {
		t := g.tile(ref)
		t.Crop = kind
		t.FootprintID = g.nextID
	}
	g.dirty = true
	return nil
}

// RemoveCrop clears the crop at (plot, row, col) together with every other
// tile of its footprint. Removing from an empty tile is a no-op.
func (g *Garden) RemoveCrop(plot, row, col int) error {
	if err := g.checkTile(plot, row, col); err != nil {
		return err
	}
	if id := g.plots[plot].Tiles[row][col].FootprintID; id != 0 {
		g.removeFootprint(id)
		g.dirty = true
	}
	return nil
}

// removeFootprint clears every tile tagged id, across all plots
func (g *Garden) removeFootprint(id int) {
	for p := range g.plots {
		for r := 0; r < PlotSize; r++ {
			for c := 0; c < PlotSize; c++ {
				if t := &g.plots[p].Tiles[r][c]; t.FootprintID == id {
					t.Crop = domain.CropNone
					t.FootprintID = 0
				}
			}
		}
	}
}

// SetFertiliser sets or, with domain.FertiliserNone, clears a tile's fertiliser
func (g *Garden) SetFertiliser(plot, row, col int, kind domain.FertiliserKind) error {
	if err := g.checkTile(plot, row, col); err != nil {
		return err
	}
	if !g.plots[plot].Active {
		return fmt.Errorf(ErrFmtPlotInactive, domain.ErrInvalidPlacement, plot)
	}
	if kind != domain.FertiliserNone {
		if _, ok := g.catalog.LookupFertiliser(kind); !ok {
			return fmt.Errorf(ErrFmtUnknownFert, domain.ErrUnknownFertiliser, kind)
		}
	}
	g.plots[plot].Tiles[row][col].Fertiliser = kind
	g.dirty = true
	return nil
}

// Clear empties every tile of every plot
func (g *Garden) Clear() {
	for p := range g.plots {
		g.plots[p].Tiles = [PlotSize][PlotSize]Tile{}
	}
	g.dirty = true
}
