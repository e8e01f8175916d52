package garden

import (
	"fmt"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// Tile is one cell of a plot. Tiles of one multi-tile placement share a
// non-zero FootprintID.
type Tile struct {
	Crop        domain.CropKind       `json:"crop,omitempty"`
	Fertiliser  domain.FertiliserKind `json:"fertiliser,omitempty"`
	Received    domain.BonusSet       `json:"-"`
	Active      domain.BonusSet       `json:"-"`
	FootprintID int                   `json:"-"`
}

// IsEmpty reports whether the tile holds no crop
func (t Tile) IsEmpty() bool {
	return t.Crop == domain.CropNone
}

func (t Tile) clone() Tile {
	if t.Received != nil {
		t.Received = t.Received.Clone()
	}
	if t.Active != nil {
		t.Active = t.Active.Clone()
	}
	return t
}

// Plot is a 3x3 block of tiles. Adjacent holds arena indices of the
// neighbouring plots, NoPlot where there is none.
type Plot struct {
	Tiles    [PlotSize][PlotSize]Tile
	Active   bool
	Adjacent [4]int
}

// Neighbor returns the adjacent plot index in direction d
func (p *Plot) Neighbor(d Direction) (int, bool) {
	idx := p.Adjacent[d]
	return idx, idx != NoPlot
}

// Garden owns a rectangular arena of plots laid out row-major
type Garden struct {
	rows, cols int
	plots      []Plot
	catalog    catalog.Catalog
	nextID     int
	dirty      bool
}

// New builds a garden from an activity layout (layout[row][col] is true for
// active plots) and links neighbouring active plots.
func New(layout [][]bool, cat catalog.Catalog) (*Garden, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf(ErrFmtLayoutEmpty, domain.ErrInvalidInput)
	}
	cols := len(layout[0])
	for r, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf(ErrFmtLayoutRagged, domain.ErrInvalidInput, r, len(row), cols)
		}
	}

	g := &Garden{
		rows:    len(layout),
		cols:    cols,
		plots:   make([]Plot, len(layout)*cols),
		catalog: cat,
	}
	for r, row := range layout {
		for c, active := range row {
			g.plots[r*cols+c].Active = active
		}
	}
	g.linkPlots()
	return g, nil
}

// linkPlots rebuilds adjacency between active grid neighbours
func (g *Garden) linkPlots() {
	for i := range g.plots {
		g.plots[i].Adjacent = [4]int{NoPlot, NoPlot, NoPlot, NoPlot}
	}
	for i := range g.plots {
		if !g.plots[i].Active {
			continue
		}
		r, c := i/g.cols, i%g.cols
		if c+1 < g.cols && g.plots[i+1].Active {
			g.link(i, East, i+1)
		}
		if r+1 < g.rows && g.plots[i+g.cols].Active {
			g.link(i, South, i+g.cols)
		}
	}
}

func (g *Garden) link(a int, d Direction, b int) {
	g.plots[a].Adjacent[d] = b
	g.plots[b].Adjacent[d.Opposite()] = a
}

// Rows is the number of plot rows
func (g *Garden) Rows() int { return g.rows }

// Cols is the number of plot columns
func (g *Garden) Cols() int { return g.cols }

// PlotCount is the number of plots in the arena, active or not
func (g *Garden) PlotCount() int { return len(g.plots) }

// Layout returns the activity grid the garden was built from
func (g *Garden) Layout() [][]bool {
	out := make([][]bool, g.rows)
	for r := range out {
		out[r] = make([]bool, g.cols)
		for c := range out[r] {
			out[r][c] = g.plots[r*g.cols+c].Active
		}
	}
	return out
}

// ActivePlots lists the arena indices of active plots in order
func (g *Garden) ActivePlots() []int {
	var out []int
	for i := range g.plots {
		if g.plots[i].Active {
			out = append(out, i)
		}
	}
	return out
}

// Plot returns a copy of the plot at index i
func (g *Garden) Plot(i int) (Plot, error) {
	if err := g.checkPlot(i); err != nil {
		return Plot{}, err
	}
	if g.dirty {
		g.RecomputeBonuses()
	}
	p := g.plots[i]
	for r := range p.Tiles {
		for c := range p.Tiles[r] {
			p.Tiles[r][c] = p.Tiles[r][c].clone()
		}
	}
	return p, nil
}

// Tile returns a copy of one tile
func (g *Garden) Tile(plot, row, col int) (Tile, error) {
	if err := g.checkTile(plot, row, col); err != nil {
		return Tile{}, err
	}
	if g.dirty {
		g.RecomputeBonuses()
	}
	return g.plots[plot].Tiles[row][col].clone(), nil
}

// SetAdjacent points plot's neighbour in direction d at other, and other's
// opposite neighbour back at plot. other == NoPlot clears the link.
func (g *Garden) SetAdjacent(plot int, d Direction, other int) error {
	if err := g.checkPlot(plot); err != nil {
		return err
	}
	if d < North || d > West {
		return fmt.Errorf(ErrFmtBadDirection, domain.ErrInvalidInput, int(d))
	}
	if other != NoPlot {
		if err := g.checkPlot(other); err != nil {
			return err
		}
	}
	if old := g.plots[plot].Adjacent[d]; old != NoPlot {
		g.plots[old].Adjacent[d.Opposite()] = NoPlot
	}
	g.plots[plot].Adjacent[d] = NoPlot
	if other != NoPlot {
		if prev := g.plots[other].Adjacent[d.Opposite()]; prev != NoPlot {
			g.plots[prev].Adjacent[d] = NoPlot
		}
		g.link(plot, d, other)
	}
	g.dirty = true
	return nil
}

// SetActive toggles a plot. Deactivating a plot removes every crop with a
// tile on it and clears its fertilisers.
func (g *Garden) SetActive(plot int, active bool) error {
	if err := g.checkPlot(plot); err != nil {
		return err
	}
	if g.plots[plot].Active == active {
		return nil
	}
	if !active {
		for r := 0; r < PlotSize; r++ {
			for c := 0; c < PlotSize; c++ {
				if id := g.plots[plot].Tiles[r][c].FootprintID; id != 0 {
					g.removeFootprint(id)
				}
			}
		}
		g.plots[plot].Tiles = [PlotSize][PlotSize]Tile{}
	}
	g.plots[plot].Active = active
	g.linkPlots()
	g.dirty = true
	return nil
}

func (g *Garden) checkPlot(i int) error {
	if i < 0 || i >= len(g.plots) {
		return fmt.Errorf(ErrFmtPlotIndex, domain.ErrPlotNotFound, i)
	}
	return nil
}

func (g *Garden) checkTile(plot, row, col int) error {
	if err := g.checkPlot(plot); err != nil {
		return err
	}
	if row < 0 || row >= PlotSize || col < 0 || col >= PlotSize {
		return fmt.Errorf(ErrFmtTileIndex, domain.ErrInvalidInput, row, col)
	}
	return nil
}
