package garden

// PlotSize is the side length of a plot in tiles
const PlotSize = 3

// NoPlot marks a missing adjacency entry
const NoPlot = -1

// Majority thresholds: how many footprint tiles must receive a bonus for it
// to apply to the whole footprint.
const (
	bushThreshold = 2
	treeThreshold = 3
)

// Direction is one of the four orthogonal plot neighbours
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return "unknown"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Error format strings
const (
	ErrFmtPlotIndex    = "%w: plot %d"
	ErrFmtTileIndex    = "%w: tile (%d,%d) outside plot"
	ErrFmtLayoutEmpty  = "%w: layout has no rows"
	ErrFmtLayoutRagged = "%w: layout row %d has %d plots, want %d"
	ErrFmtPlotInactive = "%w: plot %d is inactive"
	ErrFmtNoRoom       = "%w: %s does not fit at plot %d tile (%d,%d)"
	ErrFmtTileOccupied = "%w: tile (%d,%d,%d) already holds %s"
	ErrFmtNoCrop       = "%w: crop kind is empty"
	ErrFmtUnknownCrop  = "%w: %s"
	ErrFmtUnknownFert  = "%w: %s"
	ErrFmtBadDirection = "%w: direction %d"
)
