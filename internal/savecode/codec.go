package savecode

import (
	"fmt"
	"strings"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
)

const (
	sectionSep = "_"
	partSep    = "-"
	fertSep    = "."
	dimTag     = "DIM"
	cropsTag   = "CROPS"
)

const tilesPerPlot = garden.PlotSize * garden.PlotSize

// Error format strings
const (
	ErrFmtSections    = "%w: want 3 '_' separated sections, got %d"
	ErrFmtVersion     = "%w: unsupported version %q"
	ErrFmtSectionTag  = "%w: section %q must start with %s"
	ErrFmtDimDigit    = "%w: layout row %d has digit %q"
	ErrFmtDimRagged   = "%w: layout row %d has %d plots, want %d"
	ErrFmtPlotCount   = "%w: %d plot runs for %d active plots"
	ErrFmtTileCode    = "%w: plot run %d: bad tile code at %q"
	ErrFmtUnknownCode = "%w: plot run %d: unknown %s code %q"
	ErrFmtTileCount   = "%w: plot run %d has %d tiles, want %d"
	ErrFmtPlacement   = "%w: plot run %d tile %d: %w"
	ErrFmtFootprint   = "%w: plot run %d tile %d: code %s disagrees with its footprint"
	ErrFmtEncodeCrop  = "%w: no save code for crop %s"
	ErrFmtEncodeFert  = "%w: no save code for fertiliser %s"
)

type tileCode struct {
	crop domain.CropKind
	code string
	fert domain.FertiliserKind
}

// Codec converts between gardens and save codes
type Codec struct {
	catalog catalog.Catalog
}

// NewCodec creates a codec placing crops from cat
func NewCodec(cat catalog.Catalog) *Codec {
	return &Codec{catalog: cat}
}

// Version returns the version tag of a save code without decoding it
func Version(code string) (string, error) {
	version, _, _ := strings.Cut(code, sectionSep)
	if _, ok := alphabets[version]; !ok {
		return "", fmt.Errorf(ErrFmtVersion, domain.ErrInvalidSaveFormat, version)
	}
	return version, nil
}

// Decode parses a save code of any supported version into a new garden.
// Malformed codes fail with domain.ErrInvalidSaveFormat and produce nothing.
func (c *Codec) Decode(code string) (*garden.Garden, error) {
	sections := strings.Split(strings.TrimSpace(code), sectionSep)
	if len(sections) != 3 {
		return nil, fmt.Errorf(ErrFmtSections, domain.ErrInvalidSaveFormat, len(sections))
	}

	a, ok := alphabets[sections[0]]
	if !ok {
		return nil, fmt.Errorf(ErrFmtVersion, domain.ErrInvalidSaveFormat, sections[0])
	}

	layout, err := parseDim(sections[1])
	if err != nil {
		return nil, err
	}

	runs, err := splitTagged(sections[2], cropsTag)
	if err != nil {
		return nil, err
	}

	g, err := garden.New(layout, c.catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSaveFormat, err)
	}

	active := g.ActivePlots()
	if len(runs) != len(active) {
		return nil, fmt.Errorf(ErrFmtPlotCount, domain.ErrInvalidSaveFormat, len(runs), len(active))
	}

	plots := make([][]tileCode, len(runs))
	for i, run := range runs {
		if plots[i], err = a.parseRun(i, run); err != nil {
			return nil, err
		}
	}

	if err := c.fill(g, active, plots); err != nil {
		return nil, err
	}
	return g, nil
}

// fill plants every run into g. Crops are anchored at the first tile of
// theirs met in plot, row, col order; later tiles of the same footprint must
// repeat the crop's code.
func (c *Codec) fill(g *garden.Garden, active []int, plots [][]tileCode) error {
	for i, plot := range active {
		for t, tc := range plots[i] {
			row, col := t/garden.PlotSize, t%garden.PlotSize
			if tc.fert != domain.FertiliserNone {
				if err := g.SetFertiliser(plot, row, col, tc.fert); err != nil {
					return fmt.Errorf(ErrFmtPlacement, domain.ErrInvalidSaveFormat, i, t, err)
				}
			}
			if tc.crop == domain.CropNone {
				continue
			}
			tile, err := g.Tile(plot, row, col)
			if err != nil {
				return fmt.Errorf(ErrFmtPlacement, domain.ErrInvalidSaveFormat, i, t, err)
			}
			if !tile.IsEmpty() {
				if tile.Crop != tc.crop {
					return fmt.Errorf(ErrFmtFootprint, domain.ErrInvalidSaveFormat, i, t, tc.code)
				}
				continue
			}
			if err := g.PlaceCrop(plot, row, col, tc.crop); err != nil {
				return fmt.Errorf(ErrFmtPlacement, domain.ErrInvalidSaveFormat, i, t, err)
			}
		}
	}

	// A footprint may not cover a tile the code left empty
	for i, plot := range active {
		for t, tc := range plots[i] {
			tile, err := g.Tile(plot, t/garden.PlotSize, t%garden.PlotSize)
			if err != nil {
				return fmt.Errorf(ErrFmtPlacement, domain.ErrInvalidSaveFormat, i, t, err)
			}
			if tile.Crop != tc.crop {
				return fmt.Errorf(ErrFmtFootprint, domain.ErrInvalidSaveFormat, i, t, tc.code)
			}
		}
	}
	return nil
}

// Encode writes g as a current-version save code
func (c *Codec) Encode(g *garden.Garden) (string, error) {
	a := currentAlphabet

	var b strings.Builder
	b.WriteString(a.version)
	b.WriteString(sectionSep)
	b.WriteString(dimTag)
	for _, row := range g.Layout() {
		b.WriteString(partSep)
		for _, active := range row {
			if active {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}

	b.WriteString(sectionSep)
	b.WriteString(cropsTag)
	for _, plot := range g.ActivePlots() {
		b.WriteString(partSep)
		for r := 0; r < garden.PlotSize; r++ {
			for col := 0; col < garden.PlotSize; col++ {
				tile, err := g.Tile(plot, r, col)
				if err != nil {
					return "", err
				}
				code, ok := a.cropCodes[tile.Crop]
				if !ok {
					return "", fmt.Errorf(ErrFmtEncodeCrop, domain.ErrUnknownCrop, tile.Crop)
				}
				b.WriteString(code)
				if tile.Fertiliser != domain.FertiliserNone {
					fert, ok := a.fertCodes[tile.Fertiliser]
					if !ok {
						return "", fmt.Errorf(ErrFmtEncodeFert, domain.ErrUnknownFertiliser, tile.Fertiliser)
					}
					b.WriteString(fertSep)
					b.WriteString(fert)
				}
			}
		}
	}
	return b.String(), nil
}

// Normalize decodes code and re-encodes it in the current version
func (c *Codec) Normalize(code string) (string, error) {
	g, err := c.Decode(code)
	if err != nil {
		return "", err
	}
	return c.Encode(g)
}

// parseDim reads "DIM-<row>-<row>..." into an activity layout
func parseDim(section string) ([][]bool, error) {
	rows, err := splitTagged(section, dimTag)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf(ErrFmtSectionTag, domain.ErrInvalidSaveFormat, section, dimTag)
	}

	layout := make([][]bool, len(rows))
	for r, row := range rows {
		if len(row) != len(rows[0]) || len(row) == 0 {
			return nil, fmt.Errorf(ErrFmtDimRagged, domain.ErrInvalidSaveFormat, r, len(row), len(rows[0]))
		}
		layout[r] = make([]bool, len(row))
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '1':
				layout[r][c] = true
			case '0':
			default:
				return nil, fmt.Errorf(ErrFmtDimDigit, domain.ErrInvalidSaveFormat, r, string(row[c]))
			}
		}
	}
	return layout, nil
}

// splitTagged checks a section's tag and returns its '-' separated parts
func splitTagged(section, tag string) ([]string, error) {
	if section == tag {
		return nil, nil
	}
	body, ok := strings.CutPrefix(section, tag+partSep)
	if !ok {
		return nil, fmt.Errorf(ErrFmtSectionTag, domain.ErrInvalidSaveFormat, section, tag)
	}
	if body == "" {
		return nil, nil
	}
	return strings.Split(body, partSep), nil
}

// parseRun tokenizes one plot's nine tile codes
func (a *alphabet) parseRun(index int, run string) ([]tileCode, error) {
	tiles := make([]tileCode, 0, tilesPerPlot)
	for rest := run; rest != ""; {
		code, ok := scanCrop(rest)
		if !ok {
			return nil, fmt.Errorf(ErrFmtTileCode, domain.ErrInvalidSaveFormat, index, rest)
		}
		kind, ok := a.crops[code]
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownCode, domain.ErrInvalidSaveFormat, index, "crop", code)
		}
		rest = rest[len(code):]

		tc := tileCode{crop: kind, code: code}
		if after, found := strings.CutPrefix(rest, fertSep); found {
			fcode, ok := a.scanFert(after)
			if !ok {
				return nil, fmt.Errorf(ErrFmtTileCode, domain.ErrInvalidSaveFormat, index, rest)
			}
			fert, ok := a.ferts[fcode]
			if !ok {
				return nil, fmt.Errorf(ErrFmtUnknownCode, domain.ErrInvalidSaveFormat, index, "fertiliser", fcode)
			}
			tc.fert = fert
			rest = after[len(fcode):]
		}
		tiles = append(tiles, tc)
	}

	if len(tiles) != tilesPerPlot {
		return nil, fmt.Errorf(ErrFmtTileCount, domain.ErrInvalidSaveFormat, index, len(tiles), tilesPerPlot)
	}
	return tiles, nil
}
