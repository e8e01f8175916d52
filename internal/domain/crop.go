package domain

// CropKind identifies a crop in the catalog (e.g. "tomato")
type CropKind string

// CropNone marks an empty tile
const CropNone CropKind = ""

// FertiliserKind identifies a fertiliser in the catalog (e.g. "quality_up")
type FertiliserKind string

// FertiliserNone marks an unfertilised tile
const FertiliserNone FertiliserKind = ""

// Footprint sizes: the side length of the square a crop occupies
const (
	FootprintSingle = 1
	FootprintBush   = 2
	FootprintTree   = 3
)

// Prices holds the gold value of one unit, normal and star quality
type Prices struct {
	Base int `json:"base" jsonschema:"minimum=0"`
	Star int `json:"star" jsonschema:"minimum=0"`
}

// For returns the price for the given quality
func (p Prices) For(star bool) int {
	if star {
		return p.Star
	}
	return p.Base
}

// Crop is an immutable catalog entry.
// Invariants (checked by the catalog loader): WithBonus >= Base, ReharvestLimit >= 0,
// conversion ratios >= 1.
type Crop struct {
	Kind      CropKind `json:"kind"`
	Name      string   `json:"name,omitempty"`
	Footprint int      `json:"footprint" jsonschema:"minimum=1,maximum=3"`
	Bonus     Bonus    `json:"bonus" jsonschema:"enum=none,enum=speed,enum=quality,enum=harvest,enum=water,enum=weed"`

	Base              int `json:"base" jsonschema:"minimum=0"`
	WithBonus         int `json:"with_bonus" jsonschema:"minimum=0"`
	GrowthDays        int `json:"growth_days" jsonschema:"minimum=1"`
	ReharvestCooldown int `json:"reharvest_cooldown" jsonschema:"minimum=0"`
	ReharvestLimit    int `json:"reharvest_limit" jsonschema:"minimum=0"`

	CropPrice     Prices `json:"crop_price"`
	SeedPrice     Prices `json:"seed_price"`
	PreservePrice Prices `json:"preserve_price"`

	CropsPerSeed       int `json:"crops_per_seed" jsonschema:"minimum=1"`
	SeedsPerConversion int `json:"seeds_per_conversion" jsonschema:"minimum=1"`
	SeedMinutes        int `json:"seed_minutes" jsonschema:"minimum=0"`
	CropsPerPreserve   int `json:"crops_per_preserve" jsonschema:"minimum=1"`
	PreserveMinutes    int `json:"preserve_minutes" jsonschema:"minimum=0"`
}

// TileCount is the number of tiles the crop occupies (1, 4 or 9)
func (c Crop) TileCount() int {
	return c.Footprint * c.Footprint
}

// CycleDays is the length of one full growth cycle before replanting
func (c Crop) CycleDays() int {
	return c.GrowthDays + c.ReharvestCooldown*c.ReharvestLimit
}

// Fertiliser is an immutable catalog entry mapping to exactly one bonus
type Fertiliser struct {
	Kind  FertiliserKind `json:"kind"`
	Name  string         `json:"name,omitempty"`
	Bonus Bonus          `json:"bonus"`
}
