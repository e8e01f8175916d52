package crafter

// OutputSlots is the number of stacks a crafter's output buffer holds
const OutputSlots = 3

// MinutesPerDay converts simulated days into crafter wall-clock minutes
const MinutesPerDay = 60

// Seeder byproduct: round(seeds * 5 / 100) plain seeds
const (
	byproductPercent = 5
	percent          = 100
)

// Defaults for Settings
const (
	DefaultHopperSlots    = 1
	DefaultMaxStack       = 30
	DefaultOutputMaxStack = 99
)

// Error format strings
const (
	ErrFmtNegativeInsert = "%w: crafter %d: insert of %d %s"
	ErrFmtNegativeHopper = "%w: crafter %d: hopper holds %d %s"
	ErrFmtUnknownCrop    = "%w: crafter %d: %s"
	ErrFmtBadKind        = "%w: crafter kind %d"
)
