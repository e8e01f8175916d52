package production

// MaxCrafters is the roster cap shared by both strategies
const MaxCrafters = 30

// MaxDays bounds a run, matching the harvest simulator's ceiling
const MaxDays = 1000

// Error format strings
const (
	ErrFmtCap             = "%w: roster holds %d crafters"
	ErrFmtNilResult       = "%w: no harvest result"
	ErrFmtNilSink         = "%w: no sink"
	ErrFmtHopperNotEmpty  = "%w: crafter %d starts the run with %d items queued"
	ErrFmtRunTooLong      = "%w: production still running after %d days"
	ErrFmtUnknownCrop     = "%w: option %d: %s"
	ErrFmtBadProduct      = "%w: option %d: product %q"
	ErrFmtNegativeCount   = "%w: option %d: %d crafters"
	ErrFmtDuplicateOption = "%w: option %d repeats %s (star=%t)"
	ErrFmtBadStrategy     = "%w: strategy %q"
	ErrFmtNegativeOpen    = "%w: open pool of %d seeders and %d jars"
)
