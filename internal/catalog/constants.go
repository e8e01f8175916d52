package catalog

// ==================== Configuration File Names ====================

// Catalog configuration file names
const (
	// ConfigFileName is the name of the catalog override file
	ConfigFileName = "catalog.json"

	// SchemaName is the resource name the generated schema is compiled under
	SchemaName = "catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog: %w"
	ErrMsgSchemaFailed         = "failed to generate catalog schema: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "catalog is nil"
	ErrMsgNoCropsDefined = "no crops defined"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtCropAtIndexEmpty      = "%w: crop at index %d has empty kind"
	ErrFmtFertAtIndexEmpty      = "%w: fertiliser at index %d has empty kind"
	ErrFmtCropBadFootprint      = "%w: crop '%s' has footprint %d, want 1, 2 or 3"
	ErrFmtCropBadBonus          = "%w: crop '%s' has unknown bonus %q"
	ErrFmtCropNegativeYield     = "%w: crop '%s' has negative base"
	ErrFmtCropBonusBelowBase    = "%w: crop '%s' has with_bonus %d below base %d"
	ErrFmtCropNegativeLimit     = "%w: crop '%s' has negative reharvest_limit"
	ErrFmtCropNegativeCooldown  = "%w: crop '%s' has negative reharvest_cooldown"
	ErrFmtCropNoCooldown        = "%w: crop '%s' reharvests with zero cooldown"
	ErrFmtCropBadGrowth         = "%w: crop '%s' has growth_days below 1"
	ErrFmtCropBadRatio          = "%w: crop '%s' has %s below 1"
	ErrFmtFertBadBonus          = "%w: fertiliser '%s' has invalid bonus %q"
	ErrFmtDuplicateCrop         = "%w: '%s'"
	ErrFmtDuplicateFertiliser   = "%w: '%s'"
	ErrFmtNoMatch               = "%w: %q"
	ErrFmtNoMatchSuggest        = "%w: %q (did you mean %q?)"
	ErrFmtAmbiguousMatch        = "%w: %q matches %q and %q"
	ErrFmtUnknownFertiliserKind = "%w: %s"
)
