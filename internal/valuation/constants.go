package valuation

// Error format strings
const (
	ErrFmtUnknownCrop = "%w: day %d: %s"
	ErrFmtBadProduct  = "%w: %s (star=%t): product %q"
	ErrFmtDayOrder    = "%w: day %d follows day %d"
)
