package harvest

// MaxDays is the safety ceiling on any simulated horizon
const MaxDays = 1000

// Star chance, in percent
const (
	baseStarChance     = 25
	starSeedBonus      = 25
	qualityBonusChance = 25
	starChancePerLevel = 2
	maxStarChance      = 100
	percent            = 100
)

// Speed bonus: growth and cooldown shrink to ceil(x * 2 / 3)
const (
	speedNum = 2
	speedDen = 3
)

// Error format strings
const (
	ErrFmtHorizonTooLong = "%w: horizon of %d days exceeds %d"
	ErrFmtNegativeDays   = "%w: negative horizon %d"
	ErrFmtNegativeLevel  = "%w: negative level %d"
)
