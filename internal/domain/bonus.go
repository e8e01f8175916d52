package domain

// Bonus is an effect a tile can receive from neighbours or fertiliser
type Bonus string

const (
	BonusNone    Bonus = "none"
	BonusSpeed   Bonus = "speed"
	BonusQuality Bonus = "quality"
	BonusHarvest Bonus = "harvest"
	BonusWater   Bonus = "water"
	BonusWeed    Bonus = "weed"
)

// AllBonuses lists every real bonus in a fixed order. Iterating bonus sets
// through this slice keeps output deterministic.
var AllBonuses = []Bonus{BonusSpeed, BonusQuality, BonusHarvest, BonusWater, BonusWeed}

// IsValid reports whether b is a known bonus kind
func (b Bonus) IsValid() bool {
	switch b {
	case BonusNone, BonusSpeed, BonusQuality, BonusHarvest, BonusWater, BonusWeed:
		return true
	}
	return false
}

// BonusSet is a small set of bonuses keyed by kind
type BonusSet map[Bonus]bool

// Has reports whether the set contains b
func (s BonusSet) Has(b Bonus) bool {
	return s[b]
}

// Add inserts b, ignoring BonusNone
func (s BonusSet) Add(b Bonus) {
	if b == "" || b == BonusNone {
		return
	}
	s[b] = true
}

// Sorted returns the bonuses in AllBonuses order
func (s BonusSet) Sorted() []Bonus {
	out := make([]Bonus, 0, len(s))
	for _, b := range AllBonuses {
		if s[b] {
			out = append(out, b)
		}
	}
	return out
}

// Clone returns an independent copy
func (s BonusSet) Clone() BonusSet {
	out := make(BonusSet, len(s))
	for b, ok := range s {
		if ok {
			out[b] = true
		}
	}
	return out
}
