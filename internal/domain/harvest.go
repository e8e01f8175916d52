package domain

import "sort"

// Yield is a quantity of produce split by quality. Values may be negative
// when a replant cost outweighs the day's harvest.
type Yield struct {
	Base int `json:"base"`
	Star int `json:"star"`
}

// Add returns the sum of two yields
func (y Yield) Add(o Yield) Yield {
	return Yield{Base: y.Base + o.Base, Star: y.Star + o.Star}
}

// Total is Base + Star
func (y Yield) Total() int {
	return y.Base + y.Star
}

// IsZero reports whether both quantities are zero
func (y Yield) IsZero() bool {
	return y.Base == 0 && y.Star == 0
}

// Get returns the quantity of the given quality
func (y Yield) Get(star bool) int {
	if star {
		return y.Star
	}
	return y.Base
}

// Inventory maps crops to produced quantities
type Inventory map[CropKind]Yield

// Add accumulates y into crop's entry
func (inv Inventory) Add(crop CropKind, y Yield) {
	inv[crop] = inv[crop].Add(y)
}

// Crops returns the inventory's crop kinds in sorted order
func (inv Inventory) Crops() []CropKind {
	kinds := make([]CropKind, 0, len(inv))
	for k := range inv {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Clone returns an independent copy
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

// HarvestRecord is one simulated day's produce
type HarvestRecord struct {
	Day     int       `json:"day"`
	Crops   Inventory `json:"crops"`
	Replant Inventory `json:"replant,omitempty"`
}
