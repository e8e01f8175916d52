package domain

import "fmt"

// ItemKind is the form a crop-derived item takes
type ItemKind string

const (
	ItemCrop     ItemKind = "crop"
	ItemSeed     ItemKind = "seed"
	ItemPreserve ItemKind = "preserve"
)

// Stack is a value record of stackable items. Two stacks hold the same item
// when Name and Star match. MaxStack <= 0 means unbounded.
type Stack struct {
	Name     string   `json:"name"`
	Star     bool     `json:"star"`
	Kind     ItemKind `json:"kind"`
	Crop     CropKind `json:"crop"`
	Count    int      `json:"count"`
	MaxStack int      `json:"max_stack,omitempty"`
}

// NewStack builds a crop-derived stack named after its crop and kind
func NewStack(crop CropKind, kind ItemKind, star bool, count, maxStack int) Stack {
	return Stack{
		Name:     ItemName(crop, kind),
		Star:     star,
		Kind:     kind,
		Crop:     crop,
		Count:    count,
		MaxStack: maxStack,
	}
}

// ItemName is the canonical item name for a crop-derived item
func ItemName(crop CropKind, kind ItemKind) string {
	if kind == ItemCrop {
		return string(crop)
	}
	return fmt.Sprintf("%s_%s", crop, kind)
}

// SameItem reports whether s and o are the same item (ignoring counts)
func (s Stack) SameItem(o Stack) bool {
	return s.Name == o.Name && s.Star == o.Star
}

// WithCount returns a copy of s holding n items
func (s Stack) WithCount(n int) Stack {
	s.Count = n
	return s
}

// Space returns how many more items fit on s. ok is false when unbounded.
func (s Stack) Space() (space int, ok bool) {
	if s.MaxStack <= 0 {
		return 0, false
	}
	if s.Count >= s.MaxStack {
		return 0, true
	}
	return s.MaxStack - s.Count, true
}

// Split divides s into a stack of at most n items and the remainder
func Split(s Stack, n int) (taken, rest Stack) {
	if n > s.Count {
		n = s.Count
	}
	if n < 0 {
		n = 0
	}
	return s.WithCount(n), s.WithCount(s.Count - n)
}

// Merge adds src onto dst up to dst's stack limit and returns both results
func Merge(dst, src Stack) (merged, leftover Stack) {
	if !dst.SameItem(src) {
		return dst, src
	}
	space, bounded := dst.Space()
	if !bounded {
		return dst.WithCount(dst.Count + src.Count), src.WithCount(0)
	}
	moved, rest := Split(src, space)
	return dst.WithCount(dst.Count + moved.Count), rest
}

// TotalCount sums the counts of the given stacks
func TotalCount(stacks []Stack) int {
	total := 0
	for _, s := range stacks {
		total += s.Count
	}
	return total
}
