package crafter

import (
	"fmt"
	"sort"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/utils"
)

// Settings are fixed for a run and shared by every crafter in it
type Settings struct {
	// MaxHopperSlots is how many distinct stacks the hopper holds
	MaxHopperSlots int `json:"max_hopper_slots" validate:"min=1,max=10"`
	// SoftHopperLimit ignores MaxHopperSlots
	SoftHopperLimit bool `json:"soft_hopper_limit"`
	// UseStackLimit caps hopper stacks at MaxStack and output stacks at OutputMaxStack
	UseStackLimit  bool `json:"use_stack_limit"`
	MaxStack       int  `json:"max_stack" validate:"min=0"`
	OutputMaxStack int  `json:"output_max_stack" validate:"min=0"`
	// SeedByproduct enables the Seeder's plain seed byproduct
	SeedByproduct bool `json:"seed_byproduct"`
}

// DefaultSettings returns a single-slot hopper holding stacks of 30
func DefaultSettings() Settings {
	return Settings{
		MaxHopperSlots: DefaultHopperSlots,
		UseStackLimit:  true,
		MaxStack:       DefaultMaxStack,
		OutputMaxStack: DefaultOutputMaxStack,
		SeedByproduct:  true,
	}
}

func (s Settings) hopperCap() int {
	if !s.UseStackLimit {
		return 0
	}
	return s.MaxStack
}

func (s Settings) outputCap() int {
	if !s.UseStackLimit {
		return 0
	}
	return s.OutputMaxStack
}

// Crafter is a seed maker or preserve jar. Crops go in through Insert, are
// converted by Process and come out through Collect.
type Crafter struct {
	id       int
	kind     Kind
	pin      *domain.OptionKey
	settings Settings
	catalog  catalog.Catalog

	hopper []domain.Stack
	output []domain.Stack

	started     bool
	lastInsert  int
	lifeMinutes int
	busyMinutes int
	gold        int
	conversions int
}

// New creates an empty crafter
func New(id int, kind Kind, settings Settings, cat catalog.Catalog) *Crafter {
	return &Crafter{
		id:       id,
		kind:     kind,
		settings: settings,
		catalog:  cat,
	}
}

// NewDedicated creates a crafter that only accepts one crop quality
func NewDedicated(id int, kind Kind, pin domain.OptionKey, settings Settings, cat catalog.Catalog) *Crafter {
	c := New(id, kind, settings, cat)
	c.pin = &pin
	return c
}

// ID is the crafter's roster number
func (c *Crafter) ID() int { return c.id }

// Kind is the crafter's conversion kind
func (c *Crafter) Kind() Kind { return c.kind }

// Pin returns the crop quality the crafter is dedicated to, if any
func (c *Crafter) Pin() (domain.OptionKey, bool) {
	if c.pin == nil {
		return domain.OptionKey{}, false
	}
	return *c.pin, true
}

// Accepts reports whether the crafter takes stack at all
func (c *Crafter) Accepts(stack domain.Stack) bool {
	if stack.Kind != domain.ItemCrop {
		return false
	}
	if c.pin != nil && (c.pin.Crop != stack.Crop || c.pin.Star != stack.Star) {
		return false
	}
	return true
}

// observeInsert starts the lifetime clock on the first insertion and moves
// it to day * MinutesPerDay when a later day's insertion arrives
func (c *Crafter) observeInsert(day int) {
	if !c.started {
		c.started = true
		c.lastInsert = day
		return
	}
	if day <= c.lastInsert {
		return
	}
	c.lastInsert = day
	c.lifeMinutes = max(c.lifeMinutes, day*MinutesPerDay)
}

// Insert puts as much of stack into the hopper as fits. It tops up matching
// stacks first, then opens new ones while slots remain. complete is true
// when nothing is left over. A stack the crafter does not accept comes back
// whole.
func (c *Crafter) Insert(day int, stack domain.Stack) (leftover domain.Stack, complete bool, err error) {
	if stack.Count < 0 {
		return stack, false, fmt.Errorf(ErrFmtNegativeInsert, domain.ErrCorruptState, c.id, stack.Count, stack.Name)
	}
	if stack.Count == 0 {
		return stack, true, nil
	}
	if !c.Accepts(stack) {
		return stack, false, nil
	}

	c.observeInsert(day)

	hopperCap := c.settings.hopperCap()
	rest := stack
	for i := range c.hopper {
		if rest.Count == 0 {
			break
		}
		if c.hopper[i].SameItem(rest) {
			c.hopper[i], rest = domain.Merge(c.hopper[i], rest)
		}
	}
	for rest.Count > 0 && (c.settings.SoftHopperLimit || len(c.hopper) < c.settings.MaxHopperSlots) {
		slot := rest.WithCount(0)
		slot.MaxStack = hopperCap
		slot, rest = domain.Merge(slot, rest)
		if slot.Count == 0 {
			break
		}
		c.hopper = append(c.hopper, slot)
	}

	rest.MaxStack = stack.MaxStack
	return rest, rest.Count == 0, nil
}

// Process converts whole batches of the first hopper stack holding at least
// one full conversion, as many as the output buffer can take. Later stacks
// wait for a later call and indivisible remainders stay queued. Only
// insertions move the lifetime clock.
func (c *Crafter) Process(day int) error {
	for i, stack := range c.hopper {
		if stack.Count < 0 {
			return fmt.Errorf(ErrFmtNegativeHopper, domain.ErrCorruptState, c.id, stack.Count, stack.Name)
		}
		crop, ok := c.catalog.LookupCrop(stack.Crop)
		if !ok {
			return fmt.Errorf(ErrFmtUnknownCrop, domain.ErrUnknownCrop, c.id, stack.Crop)
		}
		conv := c.kind.conversion(crop)
		if stack.Count < conv.inputs {
			continue
		}

		n := c.batches(stack, crop, conv)
		if n == 0 {
			// output full
			return nil
		}
		for _, out := range c.products(stack, crop, conv, n) {
			c.output = placeAll(c.output, out, c.settings.outputCap())
			c.gold += out.Count * conv.price.For(out.Star)
		}
		c.busyMinutes += n * conv.minutes
		c.conversions += n

		stack.Count -= n * conv.inputs
		if stack.Count == 0 {
			c.hopper = append(c.hopper[:i], c.hopper[i+1:]...)
		} else {
			c.hopper[i] = stack
		}
		return nil
	}
	return nil
}

// batches returns the largest number of conversions of stack whose products
// all fit in the output buffer
func (c *Crafter) batches(stack domain.Stack, crop domain.Crop, conv conversion) int {
	hi := stack.Count / conv.inputs
	if hi == 0 || !c.fits(c.reserve(stack, crop, conv)) || !c.fits(c.products(stack, crop, conv, 1)) {
		return 0
	}
	lo := 1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.fits(c.products(stack, crop, conv, mid)) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// products lists what n conversions of stack make
func (c *Crafter) products(stack domain.Stack, crop domain.Crop, conv conversion, n int) []domain.Stack {
	made := n * conv.outputs
	out := []domain.Stack{domain.NewStack(crop.Kind, conv.item, stack.Star, made, 0)}
	if c.kind == KindSeeder && c.settings.SeedByproduct {
		if extra := utils.RoundHalfUp(made*byproductPercent, percent); extra > 0 {
			out = append(out, domain.NewStack(crop.Kind, domain.ItemSeed, false, extra, 0))
		}
	}
	return out
}

// reserve is one unit of every item kind the crafter can output for stack
func (c *Crafter) reserve(stack domain.Stack, crop domain.Crop, conv conversion) []domain.Stack {
	out := []domain.Stack{domain.NewStack(crop.Kind, conv.item, stack.Star, 1, 0)}
	if c.kind == KindSeeder && c.settings.SeedByproduct {
		out = append(out, domain.NewStack(crop.Kind, domain.ItemSeed, false, 1, 0))
	}
	return out
}

// fits reports whether every stack in products can be placed in the output buffer
func (c *Crafter) fits(products []domain.Stack) bool {
	buf := append([]domain.Stack(nil), c.output...)
	for _, p := range products {
		before := domain.TotalCount(buf)
		buf = placeAll(buf, p, c.settings.outputCap())
		if domain.TotalCount(buf)-before != p.Count {
			return false
		}
	}
	return true
}

// placeAll merges stack into buf, opening new slots up to OutputSlots.
// Whatever does not fit is dropped, so callers check fits first.
func placeAll(buf []domain.Stack, stack domain.Stack, maxStack int) []domain.Stack {
	rest := stack
	for i := range buf {
		if rest.Count == 0 {
			return buf
		}
		if buf[i].SameItem(rest) {
			buf[i], rest = domain.Merge(buf[i], rest)
		}
	}
	for rest.Count > 0 && len(buf) < OutputSlots {
		slot := rest.WithCount(0)
		slot.MaxStack = maxStack
		slot, rest = domain.Merge(slot, rest)
		buf = append(buf, slot)
	}
	return buf
}

// Collect empties the output buffer and returns its stacks
func (c *Crafter) Collect(day int) []domain.Stack {
	out := c.output
	c.output = nil
	for i := range out {
		out[i].MaxStack = 0
	}
	return out
}

// Drain empties the hopper and returns its stacks unprocessed
func (c *Crafter) Drain() []domain.Stack {
	out := c.hopper
	c.hopper = nil
	for i := range out {
		out[i].MaxStack = 0
	}
	return out
}

// Hopper returns a copy of the hopper's stacks
func (c *Crafter) Hopper() []domain.Stack {
	return append([]domain.Stack(nil), c.hopper...)
}

// Output returns a copy of the output buffer's stacks
func (c *Crafter) Output() []domain.Stack {
	return append([]domain.Stack(nil), c.output...)
}

// HopperCount is the number of items waiting in the hopper
func (c *Crafter) HopperCount() int {
	return domain.TotalCount(c.hopper)
}

// InFlight reports whether the crafter holds anything in hopper or output
func (c *Crafter) InFlight() bool {
	return len(c.hopper) > 0 || len(c.output) > 0
}

// LifeTimeMinutes is day * 60 for the latest insertion that arrived on a
// later day than the one before it, zero until then
func (c *Crafter) LifeTimeMinutes() int { return c.lifeMinutes }

// ElapsedMinutes is the time spent converting
func (c *Crafter) ElapsedMinutes() int { return c.busyMinutes }

// IdleMinutes is lifetime not spent converting
func (c *Crafter) IdleMinutes() int {
	return max(0, c.lifeMinutes-c.busyMinutes)
}

// GoldGenerated is the value of everything the crafter has made
func (c *Crafter) GoldGenerated() int { return c.gold }

// Reset clears the clocks and counters for a new run. The buffers are kept
// so the caller can detect leftovers from a previous run.
func (c *Crafter) Reset() {
	c.started = false
	c.lastInsert = 0
	c.lifeMinutes = 0
	c.busyMinutes = 0
	c.gold = 0
	c.conversions = 0
}

// Stats is a crafter's utilisation report
type Stats struct {
	ID              int               `json:"id"`
	Kind            Kind              `json:"kind"`
	Pin             *domain.OptionKey `json:"pin,omitempty"`
	LifeTimeMinutes int               `json:"lifetime_minutes"`
	ElapsedMinutes  int               `json:"elapsed_minutes"`
	IdleMinutes     int               `json:"idle_minutes"`
	Utilisation     float64           `json:"utilisation"`
	Conversions     int               `json:"conversions"`
	GoldGenerated   int               `json:"gold_generated"`
}

// Stats reports the crafter's counters. Utilisation is elapsed over
// lifetime as a percentage, capped at 100.
func (c *Crafter) Stats() Stats {
	s := Stats{
		ID:              c.id,
		Kind:            c.kind,
		LifeTimeMinutes: c.lifeMinutes,
		ElapsedMinutes:  c.busyMinutes,
		IdleMinutes:     c.IdleMinutes(),
		Conversions:     c.conversions,
		GoldGenerated:   c.gold,
	}
	if c.pin != nil {
		pin := *c.pin
		s.Pin = &pin
	}
	if c.lifeMinutes > 0 {
		s.Utilisation = min(100, float64(c.busyMinutes)*100/float64(c.lifeMinutes))
	}
	return s
}

// SortStats orders a report by crafter ID
func SortStats(stats []Stats) {
	sort.Slice(stats, func(i, j int) bool { return stats[i].ID < stats[j].ID })
}
