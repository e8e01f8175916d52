package valuation

import (
	"sort"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// Ledger is an append-only record of shipped and charged stacks, priced
// from the catalog as they arrive
type Ledger struct {
	catalog catalog.Catalog
	days    map[int]*domain.DayLedger
	total   int
}

// NewLedger creates an empty ledger
func NewLedger(cat catalog.Catalog) *Ledger {
	return &Ledger{
		catalog: cat,
		days:    map[int]*domain.DayLedger{},
	}
}

// AddProduce records a shipped stack
func (l *Ledger) AddProduce(day int, stack domain.Stack) {
	d := l.day(day)
	d.Produce = add(d.Produce, stack)
	gold := l.price(stack)
	d.Gold += gold
	l.total += gold
}

// AddCost records a stack charged against the run
func (l *Ledger) AddCost(day int, stack domain.Stack) {
	d := l.day(day)
	d.Costs = add(d.Costs, stack)
	gold := l.price(stack)
	d.Gold -= gold
	l.total -= gold
}

// TotalValue is the gold of everything recorded
func (l *Ledger) TotalValue() int {
	return l.total
}

// DayLedger returns a copy of one day's record
func (l *Ledger) DayLedger(day int) domain.DayLedger {
	d, ok := l.days[day]
	if !ok {
		return domain.DayLedger{Day: day}
	}
	return domain.DayLedger{
		Day:     d.Day,
		Produce: append([]domain.Stack(nil), d.Produce...),
		Costs:   append([]domain.Stack(nil), d.Costs...),
		Gold:    d.Gold,
	}
}

// Days returns every recorded day in order
func (l *Ledger) Days() []domain.DayLedger {
	days := make([]int, 0, len(l.days))
	for d := range l.days {
		days = append(days, d)
	}
	sort.Ints(days)
	out := make([]domain.DayLedger, 0, len(days))
	for _, d := range days {
		out = append(out, l.DayLedger(d))
	}
	return out
}

func (l *Ledger) day(day int) *domain.DayLedger {
	d, ok := l.days[day]
	if !ok {
		d = &domain.DayLedger{Day: day}
		l.days[day] = d
	}
	return d
}

// price is the gold value of stack; unknown crops are worth nothing
func (l *Ledger) price(stack domain.Stack) int {
	crop, ok := l.catalog.LookupCrop(stack.Crop)
	if !ok {
		return 0
	}
	switch stack.Kind {
	case domain.ItemSeed:
		return stack.Count * crop.SeedPrice.For(stack.Star)
	case domain.ItemPreserve:
		return stack.Count * crop.PreservePrice.For(stack.Star)
	default:
		return stack.Count * crop.CropPrice.For(stack.Star)
	}
}

// add merges stack into the matching entry of stacks or appends it
func add(stacks []domain.Stack, stack domain.Stack) []domain.Stack {
	stack.MaxStack = 0
	for i := range stacks {
		if stacks[i].SameItem(stack) {
			stacks[i].Count += stack.Count
			return stacks
		}
	}
	return append(stacks, stack)
}

func sortedKeys(m map[domain.OptionKey]int) []domain.OptionKey {
	keys := make([]domain.OptionKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Crop != keys[j].Crop {
			return keys[i].Crop < keys[j].Crop
		}
		return !keys[i].Star && keys[j].Star
	})
	return keys
}
