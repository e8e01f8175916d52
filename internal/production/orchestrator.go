package production

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/crafter"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/harvest"
)

// Sink receives everything a run ships or charges
type Sink interface {
	AddProduce(day int, stack domain.Stack)
	AddCost(day int, stack domain.Stack)
	TotalValue() int
	DayLedger(day int) domain.DayLedger
}

// Settings are fixed for the lifetime of an orchestrator
type Settings struct {
	Strategy Strategy         `json:"strategy"`
	Crafter  crafter.Settings `json:"crafter"`
}

// DefaultSettings uses dedicated crafters with default crafter settings
func DefaultSettings() Settings {
	return Settings{
		Strategy: Dedicated,
		Crafter:  crafter.DefaultSettings(),
	}
}

// Report summarises a production run
type Report struct {
	Strategy Strategy        `json:"strategy"`
	Days     int             `json:"days"`
	Seeders  int             `json:"seeders"`
	Jars     int             `json:"jars"`
	// Crafters is ordered by ID
	Crafters []crafter.Stats `json:"crafters"`
	// RawShipped counts crops shipped without processing
	RawShipped int `json:"raw_shipped"`
	// Drained counts indivisible hopper remainders shipped raw at the end
	Drained int `json:"drained"`
	// Charged counts crops charged to the sink as a cost
	Charged    int `json:"charged"`
	TotalValue int `json:"total_value"`
}

// Orchestrator owns a crafter roster and feeds it from a harvest log
type Orchestrator struct {
	settings Settings
	catalog  catalog.Catalog
	logger   *slog.Logger

	options     []domain.CropOption
	counts      map[domain.OptionKey]int
	openSeeders int
	openJars    int
	openManual  bool
	needsUpdate bool

	roster  []*crafter.Crafter
	nextID  int
	routes  map[domain.OptionKey][]*crafter.Crafter
	pending map[domain.OptionKey]int
}

// New creates an orchestrator with no options and an empty roster.
// A nil logger discards debug traces.
func New(cat catalog.Catalog, settings Settings, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		settings: settings,
		catalog:  cat,
		logger:   logger,
		counts:   map[domain.OptionKey]int{},
		pending:  map[domain.OptionKey]int{},
	}
}

// SetOptions replaces the crop options. The roster is rebuilt on the next run.
func (o *Orchestrator) SetOptions(opts []domain.CropOption) error {
	seen := make(map[domain.OptionKey]bool, len(opts))
	for i, opt := range opts {
		if _, ok := o.catalog.LookupCrop(opt.Crop); !ok {
			return fmt.Errorf(ErrFmtUnknownCrop, domain.ErrUnknownCrop, i, opt.Crop)
		}
		if !opt.Product.IsValid() {
			return fmt.Errorf(ErrFmtBadProduct, domain.ErrInvalidInput, i, opt.Product)
		}
		if opt.Crafters < 0 {
			return fmt.Errorf(ErrFmtNegativeCount, domain.ErrInvalidInput, i, opt.Crafters)
		}
		if seen[opt.Key()] {
			return fmt.Errorf(ErrFmtDuplicateOption, domain.ErrInvalidInput, i, opt.Crop, opt.Star)
		}
		seen[opt.Key()] = true
	}
	o.options = append([]domain.CropOption(nil), opts...)
	o.needsUpdate = true
	return nil
}

// Options returns a copy of the current crop options
func (o *Orchestrator) Options() []domain.CropOption {
	return append([]domain.CropOption(nil), o.options...)
}

// SetCrafterCounts overrides the dedicated crafter count of individual options
func (o *Orchestrator) SetCrafterCounts(counts map[domain.OptionKey]int) error {
	for key, n := range counts {
		if n < 0 {
			return fmt.Errorf(ErrFmtNegativeCount, domain.ErrInvalidInput, -1, n)
		}
		o.counts[key] = n
	}
	o.needsUpdate = true
	return nil
}

// SetOpenPool fixes the size of the open pool instead of deriving it from the options
func (o *Orchestrator) SetOpenPool(seeders, jars int) error {
	if seeders < 0 || jars < 0 {
		return fmt.Errorf(ErrFmtNegativeOpen, domain.ErrInvalidInput, seeders, jars)
	}
	o.openSeeders = seeders
	o.openJars = jars
	o.openManual = true
	o.needsUpdate = true
	return nil
}

// AddCrafter appends a crafter to the roster. A nil pin makes an open crafter.
func (o *Orchestrator) AddCrafter(kind crafter.Kind, pin *domain.OptionKey) (*crafter.Crafter, error) {
	if len(o.roster) >= MaxCrafters {
		return nil, fmt.Errorf(ErrFmtCap, domain.ErrCrafterCapReached, len(o.roster))
	}
	o.nextID++
	var c *crafter.Crafter
	if pin != nil {
		c = crafter.NewDedicated(o.nextID, kind, *pin, o.settings.Crafter, o.catalog)
	} else {
		c = crafter.New(o.nextID, kind, o.settings.Crafter, o.catalog)
	}
	o.roster = append(o.roster, c)
	return c, nil
}

// Roster reports every crafter, ordered by ID
func (o *Orchestrator) Roster() []crafter.Stats {
	out := make([]crafter.Stats, 0, len(o.roster))
	for _, c := range o.roster {
		out = append(out, c.Stats())
	}
	crafter.SortStats(out)
	return out
}

// Reset discards the roster, including anything left queued by a failed
// run. The next run assigns a fresh roster.
func (o *Orchestrator) Reset() {
	o.roster = nil
	o.routes = nil
	o.nextID = 0
	o.pending = map[domain.OptionKey]int{}
	o.needsUpdate = true
}

// Assign rebuilds the roster from the options if they changed since the
// last assignment
func (o *Orchestrator) Assign() error {
	if !o.needsUpdate {
		return nil
	}
	o.roster = nil
	o.nextID = 0

	var err error
	switch o.settings.Strategy {
	case Open:
		err = o.assignOpen()
	default:
		err = o.assignDedicated()
	}
	if err != nil {
		return err
	}
	o.needsUpdate = false
	return nil
}

func (o *Orchestrator) assignDedicated() error {
	plan := make([]int, len(o.options))
	total := 0
	for i, opt := range o.options {
		if !opt.Product.NeedsProcessing() {
			continue
		}
		n := opt.Crafters
		if override, ok := o.counts[opt.Key()]; ok {
			n = override
		}
		plan[i] = max(n, 1)
		total += plan[i]
	}

	excess := total - MaxCrafters
	for i := len(plan) - 1; i >= 0 && excess > 0; i-- {
		if plan[i] > 1 {
			cut := min(plan[i]-1, excess)
			plan[i] -= cut
			excess -= cut
		}
	}
	for i := len(plan) - 1; i >= 0 && excess > 0; i-- {
		if plan[i] > 0 {
			o.logger.Warn("crop option left without crafters", "crop", o.options[i].Crop, "star", o.options[i].Star)
			plan[i] = 0
			excess--
		}
	}
	if total > MaxCrafters {
		o.logger.Debug("trimmed dedicated crafters", "requested", total, "cap", MaxCrafters)
	}

	for i, opt := range o.options {
		kind, _ := crafter.KindFor(opt.Product)
		key := opt.Key()
		for j := 0; j < plan[i]; j++ {
			if _, err := o.AddCrafter(kind, &key); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *Orchestrator) assignOpen() error {
	needSeeds, needJars := false, false
	seeders, jars := 0, 0
	for _, opt := range o.options {
		switch opt.Product {
		case domain.ProductSeed:
			needSeeds = true
			seeders += max(opt.Crafters, 1)
		case domain.ProductPreserve:
			needJars = true
			jars += max(opt.Crafters, 1)
		}
	}
	if o.openManual {
		seeders, jars = o.openSeeders, o.openJars
	}
	if !needSeeds {
		seeders = 0
	} else if seeders < 1 {
		seeders = 1
	}
	if !needJars {
		jars = 0
	} else if jars < 1 {
		jars = 1
	}

	requested := seeders + jars
	for seeders+jars > MaxCrafters {
		if jars > 1 {
			jars--
		} else if seeders > 1 {
			seeders--
		} else {
			break
		}
	}
	if requested > MaxCrafters {
		o.logger.Debug("trimmed open pool", "requested", requested, "seeders", seeders, "jars", jars)
	}

	for i := 0; i < seeders; i++ {
		if _, err := o.AddCrafter(crafter.KindSeeder, nil); err != nil {
			return err
		}
	}
	for i := 0; i < jars; i++ {
		if _, err := o.AddCrafter(crafter.KindJar, nil); err != nil {
			return err
		}
	}
	return nil
}

// route maps every processed option to the crafters that may take it
func (o *Orchestrator) route() {
	o.routes = map[domain.OptionKey][]*crafter.Crafter{}
	for _, opt := range o.options {
		kind, ok := crafter.KindFor(opt.Product)
		if !ok {
			continue
		}
		key := opt.Key()
		for _, c := range o.roster {
			if c.Kind() != kind {
				continue
			}
			if pin, pinned := c.Pin(); pinned && pin != key {
				continue
			}
			o.routes[key] = append(o.routes[key], c)
		}
	}
}

// Run feeds result's harvest log through the roster, shipping everything
// into sink, until the log is exhausted and nothing is pending or queued.
func (o *Orchestrator) Run(result *harvest.Result, sink Sink) (*Report, error) {
	if result == nil {
		return nil, fmt.Errorf(ErrFmtNilResult, domain.ErrInvalidInput)
	}
	if sink == nil {
		return nil, fmt.Errorf(ErrFmtNilSink, domain.ErrInvalidInput)
	}
	for _, c := range o.roster {
		if c.InFlight() {
			return nil, fmt.Errorf(ErrFmtHopperNotEmpty, domain.ErrCorruptState, c.ID(), c.HopperCount()+domain.TotalCount(c.Output()))
		}
	}
	if err := o.Assign(); err != nil {
		return nil, err
	}
	for _, c := range o.roster {
		c.Reset()
	}
	o.route()
	o.pending = map[domain.OptionKey]int{}

	rep := &Report{Strategy: o.settings.Strategy}
	separate := map[domain.OptionKey]bool{}
	for _, opt := range o.options {
		if opt.SeparateHarvestDays {
			separate[opt.Key()] = true
		}
	}

	log := result.Log
	next := 0
	day := 0
	for next < len(log) || o.pendingTotal() > 0 || o.inFlight() {
		day++
		if day > MaxDays {
			return nil, fmt.Errorf(ErrFmtRunTooLong, domain.ErrSimulationDivergence, MaxDays)
		}

		before := o.conversions()
		for _, c := range o.roster {
			if err := c.Process(day); err != nil {
				return nil, err
			}
		}
		converted := o.conversions() > before

		for _, c := range o.roster {
			for _, s := range c.Collect(day) {
				sink.AddProduce(day, s)
			}
		}

		if next < len(log) && log[next].Day == day {
			o.merge(log[next])
			next++
		}
		rep.Charged += o.chargeNegatives(day, sink)
		rep.RawShipped += o.shipUnrouted(day, sink)

		inserted, err := o.distribute(day)
		if err != nil {
			return nil, err
		}
		rep.RawShipped += o.shipSeparate(day, sink, separate)

		if next >= len(log) && !converted && !inserted {
			rep.Drained += o.drain(day, sink)
		}
	}

	rep.Days = day
	for _, c := range o.roster {
		rep.Crafters = append(rep.Crafters, c.Stats())
		if c.Kind() == crafter.KindJar {
			rep.Jars++
		} else {
			rep.Seeders++
		}
	}
	crafter.SortStats(rep.Crafters)
	rep.TotalValue = sink.TotalValue()

	o.logger.Debug("production run finished",
		"strategy", rep.Strategy.String(),
		"days", rep.Days,
		"crafters", len(rep.Crafters),
		"drained", rep.Drained,
		"total_value", rep.TotalValue)
	return rep, nil
}

// merge adds one day's harvest to the pending inventory
func (o *Orchestrator) merge(rec domain.HarvestRecord) {
	for _, crop := range rec.Crops.Crops() {
		y := rec.Crops[crop]
		o.pending[domain.OptionKey{Crop: crop}] += y.Base
		o.pending[domain.OptionKey{Crop: crop, Star: true}] += y.Star
	}
}

// chargeNegatives turns negative pending amounts into sink costs
func (o *Orchestrator) chargeNegatives(day int, sink Sink) int {
	charged := 0
	for _, key := range o.pendingKeys() {
		if n := o.pending[key]; n < 0 {
			sink.AddCost(day, domain.NewStack(key.Crop, domain.ItemCrop, key.Star, -n, 0))
			charged -= n
			o.pending[key] = 0
		}
	}
	return charged
}

// shipUnrouted ships pending crops no crafter will ever take
func (o *Orchestrator) shipUnrouted(day int, sink Sink) int {
	shipped := 0
	for _, key := range o.pendingKeys() {
		n := o.pending[key]
		if n <= 0 || len(o.routes[key]) > 0 {
			continue
		}
		sink.AddProduce(day, domain.NewStack(key.Crop, domain.ItemCrop, key.Star, n, 0))
		shipped += n
		o.pending[key] = 0
	}
	return shipped
}

// distribute hands pending crops to their crafters in roster order. It
// reports whether any crafter took anything.
func (o *Orchestrator) distribute(day int) (bool, error) {
	inserted := false
	for _, opt := range o.options {
		key := opt.Key()
		for _, c := range o.routes[key] {
			n := o.pending[key]
			if n <= 0 {
				break
			}
			leftover, complete, err := c.Insert(day, domain.NewStack(key.Crop, domain.ItemCrop, key.Star, n, 0))
			if err != nil {
				return inserted, err
			}
			if leftover.Count < n {
				inserted = true
			}
			o.pending[key] = leftover.Count
			if complete {
				break
			}
		}
	}
	return inserted, nil
}

// shipSeparate ships whatever a separate-days option could not queue today
func (o *Orchestrator) shipSeparate(day int, sink Sink, separate map[domain.OptionKey]bool) int {
	shipped := 0
	for _, key := range o.pendingKeys() {
		n := o.pending[key]
		if n <= 0 || !separate[key] {
			continue
		}
		sink.AddProduce(day, domain.NewStack(key.Crop, domain.ItemCrop, key.Star, n, 0))
		shipped += n
		o.pending[key] = 0
	}
	return shipped
}

// drain empties stalled hoppers into the sink as raw crops
func (o *Orchestrator) drain(day int, sink Sink) int {
	drained := 0
	for _, c := range o.roster {
		for _, s := range c.Drain() {
			sink.AddProduce(day, s)
			drained += s.Count
		}
	}
	return drained
}

func (o *Orchestrator) pendingKeys() []domain.OptionKey {
	keys := make([]domain.OptionKey, 0, len(o.pending))
	for k := range o.pending {
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

func (o *Orchestrator) pendingTotal() int {
	total := 0
	for _, n := range o.pending {
		if n > 0 {
			total += n
		}
	}
	return total
}

func (o *Orchestrator) inFlight() bool {
	for _, c := range o.roster {
		if c.InFlight() {
			return true
		}
	}
	return false
}

func (o *Orchestrator) conversions() int {
	total := 0
	for _, c := range o.roster {
		total += c.Stats().Conversions
	}
	return total
}
