package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/crafter"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
	"github.com/osse101/GardenPlanner_Go/internal/harvest"
	"github.com/osse101/GardenPlanner_Go/internal/valuation"
)

func harvestOf(records ...domain.HarvestRecord) *harvest.Result {
	res := &harvest.Result{Log: records, Inventory: domain.Inventory{}}
	for _, r := range records {
		for crop, y := range r.Crops {
			res.Inventory.Add(crop, y)
		}
		res.LastDay = r.Day
	}
	return res
}

func day(d int, crop domain.CropKind, base, star int) domain.HarvestRecord {
	return domain.HarvestRecord{Day: d, Crops: domain.Inventory{crop: {Base: base, Star: star}}}
}

func newOrchestrator(t *testing.T, strategy Strategy, opts ...domain.CropOption) *Orchestrator {
	t.Helper()
	settings := DefaultSettings()
	settings.Strategy = strategy
	o := New(catalog.Default(), settings, nil)
	require.NoError(t, o.SetOptions(opts))
	return o
}

func countKinds(stats []crafter.Stats) (seeders, jars int) {
	for _, s := range stats {
		if s.Kind == crafter.KindJar {
			jars++
		} else {
			seeders++
		}
	}
	return seeders, jars
}

func TestAddCrafter_CapReached(t *testing.T) {
	o := newOrchestrator(t, Dedicated,
		domain.CropOption{Crop: "tomato", Product: domain.ProductSeed, Crafters: 30})
	require.NoError(t, o.Assign())
	require.Len(t, o.Roster(), MaxCrafters)

	c, err := o.AddCrafter(crafter.KindSeeder, &domain.OptionKey{Crop: "tomato"})
	assert.ErrorIs(t, err, domain.ErrCrafterCapReached)
	assert.Nil(t, c)
	assert.Len(t, o.Roster(), MaxCrafters)
}

func TestAssign_Dedicated(t *testing.T) {
	tests := []struct {
		name  string
		opts  []domain.CropOption
		want  map[domain.OptionKey]int
		total int
	}{
		{
			name: "raw options get no crafters",
			opts: []domain.CropOption{
				{Crop: "tomato", Product: domain.ProductCrop, Crafters: 4},
				{Crop: "corn", Product: domain.ProductPreserve, Crafters: 2},
			},
			want:  map[domain.OptionKey]int{{Crop: "corn"}: 2},
			total: 2,
		},
		{
			name: "processing options get at least one",
			opts: []domain.CropOption{
				{Crop: "tomato", Product: domain.ProductSeed},
			},
			want:  map[domain.OptionKey]int{{Crop: "tomato"}: 1},
			total: 1,
		},
		{
			name: "trimming starts from the last option",
			opts: []domain.CropOption{
				{Crop: "tomato", Product: domain.ProductSeed, Crafters: 20},
				{Crop: "corn", Product: domain.ProductPreserve, Crafters: 8},
				{Crop: "apple", Product: domain.ProductPreserve, Crafters: 7},
			},
			want: map[domain.OptionKey]int{
				{Crop: "tomato"}: 20,
				{Crop: "corn"}:   8,
				{Crop: "apple"}:  2,
			},
			total: 30,
		},
		{
			name: "trimming never drops an option below one",
			opts: []domain.CropOption{
				{Crop: "tomato", Product: domain.ProductSeed, Crafters: 29},
				{Crop: "corn", Product: domain.ProductPreserve, Crafters: 5},
				{Crop: "apple", Product: domain.ProductPreserve, Crafters: 5},
			},
			want: map[domain.OptionKey]int{
				{Crop: "tomato"}: 28,
				{Crop: "corn"}:   1,
				{Crop: "apple"}:  1,
			},
			total: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrchestrator(t, Dedicated, tt.opts...)
			require.NoError(t, o.Assign())

			roster := o.Roster()
			assert.Len(t, roster, tt.total)
			got := map[domain.OptionKey]int{}
			for _, s := range roster {
				require.NotNil(t, s.Pin)
				got[*s.Pin]++
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssign_CrafterCountOverride(t *testing.T) {
	o := newOrchestrator(t, Dedicated,
		domain.CropOption{Crop: "tomato", Product: domain.ProductSeed, Crafters: 1})
	require.NoError(t, o.Assign())
	assert.Len(t, o.Roster(), 1)

	require.NoError(t, o.SetCrafterCounts(map[domain.OptionKey]int{{Crop: "tomato"}: 4}))
	require.NoError(t, o.Assign())
	assert.Len(t, o.Roster(), 4)

	assert.ErrorIs(t, o.SetCrafterCounts(map[domain.OptionKey]int{{Crop: "tomato"}: -1}), domain.ErrInvalidInput)
}

func TestAssign_Open(t *testing.T) {
	both := []domain.CropOption{
		{Crop: "tomato", Product: domain.ProductSeed},
		{Crop: "corn", Product: domain.ProductPreserve},
	}

	tests := []struct {
		name        string
		opts        []domain.CropOption
		seeders     int
		jars        int
		wantSeeders int
		wantJars    int
	}{
		{name: "derived from options", opts: both, seeders: -1, wantSeeders: 1, wantJars: 1},
		{name: "jars are trimmed first", opts: both, seeders: 20, jars: 15, wantSeeders: 20, wantJars: 10},
		{name: "one jar survives", opts: both, seeders: 30, jars: 5, wantSeeders: 29, wantJars: 1},
		{name: "unused kind is dropped", opts: both[:1], seeders: 3, jars: 3, wantSeeders: 3, wantJars: 0},
		{name: "needed kind gets one", opts: both, seeders: 0, jars: 2, wantSeeders: 1, wantJars: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrchestrator(t, Open, tt.opts...)
			if tt.seeders >= 0 {
				require.NoError(t, o.SetOpenPool(tt.seeders, tt.jars))
			}
			require.NoError(t, o.Assign())

			seeders, jars := countKinds(o.Roster())
			assert.Equal(t, tt.wantSeeders, seeders)
			assert.Equal(t, tt.wantJars, jars)
			for _, s := range o.Roster() {
				assert.Nil(t, s.Pin)
			}
		})
	}
}

func TestSetOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []domain.CropOption
		wantErr error
	}{
		{
			name:    "unknown crop",
			opts:    []domain.CropOption{{Crop: "mandrake", Product: domain.ProductSeed}},
			wantErr: domain.ErrUnknownCrop,
		},
		{
			name:    "unknown product",
			opts:    []domain.CropOption{{Crop: "tomato", Product: "jam"}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative crafters",
			opts:    []domain.CropOption{{Crop: "tomato", Product: domain.ProductSeed, Crafters: -2}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "duplicate key",
			opts: []domain.CropOption{
				{Crop: "tomato", Product: domain.ProductSeed},
				{Crop: "tomato", Product: domain.ProductPreserve},
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(catalog.Default(), DefaultSettings(), nil)
			err := o.SetOptions(tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, o.Options())
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		strategy    Strategy
		opts        []domain.CropOption
		log         []domain.HarvestRecord
		wantDays    int
		wantValue   int
		wantRaw     int
		wantDrained int
		wantCharged int
	}{
		{
			name:      "raw crops ship on harvest day",
			log:       []domain.HarvestRecord{day(4, "tomato", 1, 1)},
			wantDays:  4,
			wantValue: 10 + 15,
			wantRaw:   2,
		},
		{
			name: "seeds are collected the day after insertion",
			opts: []domain.CropOption{{Crop: "tomato", Product: domain.ProductSeed}},
			log:  []domain.HarvestRecord{day(1, "tomato", 5, 0)},
			// 10 seeds plus one byproduct seed
			wantDays:  2,
			wantValue: 11 * 6,
		},
		{
			name:        "indivisible remainder is drained raw",
			opts:        []domain.CropOption{{Crop: "corn", Product: domain.ProductPreserve}},
			log:         []domain.HarvestRecord{day(1, "corn", 5, 0)},
			wantDays:    3,
			wantValue:   2*61 + 20,
			wantDrained: 1,
		},
		{
			name:        "negative yield is charged",
			opts:        []domain.CropOption{{Crop: "tomato", Product: domain.ProductSeed}},
			log:         []domain.HarvestRecord{day(1, "tomato", -2, 0)},
			wantDays:    1,
			wantValue:   -20,
			wantCharged: 2,
		},
		{
			name: "separate harvest days ship what did not fit",
			opts: []domain.CropOption{
				{Crop: "tomato", Product: domain.ProductSeed, SeparateHarvestDays: true},
			},
			log:       []domain.HarvestRecord{day(1, "tomato", 40, 0)},
			wantDays:  2,
			wantValue: 63*6 + 10*10,
			wantRaw:   10,
		},
		{
			name:      "queued crops wait for the hopper",
			opts:      []domain.CropOption{{Crop: "tomato", Product: domain.ProductSeed}},
			log:       []domain.HarvestRecord{day(1, "tomato", 40, 0)},
			wantDays:  3,
			wantValue: 84 * 6,
		},
		{
			name:     "open pool serves every crop",
			strategy: Open,
			opts: []domain.CropOption{
				{Crop: "tomato", Product: domain.ProductSeed},
				{Crop: "corn", Product: domain.ProductPreserve},
			},
			log: []domain.HarvestRecord{
				{Day: 1, Crops: domain.Inventory{"tomato": {Base: 5}, "corn": {Base: 4}}},
			},
			wantDays:  2,
			wantValue: 11*6 + 2*61,
		},
		{
			name:     "no harvest",
			wantDays: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrchestrator(t, tt.strategy, tt.opts...)
			sink := valuation.NewLedger(catalog.Default())

			rep, err := o.Run(harvestOf(tt.log...), sink)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDays, rep.Days)
			assert.Equal(t, tt.wantValue, rep.TotalValue)
			assert.Equal(t, tt.wantValue, sink.TotalValue())
			assert.Equal(t, tt.wantRaw, rep.RawShipped)
			assert.Equal(t, tt.wantDrained, rep.Drained)
			assert.Equal(t, tt.wantCharged, rep.Charged)
			for _, s := range o.Roster() {
				assert.Zero(t, s.IdleMinutes+s.ElapsedMinutes-max(s.LifeTimeMinutes, s.ElapsedMinutes))
			}
		})
	}
}

func TestRun_CrafterStats(t *testing.T) {
	o := newOrchestrator(t, Dedicated,
		domain.CropOption{Crop: "corn", Product: domain.ProductPreserve, Crafters: 2})
	rep, err := o.Run(harvestOf(day(1, "corn", 4, 0), day(3, "corn", 2, 0)), valuation.NewLedger(catalog.Default()))
	require.NoError(t, err)

	require.Len(t, rep.Crafters, 2)
	assert.Equal(t, 0, rep.Seeders)
	assert.Equal(t, 2, rep.Jars)
	assert.Less(t, rep.Crafters[0].ID, rep.Crafters[1].ID)
	assert.Equal(t, rep.Crafters, o.Roster())

	// the first crafter takes both deliveries; its clock reads day 3
	first, second := rep.Crafters[0], rep.Crafters[1]
	assert.Equal(t, 3, first.Conversions)
	assert.Equal(t, 3*61, first.GoldGenerated)
	assert.Equal(t, 180, first.ElapsedMinutes)
	assert.Equal(t, 3*60, first.LifeTimeMinutes)
	assert.Zero(t, first.IdleMinutes)
	assert.Zero(t, second.Conversions)
	assert.Zero(t, second.LifeTimeMinutes)
}

func TestRun_ConservesCrops(t *testing.T) {
	o := newOrchestrator(t, Dedicated,
		domain.CropOption{Crop: "corn", Product: domain.ProductPreserve},
		domain.CropOption{Crop: "corn", Star: true, Product: domain.ProductSeed})
	sink := valuation.NewLedger(catalog.Default())

	rep, err := o.Run(harvestOf(day(2, "corn", 7, 3), day(5, "corn", 2, 4)), sink)
	require.NoError(t, err)

	preserves, seeds, raw := 0, 0, 0
	for _, d := range sink.Days() {
		for _, s := range d.Produce {
			switch {
			case s.Kind == domain.ItemPreserve:
				preserves += s.Count
			case s.Kind == domain.ItemSeed && s.Star:
				seeds += s.Count
			case s.Kind == domain.ItemCrop:
				raw += s.Count
			}
		}
	}
	// 9 base corn: 4 preserves and one drained; 7 star corn: 3 conversions of 3 seeds and one drained
	assert.Equal(t, 4, preserves)
	assert.Equal(t, 9, seeds)
	assert.Equal(t, 2, raw)
	assert.Equal(t, 2, rep.Drained)
}

func TestRun_Errors(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		o := New(catalog.Default(), DefaultSettings(), nil)
		_, err := o.Run(nil, valuation.NewLedger(catalog.Default()))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("nil sink", func(t *testing.T) {
		o := New(catalog.Default(), DefaultSettings(), nil)
		_, err := o.Run(harvestOf(), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("queued crops at run start", func(t *testing.T) {
		o := New(catalog.Default(), DefaultSettings(), nil)
		c, err := o.AddCrafter(crafter.KindJar, nil)
		require.NoError(t, err)
		_, _, err = c.Insert(1, domain.NewStack("tomato", domain.ItemCrop, false, 3, 0))
		require.NoError(t, err)

		_, err = o.Run(harvestOf(), valuation.NewLedger(catalog.Default()))
		assert.ErrorIs(t, err, domain.ErrCorruptState)
		assert.True(t, domain.IsFatal(err))

		o.Reset()
		_, err = o.Run(harvestOf(), valuation.NewLedger(catalog.Default()))
		assert.NoError(t, err)
	})

	t.Run("run past the day ceiling", func(t *testing.T) {
		o := New(catalog.Default(), DefaultSettings(), nil)
		_, err := o.Run(harvestOf(day(MaxDays+1, "tomato", 1, 0)), valuation.NewLedger(catalog.Default()))
		assert.ErrorIs(t, err, domain.ErrSimulationDivergence)
	})
}

func TestRun_Repeatable(t *testing.T) {
	opts := []domain.CropOption{
		{Crop: "tomato", Product: domain.ProductSeed, Crafters: 2},
		{Crop: "tomato", Star: true, Product: domain.ProductPreserve},
	}
	res := harvestOf(day(4, "tomato", 30, 12), day(6, "tomato", 25, 10), day(8, "tomato", 31, 9))

	o := newOrchestrator(t, Dedicated, opts...)
	first, err := o.Run(res, valuation.NewLedger(catalog.Default()))
	require.NoError(t, err)
	second, err := o.Run(res, valuation.NewLedger(catalog.Default()))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_FromSimulation(t *testing.T) {
	tomato, ok := catalog.Default().LookupCrop("tomato")
	require.True(t, ok)
	tiles := []garden.PlantedTile{{Crop: tomato, Bonuses: domain.BonusSet{}}}

	res, err := harvest.Simulate(tiles, harvest.Options{Days: 10})
	require.NoError(t, err)
	require.Equal(t, 10, res.LastDay)

	o := newOrchestrator(t, Dedicated,
		domain.CropOption{Crop: "tomato", Product: domain.ProductSeed},
		domain.CropOption{Crop: "tomato", Star: true, Product: domain.ProductSeed})
	rep, err := o.Run(res, valuation.NewLedger(catalog.Default()))
	require.NoError(t, err)

	// the last harvest is processed the next day
	assert.Equal(t, 11, rep.Days)
	assert.Positive(t, rep.TotalValue)
	assert.Zero(t, rep.RawShipped)
	assert.Zero(t, rep.Drained)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "", want: Dedicated},
		{in: "dedicated", want: Dedicated},
		{in: "Open", want: Open},
		{in: "vip", want: Open},
		{in: "greedy", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
