package harvest

import (
	"fmt"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
	"github.com/osse101/GardenPlanner_Go/internal/utils"
)

// Options fix everything a run depends on besides the tiles. Days of zero
// runs until the longest cycle among the tiles completes.
type Options struct {
	Days               int  `json:"days" validate:"min=0,max=1000"`
	IncludeReplant     bool `json:"include_replant"`
	UseStarSeeds       bool `json:"use_star_seeds"`
	Level              int  `json:"level" validate:"min=0,max=100"`
	UseGrowthBoost     bool `json:"use_growth_boost"`
	IncludeReplantCost bool `json:"include_replant_cost"`
}

// Result is a finished run. Log days strictly increase; LastDay is the day
// of the final entry, zero for an empty log.
type Result struct {
	Log       []domain.HarvestRecord `json:"log"`
	Inventory domain.Inventory       `json:"inventory"`
	LastDay   int                    `json:"last_day"`
	Horizon   int                    `json:"horizon"`
	// Seeds holds replant seeds left over from conversions, per crop
	Seeds map[domain.CropKind]int `json:"seeds,omitempty"`
	// ReplantCost sums the crops spent on replant seeds
	ReplantCost domain.Inventory `json:"replant_cost,omitempty"`
}

// Simulate walks days 1..horizon over the given footprints. It keeps no
// state between calls: the same tiles and options always give the same Result.
func Simulate(tiles []garden.PlantedTile, opts Options) (*Result, error) {
	if opts.Days < 0 {
		return nil, fmt.Errorf(ErrFmtNegativeDays, domain.ErrInvalidInput, opts.Days)
	}
	if opts.Level < 0 {
		return nil, fmt.Errorf(ErrFmtNegativeLevel, domain.ErrInvalidInput, opts.Level)
	}

	plans := make([]tilePlan, 0, len(tiles))
	horizon := opts.Days
	for _, tile := range tiles {
		p := newTilePlan(tile, opts)
		plans = append(plans, p)
		if opts.Days == 0 && p.total > horizon {
			horizon = p.total
		}
	}
	if horizon > MaxDays {
		return nil, fmt.Errorf(ErrFmtHorizonTooLong, domain.ErrSimulationDivergence, horizon, MaxDays)
	}

	res := &Result{
		Log:         []domain.HarvestRecord{},
		Inventory:   domain.Inventory{},
		Horizon:     horizon,
		Seeds:       map[domain.CropKind]int{},
		ReplantCost: domain.Inventory{},
	}
	if len(plans) == 0 {
		return res, nil
	}

	defs := plansByCrop(plans)
	for day := 1; day <= horizon; day++ {
		crops := domain.Inventory{}
		replants := map[domain.CropKind]int{}
		produced := false

		for _, p := range plans {
			if !p.yieldsOn(day, opts.IncludeReplant) {
				continue
			}
			crops.Add(p.crop.Kind, p.yield)
			if !p.yield.IsZero() {
				produced = true
			}
			if opts.IncludeReplant && p.boundary(day) {
				replants[p.crop.Kind]++
			}
		}
		if !produced {
			continue
		}

		rec := domain.HarvestRecord{Day: day, Crops: crops}
		if opts.IncludeReplant && opts.IncludeReplantCost && len(replants) > 0 {
			rec.Replant = chargeReplants(crops, replants, defs, res.Seeds, opts.UseStarSeeds)
			for kind, cost := range rec.Replant {
				res.ReplantCost.Add(kind, cost)
			}
		}

		res.Log = append(res.Log, rec)
		for kind, y := range rec.Crops {
			res.Inventory.Add(kind, y)
		}
		res.LastDay = day
	}
	return res, nil
}

func plansByCrop(plans []tilePlan) map[domain.CropKind]domain.Crop {
	out := make(map[domain.CropKind]domain.Crop, len(plans))
	for _, p := range plans {
		out[p.crop.Kind] = p.crop
	}
	return out
}

// chargeReplants deducts the crops converted into replant seeds from the
// day's yield and returns the deduction per crop. Banked seeds are spent
// first; seeds a conversion makes beyond the need go back into the bank.
func chargeReplants(crops domain.Inventory, replants map[domain.CropKind]int, defs map[domain.CropKind]domain.Crop, bank map[domain.CropKind]int, starSeeds bool) domain.Inventory {
	charged := domain.Inventory{}
	for _, kind := range sortedKinds(replants) {
		crop := defs[kind]
		need := replants[kind]

		fromBank := min(bank[kind], need)
		bank[kind] -= fromBank
		need -= fromBank

		conversions := utils.CeilDiv(need, crop.SeedsPerConversion)
		bank[kind] += conversions*crop.SeedsPerConversion - need

		cost := conversions * crop.CropsPerSeed
		if cost == 0 {
			continue
		}
		var y domain.Yield
		if starSeeds {
			y.Star = cost
		} else {
			y.Base = cost
		}
		crops[kind] = crops[kind].Add(domain.Yield{Base: -y.Base, Star: -y.Star})
		charged[kind] = y
	}
	return charged
}

func sortedKinds(m map[domain.CropKind]int) []domain.CropKind {
	inv := make(domain.Inventory, len(m))
	for k := range m {
		inv[k] = domain.Yield{}
	}
	return inv.Crops()
}
