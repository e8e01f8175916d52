package harvest

import (
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
	"github.com/osse101/GardenPlanner_Go/internal/utils"
)

// tilePlan is the per-footprint schedule precomputed before the day walk
type tilePlan struct {
	crop     domain.Crop
	growth   int
	cooldown int
	total    int
	offsets  map[int]bool
	yield    domain.Yield
}

func newTilePlan(tile garden.PlantedTile, opts Options) tilePlan {
	crop := tile.Crop
	growth, cooldown := crop.GrowthDays, crop.ReharvestCooldown
	if opts.UseGrowthBoost || tile.Bonuses.Has(domain.BonusSpeed) {
		growth = utils.ScaleCeil(growth, speedNum, speedDen)
		cooldown = utils.ScaleCeil(cooldown, speedNum, speedDen)
	}
	total := growth + cooldown*crop.ReharvestLimit

	offsets := make(map[int]bool, crop.ReharvestLimit+1)
	for k := 0; k <= crop.ReharvestLimit; k++ {
		offsets[(growth+k*cooldown)%total] = true
	}

	return tilePlan{
		crop:     crop,
		growth:   growth,
		cooldown: cooldown,
		total:    total,
		offsets:  offsets,
		yield:    splitYield(crop, tile.Bonuses, opts),
	}
}

// StarChance returns the percent chance of a star harvest for the given options and bonuses
func StarChance(bonuses domain.BonusSet, opts Options) int {
	chance := baseStarChance + starChancePerLevel*opts.Level
	if opts.UseStarSeeds {
		chance += starSeedBonus
	}
	if bonuses.Has(domain.BonusQuality) {
		chance += qualityBonusChance
	}
	return utils.Clamp(chance, 0, maxStarChance)
}

// splitYield divides one harvest's pool into base and star quantities
func splitYield(crop domain.Crop, bonuses domain.BonusSet, opts Options) domain.Yield {
	pool := crop.Base
	if bonuses.Has(domain.BonusHarvest) {
		pool = crop.WithBonus
	}
	star := utils.RoundHalfUp(pool*StarChance(bonuses, opts), percent)
	return domain.Yield{Base: pool - star, Star: star}
}

// boundary reports whether day closes a full cycle
func (p tilePlan) boundary(day int) bool {
	return day >= p.total && day%p.total == 0
}

// yieldsOn reports whether the footprint is harvested on day
func (p tilePlan) yieldsOn(day int, replant bool) bool {
	if !replant && day > p.total {
		return false
	}
	return p.offsets[day%p.total] || p.boundary(day)
}
