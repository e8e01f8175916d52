package harvest

import (
	"testing"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
)

func BenchmarkSimulate_FullGarden(b *testing.B) {
	cat := catalog.Default()
	var tiles []garden.PlantedTile
	for _, crop := range cat.Crops() {
		for i := 0; i < 6; i++ {
			tiles = append(tiles, garden.PlantedTile{Crop: crop, Bonuses: domain.BonusSet{domain.BonusQuality: true}})
		}
	}
	opts := Options{Days: 365, IncludeReplant: true, IncludeReplantCost: true, Level: 25}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Simulate(tiles, opts); err != nil {
			b.Fatal(err)
		}
	}
}
