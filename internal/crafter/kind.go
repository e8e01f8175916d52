package crafter

import (
	"fmt"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// Kind selects the conversion a crafter performs
type Kind int

const (
	// KindSeeder turns crops into seeds, with a small byproduct of plain seeds
	KindSeeder Kind = iota
	// KindJar turns crops into preserves
	KindJar
)

func (k Kind) String() string {
	switch k {
	case KindSeeder:
		return "seeder"
	case KindJar:
		return "jar"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	if k != KindSeeder && k != KindJar {
		return nil, fmt.Errorf(ErrFmtBadKind, domain.ErrInvalidInput, int(k))
	}
	return []byte(k.String()), nil
}

// KindFor returns the crafter kind that makes product
func KindFor(product domain.Product) (Kind, bool) {
	switch product {
	case domain.ProductSeed:
		return KindSeeder, true
	case domain.ProductPreserve:
		return KindJar, true
	default:
		return 0, false
	}
}

// conversion is one kind's recipe for one crop
type conversion struct {
	inputs  int // crops consumed per conversion
	outputs int // items made per conversion
	minutes int // processing time per conversion
	item    domain.ItemKind
	price   domain.Prices
}

func (k Kind) conversion(crop domain.Crop) conversion {
	switch k {
	case KindJar:
		return conversion{
			inputs:  crop.CropsPerPreserve,
			outputs: 1,
			minutes: crop.PreserveMinutes,
			item:    domain.ItemPreserve,
			price:   crop.PreservePrice,
		}
	default:
		return conversion{
			inputs:  crop.CropsPerSeed,
			outputs: crop.SeedsPerConversion,
			minutes: crop.SeedMinutes,
			item:    domain.ItemSeed,
			price:   crop.SeedPrice,
		}
	}
}
