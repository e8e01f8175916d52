package valuation

import (
	"fmt"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// Entry is one (crop, quality) line of a valued day
type Entry struct {
	Crop    domain.CropKind `json:"crop"`
	Star    bool            `json:"star"`
	Product domain.Product  `json:"product"`
	// Amount is the day's produce plus the remainder carried in
	Amount int `json:"amount"`
	// Units is how many products Amount made
	Units     int `json:"units"`
	Remainder int `json:"remainder"`
	Gold      int `json:"gold"`
}

// Day is one valued harvest day
type Day struct {
	Day     int     `json:"day"`
	Entries []Entry `json:"entries"`
	Gold    int     `json:"gold"`
}

// Valuation is a harvest log turned into gold
type Valuation struct {
	Days  []Day `json:"days"`
	Total int   `json:"total"`
	// Remainders are crops left over after the last day, too few to convert
	Remainders map[domain.OptionKey]int `json:"-"`
}

// RemainderList returns the terminal remainders in crop order
func (v *Valuation) RemainderList() []Entry {
	out := []Entry{}
	for _, key := range sortedKeys(v.Remainders) {
		if n := v.Remainders[key]; n != 0 {
			out = append(out, Entry{Crop: key.Crop, Star: key.Star, Remainder: n})
		}
	}
	return out
}

// Value converts each day's produce into gold according to products.
// Crops that cannot complete a conversion are carried to the next day.
// A negative amount is charged at the raw crop price.
func Value(log []domain.HarvestRecord, products domain.ProductMap, cat catalog.Catalog) (*Valuation, error) {
	v := &Valuation{
		Days:       make([]Day, 0, len(log)),
		Remainders: map[domain.OptionKey]int{},
	}

	prev := 0
	for _, rec := range log {
		if rec.Day <= prev {
			return nil, fmt.Errorf(ErrFmtDayOrder, domain.ErrInvalidInput, rec.Day, prev)
		}
		prev = rec.Day

		day := Day{Day: rec.Day, Entries: []Entry{}}
		for _, crop := range rec.Crops.Crops() {
			def, ok := cat.LookupCrop(crop)
			if !ok {
				return nil, fmt.Errorf(ErrFmtUnknownCrop, domain.ErrUnknownCrop, rec.Day, crop)
			}
			y := rec.Crops[crop]
			for _, star := range []bool{false, true} {
				key := domain.OptionKey{Crop: crop, Star: star}
				amount := y.Get(star) + v.Remainders[key]
				if amount == 0 {
					continue
				}
				entry, err := convert(def, key, products.ProductFor(crop, star), amount)
				if err != nil {
					return nil, err
				}
				v.Remainders[key] = entry.Remainder
				day.Entries = append(day.Entries, entry)
				day.Gold += entry.Gold
			}
		}
		v.Days = append(v.Days, day)
		v.Total += day.Gold
	}
	return v, nil
}

// convert values amount crops of one quality as product
func convert(crop domain.Crop, key domain.OptionKey, product domain.Product, amount int) (Entry, error) {
	e := Entry{Crop: key.Crop, Star: key.Star, Product: product, Amount: amount}
	if amount < 0 {
		e.Gold = amount * crop.CropPrice.For(key.Star)
		return e, nil
	}

	switch product {
	case domain.ProductCrop:
		e.Units = amount
		e.Gold = amount * crop.CropPrice.For(key.Star)
	case domain.ProductSeed:
		conversions := amount / crop.CropsPerSeed
		e.Units = conversions * crop.SeedsPerConversion
		e.Remainder = amount - conversions*crop.CropsPerSeed
		e.Gold = e.Units * crop.SeedPrice.For(key.Star)
	case domain.ProductPreserve:
		e.Units = amount / crop.CropsPerPreserve
		e.Remainder = amount - e.Units*crop.CropsPerPreserve
		e.Gold = e.Units * crop.PreservePrice.For(key.Star)
	default:
		return e, fmt.Errorf(ErrFmtBadProduct, domain.ErrInvalidInput, key.Crop, key.Star, product)
	}
	return e, nil
}
