package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

func TestLedger(t *testing.T) {
	l := NewLedger(catalog.Default())

	l.AddProduce(3, domain.NewStack("tomato", domain.ItemSeed, false, 3, 99))
	l.AddProduce(3, domain.NewStack("tomato", domain.ItemSeed, false, 2, 0))
	l.AddProduce(3, domain.NewStack("corn", domain.ItemPreserve, true, 1, 0))
	l.AddCost(5, domain.NewStack("tomato", domain.ItemCrop, false, 2, 0))

	assert.Equal(t, 5*6+91-20, l.TotalValue())

	day3 := l.DayLedger(3)
	assert.Equal(t, 3, day3.Day)
	assert.Equal(t, 5*6+91, day3.Gold)
	assert.Len(t, day3.Produce, 2)
	assert.Equal(t, 5, day3.Produce[0].Count)
	assert.Zero(t, day3.Produce[0].MaxStack)
	assert.Empty(t, day3.Costs)

	day5 := l.DayLedger(5)
	assert.Equal(t, -20, day5.Gold)
	assert.Len(t, day5.Costs, 1)

	empty := l.DayLedger(9)
	assert.Equal(t, 9, empty.Day)
	assert.Zero(t, empty.Gold)

	days := l.Days()
	assert.Len(t, days, 2)
	assert.Equal(t, 3, days[0].Day)
	assert.Equal(t, 5, days[1].Day)
}

func TestLedger_DayLedgerIsACopy(t *testing.T) {
	l := NewLedger(catalog.Default())
	l.AddProduce(1, domain.NewStack("tomato", domain.ItemCrop, false, 1, 0))

	d := l.DayLedger(1)
	d.Produce[0].Count = 100

	assert.Equal(t, 1, l.DayLedger(1).Produce[0].Count)
}

func TestLedger_UnknownCropIsWorthless(t *testing.T) {
	l := NewLedger(catalog.Default())
	l.AddProduce(1, domain.NewStack("mandrake", domain.ItemCrop, false, 10, 0))

	assert.Zero(t, l.TotalValue())
	assert.Len(t, l.DayLedger(1).Produce, 1)
}
