// internal/models/pc_test.go
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.January, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, 0, d.DaysUntil(parsed))
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &d))
	assert.Error(t, d.Scan(42))
}

func TestDateScanNormalizesToMidnight(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.February, 1, 17, 30, 12, 0, time.UTC)))

	build := NewDate(2024, time.January, 15)
	assert.Equal(t, 17, build.DaysUntil(d))
}

func TestRecomputeDerivedOnSale(t *testing.T) {
	build := NewDate(2024, time.January, 15)
	sale := NewDate(2024, time.February, 1)
	cost := 5037.0
	price := 7500.0

	pc := PC{
		BuildDate:       &build,
		SaleDate:        &sale,
		TotalCost:       &cost,
		ActualSalePrice: &price,
	}
	pc.RecomputeDerived()

	require.NotNil(t, pc.Profit)
	assert.Equal(t, 2463.0, *pc.Profit)
	require.NotNil(t, pc.ProfitPercentage)
	assert.InDelta(t, 48.9, *pc.ProfitPercentage, 0.01)
	require.NotNil(t, pc.DaysHeld)
	assert.Equal(t, 17, *pc.DaysHeld)
	assert.Nil(t, pc.DaysListed)
}

func TestRecomputeDerivedZeroCost(t *testing.T) {
	price := 1200.0
	pc := PC{ActualSalePrice: &price}
	pc.RecomputeDerived()

	require.NotNil(t, pc.Profit)
	assert.Equal(t, 1200.0, *pc.Profit)
	assert.Nil(t, pc.ProfitPercentage)
	assert.Nil(t, pc.DaysHeld)
}

func TestRecomputeDerivedClearsStaleValues(t *testing.T) {
	profit := 99.0
	days := 3
	pc := PC{Profit: &profit, ProfitPercentage: &profit, DaysHeld: &days, DaysListed: &days}
	pc.RecomputeDerived()

	assert.Nil(t, pc.Profit)
	assert.Nil(t, pc.ProfitPercentage)
	assert.Nil(t, pc.DaysHeld)
	assert.Nil(t, pc.DaysListed)
}

func TestRecomputeDerivedDaysListed(t *testing.T) {
	list := NewDate(2024, time.January, 20)
	sale := NewDate(2024, time.February, 1)
	price := 100.0

	pc := PC{ListDate: &list, SaleDate: &sale, ActualSalePrice: &price}
	pc.RecomputeDerived()

	require.NotNil(t, pc.DaysListed)
	assert.Equal(t, 12, *pc.DaysListed)
}

func TestComponentSlotValidation(t *testing.T) {
	for _, slot := range []ComponentSlot{
		SlotCPU, SlotGPU, SlotMotherboard, SlotRAM, SlotStorage1,
		SlotStorage2, SlotPSU, SlotCase, SlotCPUCooler, SlotAdditional,
	} {
		assert.True(t, slot.IsValid(), string(slot))
	}
	assert.False(t, ComponentSlot("flux_capacitor").IsValid())
	assert.False(t, ComponentSlot("").IsValid())
}

func TestPCStatusValidation(t *testing.T) {
	assert.True(t, PCStatusBuilding.IsValid())
	assert.True(t, PCStatusArchived.IsValid())
	assert.False(t, PCStatus("scrapped").IsValid())
}
