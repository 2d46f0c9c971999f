package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invensight/backend-go/internal/domain"
)

func TestGenerateABCAnalysisConcentratedValue(t *testing.T) {
	// Ten items, no transaction history: annual value is quantity*price.
	// The first holds 85% of total value and must land in A.
	items := []domain.Item{
		{ID: 1, Name: "Flagship", Price: 50, Quantity: 170}, // 8500
		{ID: 2, Name: "Second", Price: 10, Quantity: 60},    // 600
		{ID: 3, Name: "Third", Price: 5, Quantity: 60},      // 300
		{ID: 4, Name: "Fourth", Price: 5, Quantity: 40},     // 200
		{ID: 5, Name: "Fifth", Price: 5, Quantity: 30},      // 150
		{ID: 6, Name: "Sixth", Price: 5, Quantity: 20},      // 100
		{ID: 7, Name: "Seventh", Price: 5, Quantity: 15},    // 75
		{ID: 8, Name: "Eighth", Price: 5, Quantity: 8},      // 40
		{ID: 9, Name: "Ninth", Price: 5, Quantity: 5},       // 25
		{ID: 10, Name: "Tenth", Price: 5, Quantity: 2},      // 10
	}

	engine := newTestEngine(items, nil)
	classifications := engine.GenerateABCAnalysis()
	require.Len(t, classifications, 10)

	assert.Equal(t, int64(1), classifications[0].ItemID)
	assert.Equal(t, domain.CategoryA, classifications[0].Category)
	assert.InDelta(t, 85, classifications[0].CumulativePercentage, 1e-9)

	// Items landing in the 85-95% band are B, the tail is C.
	assert.Equal(t, domain.CategoryB, classifications[1].Category) // cum 91
	assert.Equal(t, domain.CategoryB, classifications[2].Category) // cum 94
	assert.Equal(t, domain.CategoryB, classifications[3].Category) // cum 96, crossed from 94
	for _, c := range classifications[4:] {
		assert.Equal(t, domain.CategoryC, c.Category)
	}

	// Cumulative percentages are monotone and end at 100.
	prev := 0.0
	for _, c := range classifications {
		assert.GreaterOrEqual(t, c.CumulativePercentage, prev)
		prev = c.CumulativePercentage
	}
	assert.InDelta(t, 100, classifications[9].CumulativePercentage, 1e-9)
}

func TestGenerateABCAnalysisUsesDemandHistoryWhenPresent(t *testing.T) {
	// With history, annual value comes from average monthly demand, not
	// from the shelf quantity.
	items := []domain.Item{
		{ID: 1, Name: "Widget", Price: 10, Quantity: 1},
		{ID: 2, Name: "Gadget", Price: 10, Quantity: 1000},
	}
	engine := newTestEngine(items, flatDemand("Widget", 100))

	classifications := engine.GenerateABCAnalysis()
	require.Len(t, classifications, 2)

	// Widget: 100*12*10 = 12000; Gadget (no history): 1000*10 = 10000.
	assert.Equal(t, int64(1), classifications[0].ItemID)
	assert.InDelta(t, 12000, classifications[0].AnnualValue, 1e-9)
	assert.Equal(t, int64(2), classifications[1].ItemID)
	assert.InDelta(t, 10000, classifications[1].AnnualValue, 1e-9)
}

func TestGenerateABCAnalysisZeroTotalValue(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Name: "Widget", Price: 0, Quantity: 0},
		{ID: 2, Name: "Gadget", Price: 0, Quantity: 0},
	}

	engine := newTestEngine(items, nil)
	classifications := engine.GenerateABCAnalysis()
	require.Len(t, classifications, 2)
	for _, c := range classifications {
		assert.Zero(t, c.CumulativePercentage)
		assert.Equal(t, domain.CategoryA, c.Category)
	}
}
