package forecast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invensight/backend-go/internal/domain"
)

func TestOptimizeInventoryRecommendationPolicy(t *testing.T) {
	items := []domain.Item{
		// Below reorder point with 80% stockout risk: increase, high.
		{ID: 1, Name: "Widget", Price: 10, Quantity: 2, MinStock: 8},
		// Above twice the EOQ (EOQ 0 with no demand): decrease, medium.
		{ID: 2, Name: "Gadget", Price: 5, Quantity: 100, MinStock: 20},
		// Between reorder point and twice the EOQ: maintain, low.
		{ID: 3, Name: "Bolt", Price: 10, Quantity: 50, MinStock: 5},
	}
	txs := append(flatDemand("Widget", 10), flatDemand("Bolt", 10)...)

	engine := newTestEngine(items, txs)
	opt, err := engine.OptimizeInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, opt.Recommendations, 3)

	// Sorted by descending priority.
	increase := opt.Recommendations[0]
	decrease := opt.Recommendations[1]
	maintain := opt.Recommendations[2]

	assert.Equal(t, int64(1), increase.ItemID)
	assert.Equal(t, domain.ActionIncrease, increase.Action)
	assert.Equal(t, domain.PriorityHigh, increase.Priority)
	assert.Equal(t, 2, increase.CurrentLevel)
	// Reorder point 10 plus EOQ 69.
	assert.Equal(t, 79, increase.RecommendedLevel)

	assert.Equal(t, int64(2), decrease.ItemID)
	assert.Equal(t, domain.ActionDecrease, decrease.Action)
	assert.Equal(t, domain.PriorityMedium, decrease.Priority)
	assert.Equal(t, 0, decrease.RecommendedLevel)

	assert.Equal(t, int64(3), maintain.ItemID)
	assert.Equal(t, domain.ActionMaintain, maintain.Action)
	assert.Equal(t, domain.PriorityLow, maintain.Priority)
	assert.Equal(t, 50, maintain.RecommendedLevel)

	// Optimized value: 79*10 + 0*5 + 50*10
	assert.InDelta(t, 1290, opt.OptimizedInventoryValue, 1e-9)
}

func TestOptimizeInventoryIncreaseAtModerateRiskIsMedium(t *testing.T) {
	// 15 days of cover gives risk exactly 50, which does not clear the
	// high-priority bar.
	items := []domain.Item{{ID: 1, Name: "Widget", Price: 10, Quantity: 5, MinStock: 8}}
	engine := newTestEngine(items, flatDemand("Widget", 10))

	opt, err := engine.OptimizeInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, opt.Recommendations, 1)
	assert.Equal(t, domain.ActionIncrease, opt.Recommendations[0].Action)
	assert.Equal(t, domain.PriorityMedium, opt.Recommendations[0].Priority)
}

func TestOptimizeInventoryCostTotals(t *testing.T) {
	items := []domain.Item{{ID: 1, Name: "Widget", Price: 10, Quantity: 5, MinStock: 8}}
	engine := newTestEngine(items, flatDemand("Widget", 10))

	opt, err := engine.OptimizeInventory(context.Background())
	require.NoError(t, err)

	// Carrying: 5 * 10 * 0.25
	assert.InDelta(t, 12.5, opt.TotalCarryingCost, 1e-9)
	// Ordering: (10*12/69) * 50
	assert.InDelta(t, 120.0/69.0*50.0, opt.TotalOrderingCost, 1e-9)
	// Stockout: risk 50 * 10 * 0.1
	assert.InDelta(t, 50, opt.TotalStockoutCost, 1e-9)
}

func TestOptimizeInventoryPrioritySortIsStable(t *testing.T) {
	// Three maintain items: ties must keep snapshot order.
	items := []domain.Item{
		{ID: 7, Name: "Alpha", Price: 10, Quantity: 50},
		{ID: 3, Name: "Beta", Price: 10, Quantity: 50},
		{ID: 9, Name: "Gamma", Price: 10, Quantity: 50},
	}
	txs := append(flatDemand("Alpha", 10), append(flatDemand("Beta", 10), flatDemand("Gamma", 10)...)...)

	engine := newTestEngine(items, txs)
	opt, err := engine.OptimizeInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, opt.Recommendations, 3)
	assert.Equal(t, int64(7), opt.Recommendations[0].ItemID)
	assert.Equal(t, int64(3), opt.Recommendations[1].ItemID)
	assert.Equal(t, int64(9), opt.Recommendations[2].ItemID)
}
