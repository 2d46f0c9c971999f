package forecast

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invensight/backend-go/internal/domain"
)

func TestGeneratePredictionsFlatDemandScenario(t *testing.T) {
	item := domain.Item{ID: 1, Name: "Widget", Price: 10, Quantity: 5, MinStock: 8}
	engine := newTestEngine([]domain.Item{item}, flatDemand("Widget", 10))

	predictions, err := engine.GeneratePredictions(context.Background())
	require.NoError(t, err)
	require.Len(t, predictions, 1)

	pred := predictions[0]
	assert.Equal(t, int64(1), pred.ItemID)
	assert.Equal(t, 5, pred.CurrentStock)
	assert.InDelta(t, 10, pred.PredictedDemand, 1e-9)
	assert.Equal(t, 10, pred.ReorderPoint)
	assert.Equal(t, 69, pred.OrderQuantity)
	// 5 units at 10/month: 15 days of cover, half the 30-day horizon.
	assert.InDelta(t, 15, pred.DaysUntilStockout, 1e-9)
	assert.InDelta(t, 50, pred.StockoutRisk, 1e-9)
	assert.InDelta(t, 90, pred.Confidence, 1e-9)
	assert.InDelta(t, 1, pred.SeasonalFactor, 1e-9)
	assert.InDelta(t, 0, pred.TrendFactor, 1e-9)
}

func TestGeneratePredictionsNoDemandSentinel(t *testing.T) {
	item := domain.Item{ID: 1, Name: "Widget", Price: 5, Quantity: 100, MinStock: 20}
	engine := newTestEngine([]domain.Item{item}, nil)

	predictions, err := engine.GeneratePredictions(context.Background())
	require.NoError(t, err)
	require.Len(t, predictions, 1)

	pred := predictions[0]
	assert.InDelta(t, 999, pred.DaysUntilStockout, 1e-9)
	assert.Zero(t, pred.StockoutRisk)
	assert.Zero(t, pred.Confidence)
	assert.Equal(t, 20, pred.ReorderPoint)
	assert.Zero(t, pred.OrderQuantity)
}

func TestGeneratePredictionsRiskScalesInsideHorizon(t *testing.T) {
	// 2 units at 10/month is 6 days of cover: risk 80.
	item := domain.Item{ID: 1, Name: "Widget", Price: 10, Quantity: 2, MinStock: 8}
	engine := newTestEngine([]domain.Item{item}, flatDemand("Widget", 10))

	predictions, err := engine.GeneratePredictions(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 6, predictions[0].DaysUntilStockout, 1e-9)
	assert.InDelta(t, 80, predictions[0].StockoutRisk, 1e-9)
}

func TestGeneratePredictionsPreservesItemOrder(t *testing.T) {
	items := make([]domain.Item, 0, 50)
	txs := make([]domain.Transaction, 0, 50)
	for i := 1; i <= 50; i++ {
		name := fmt.Sprintf("item-%03d", i)
		items = append(items, domain.Item{ID: int64(i), Name: name, Price: 10, Quantity: i})
		txs = append(txs, flatDemand(name, i)...)
	}

	engine := newTestEngine(items, txs)
	predictions, err := engine.GeneratePredictions(context.Background())
	require.NoError(t, err)
	require.Len(t, predictions, 50)
	for i, pred := range predictions {
		assert.Equal(t, items[i].ID, pred.ItemID)
		assert.Equal(t, items[i].Name, pred.ItemName)
	}
}

func TestGeneratePredictionsDeterministic(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Name: "Widget", Price: 10, Quantity: 5, MinStock: 8},
		{ID: 2, Name: "Gadget", Price: 25, Quantity: 40, MinStock: 10},
	}
	txs := append(flatDemand("Widget", 10), monthlyOutbound("Gadget", []int{1, 4, 2, 8, 5, 7, 3, 9, 6, 2, 4, 8})...)

	first, err := newTestEngine(items, txs).GeneratePredictions(context.Background())
	require.NoError(t, err)
	second, err := newTestEngine(items, txs).GeneratePredictions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
