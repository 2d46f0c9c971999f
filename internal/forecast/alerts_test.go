package forecast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invensight/backend-go/internal/domain"
)

func TestGeneratePredictiveAlertsRules(t *testing.T) {
	engine := newTestEngine(nil, nil)

	predictions := []domain.PredictionResult{
		// Trips both the risk and the reorder-point rules.
		{
			ItemID:            1,
			ItemName:          "Widget",
			CurrentStock:      2,
			ReorderPoint:      10,
			StockoutRisk:      80,
			DaysUntilStockout: 6,
			Confidence:        90,
		},
		// Low confidence only.
		{
			ItemID:       2,
			ItemName:     "Gadget",
			CurrentStock: 100,
			ReorderPoint: 20,
			StockoutRisk: 0,
			Confidence:   0,
		},
		// Healthy: no alerts.
		{
			ItemID:       3,
			ItemName:     "Bolt",
			CurrentStock: 50,
			ReorderPoint: 10,
			StockoutRisk: 20,
			Confidence:   90,
		},
	}

	alerts := engine.GeneratePredictiveAlerts(predictions)
	require.Len(t, alerts, 3)

	risk := alerts[0]
	assert.Equal(t, int64(1), risk.ItemID)
	assert.Equal(t, domain.SeverityHigh, risk.Severity)
	assert.True(t, risk.ActionRequired)
	assert.Contains(t, risk.Message, "Widget")
	assert.Contains(t, risk.Message, "80%")

	reorder := alerts[1]
	assert.Equal(t, int64(1), reorder.ItemID)
	assert.Equal(t, domain.SeverityCritical, reorder.Severity)
	assert.True(t, reorder.ActionRequired)
	assert.Contains(t, reorder.Message, "reorder point")

	confidence := alerts[2]
	assert.Equal(t, int64(2), confidence.ItemID)
	assert.Equal(t, domain.SeverityMedium, confidence.Severity)
	assert.False(t, confidence.ActionRequired)

	seen := map[string]bool{}
	for _, a := range alerts {
		assert.Equal(t, "prediction", a.Type)
		assert.NotEmpty(t, a.ID)
		assert.False(t, seen[a.ID], "alert IDs must be unique")
		seen[a.ID] = true
	}
}

func TestGeneratePredictiveAlertsThresholdsAreExclusive(t *testing.T) {
	engine := newTestEngine(nil, nil)

	// Exactly at the risk and confidence thresholds, above the reorder
	// point: nothing fires.
	predictions := []domain.PredictionResult{
		{
			ItemID:       1,
			ItemName:     "Widget",
			CurrentStock: 11,
			ReorderPoint: 10,
			StockoutRisk: 70,
			Confidence:   70,
		},
	}

	assert.Empty(t, engine.GeneratePredictiveAlerts(predictions))
}

func TestGeneratePredictiveAlertsEndToEnd(t *testing.T) {
	// Low stock with steady demand fires the risk and reorder rules off
	// real predictions.
	item := domain.Item{ID: 1, Name: "Widget", Price: 10, Quantity: 2, MinStock: 8}
	engine := newTestEngine([]domain.Item{item}, flatDemand("Widget", 10))

	predictions, err := engine.GeneratePredictions(context.Background())
	require.NoError(t, err)

	alerts := engine.GeneratePredictiveAlerts(predictions)
	require.Len(t, alerts, 2)
	assert.Equal(t, domain.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, domain.SeverityCritical, alerts[1].Severity)
}
