package forecast

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/invensight/backend-go/internal/domain"
)

// stockoutHorizonDays is the window inside which stockout risk is non-zero.
const stockoutHorizonDays = 30

// noStockoutSentinel marks items whose predicted demand is zero, meaning no
// foreseeable stockout.
const noStockoutSentinel = 999

// GeneratePredictions rolls up the full per-item analysis: averaged demand
// forecast, reorder point, order quantity, stockout risk and the seasonal
// and trend factors. Items are processed concurrently; the result slice is
// in item snapshot order regardless of scheduling.
func (e *Engine) GeneratePredictions(ctx context.Context) ([]domain.PredictionResult, error) {
	results := make([]domain.PredictionResult, len(e.items))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount())
	for i, item := range e.items {
		g.Go(func() error {
			results[i] = e.predictItem(item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) predictItem(item domain.Item) domain.PredictionResult {
	forecasts := e.PredictDemand(item.ID, e.params.ForecastPeriods)

	var avgDemand, avgConfidence float64
	if len(forecasts) > 0 {
		var demandSum, confidenceSum float64
		for _, f := range forecasts {
			demandSum += float64(f.PredictedDemand)
			confidenceSum += f.Confidence
		}
		avgDemand = demandSum / float64(len(forecasts))
		avgConfidence = confidenceSum / float64(len(forecasts))
	}

	daysUntilStockout := float64(noStockoutSentinel)
	if avgDemand > 0 {
		daysUntilStockout = float64(item.Quantity) / (avgDemand / stockoutHorizonDays)
	}

	var stockoutRisk float64
	if daysUntilStockout < stockoutHorizonDays {
		stockoutRisk = (stockoutHorizonDays - daysUntilStockout) / stockoutHorizonDays * 100
		if stockoutRisk < 0 {
			stockoutRisk = 0
		}
	}

	seasonalFactor := 1.0
	trendFactor := 0.0
	if series, ok := e.history[item.ID]; ok && len(series) > 0 {
		seasonal := seasonalIndices(series, e.params.SeasonalPeriod)
		seasonalFactor = seasonal[len(seasonal)-1]
		trendFactor, _ = linearTrend(series)
	}

	return domain.PredictionResult{
		ItemID:            item.ID,
		ItemName:          item.Name,
		CurrentStock:      item.Quantity,
		PredictedDemand:   avgDemand,
		ReorderPoint:      e.CalculateReorderPoint(item),
		OrderQuantity:     e.CalculateEOQ(item, 0),
		StockoutRisk:      stockoutRisk,
		DaysUntilStockout: daysUntilStockout,
		Confidence:        avgConfidence,
		SeasonalFactor:    seasonalFactor,
		TrendFactor:       trendFactor,
	}
}

func (e *Engine) workerCount() int {
	if e.params.WorkerCount < 1 {
		return 1
	}
	return e.params.WorkerCount
}
