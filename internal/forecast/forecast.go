package forecast

import (
	"math"

	"github.com/invensight/backend-go/internal/domain"
)

const (
	confidenceCeiling = 95
	confidenceFloor   = 60
)

// PredictDemand forecasts demand for the next periods (the configured
// default when periods <= 0). Each period combines the last observed level,
// the OLS trend and the seasonal index projected forward; confidence decays
// with horizon and historical volatility but never drops below the floor.
// An item with no history forecasts zero demand at zero confidence.
func (e *Engine) PredictDemand(itemID int64, periods int) []domain.DemandForecast {
	if periods <= 0 {
		periods = e.params.ForecastPeriods
	}

	series := e.history[itemID]
	forecasts := make([]domain.DemandForecast, 0, periods)

	if len(series) == 0 {
		for i := 0; i < periods; i++ {
			forecasts = append(forecasts, domain.DemandForecast{
				Period:        i + 1,
				SeasonalIndex: 1,
			})
		}
		return forecasts
	}

	level := series[len(series)-1]
	slope, _ := linearTrend(series)
	seasonal := seasonalIndices(series, e.params.SeasonalPeriod)
	variance := sampleVariance(series)
	n := len(series)

	for i := 0; i < periods; i++ {
		idx := seasonal[(n+i)%e.params.SeasonalPeriod]
		predicted := (level + slope*float64(i+1)) * idx
		if predicted < 0 {
			predicted = 0
		}

		confidence := confidenceCeiling - variance/100 - float64(i)*5
		if confidence < confidenceFloor {
			confidence = confidenceFloor
		}

		forecasts = append(forecasts, domain.DemandForecast{
			Period:          i + 1,
			PredictedDemand: int(math.Round(predicted)),
			Confidence:      confidence,
			SeasonalIndex:   idx,
			TrendComponent:  slope,
		})
	}
	return forecasts
}

// CalculateReorderPoint sizes the reorder point as expected lead-time demand
// plus safety stock at the configured service level. An item with no demand
// history falls back to its configured minimum stock.
func (e *Engine) CalculateReorderPoint(item domain.Item) int {
	series := e.history[item.ID]
	if len(series) == 0 {
		return item.MinStock
	}

	avg := mean(series)
	sd := stdDev(series)
	leadTime := e.params.LeadTimePeriods

	leadTimeDemand := avg * leadTime
	safetyStock := zScore(e.params.ServiceLevel) * sd * math.Sqrt(leadTime)

	rop := math.Round(leadTimeDemand + safetyStock)
	if rop < 0 {
		rop = 0
	}
	return int(rop)
}

// CalculateEOQ computes the economic order quantity. A non-positive
// annualDemand derives 12x the average monthly demand from the item's
// history. A zero-priced item has no carrying cost to balance, so the
// formula degrades to one month of demand.
func (e *Engine) CalculateEOQ(item domain.Item, annualDemand float64) int {
	if annualDemand <= 0 {
		annualDemand = mean(e.history[item.ID]) * 12
	}

	holdingCost := item.Price * e.params.CarryingRate
	if holdingCost == 0 {
		return int(math.Round(annualDemand / 12))
	}

	eoq := math.Sqrt(2 * annualDemand * e.params.OrderingCost / holdingCost)
	if eoq < 0 || math.IsNaN(eoq) {
		return 0
	}
	return int(math.Round(eoq))
}
