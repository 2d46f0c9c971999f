package forecast

// Params holds the engine tunables. The defaults mirror the cost model the
// rest of the application assumes; tests vary individual fields.
type Params struct {
	// HistoryMonths is the length of the trailing monthly demand series.
	HistoryMonths int
	// SeasonalPeriod is the cycle length used for seasonal decomposition.
	SeasonalPeriod int
	// ForecastPeriods is how many future periods PredictDemand covers.
	ForecastPeriods int
	// ServiceLevel is the target fill rate for safety stock sizing.
	ServiceLevel float64
	// LeadTimePeriods is the replenishment lead time, in demand periods.
	LeadTimePeriods float64
	// OrderingCost is the fixed cost per purchase order, in currency units.
	OrderingCost float64
	// CarryingRate is the annual carrying cost as a fraction of unit price.
	CarryingRate float64
	// StockoutCostRate weights stockout risk into a value-exposure cost.
	StockoutCostRate float64
	// WorkerCount bounds the per-item fan-out in GeneratePredictions.
	WorkerCount int
}

// DefaultParams returns the standard engine configuration.
func DefaultParams() Params {
	return Params{
		HistoryMonths:    12,
		SeasonalPeriod:   12,
		ForecastPeriods:  3,
		ServiceLevel:     0.95,
		LeadTimePeriods:  1,
		OrderingCost:     50,
		CarryingRate:     0.25,
		StockoutCostRate: 0.1,
		WorkerCount:      4,
	}
}

// zScore maps a service level to a safety factor. The coarse three-bucket
// table is kept as-is for compatibility with the historical numbers; it is
// not a continuous normal-quantile lookup.
func zScore(serviceLevel float64) float64 {
	switch serviceLevel {
	case 0.99:
		return 2.33
	case 0.95:
		return 1.645
	default:
		return 1.28
	}
}
