package forecast

import (
	"sort"

	"github.com/invensight/backend-go/internal/domain"
)

// ABC cumulative-value thresholds (Pareto 80/15/5 split).
const (
	abcThresholdA = 80
	abcThresholdB = 95
)

// GenerateABCAnalysis classifies items by their share of total annualized
// value. Items are ranked by descending annual value; the running cumulative
// percentage assigns A up to 80%, B up to 95% and C for the tail. An item
// without demand history annualizes its current stock instead.
func (e *Engine) GenerateABCAnalysis() []domain.ABCClassification {
	classifications := make([]domain.ABCClassification, 0, len(e.items))

	var totalValue float64
	for _, item := range e.items {
		monthlyDemand := float64(item.Quantity) / 12
		if series, ok := e.history[item.ID]; ok && len(series) > 0 {
			monthlyDemand = mean(series)
		}
		annualValue := monthlyDemand * 12 * item.Price
		totalValue += annualValue
		classifications = append(classifications, domain.ABCClassification{
			ItemID:      item.ID,
			ItemName:    item.Name,
			AnnualValue: annualValue,
		})
	}

	sort.SliceStable(classifications, func(a, b int) bool {
		return classifications[a].AnnualValue > classifications[b].AnnualValue
	})

	var running float64
	for i := range classifications {
		before := 0.0
		if totalValue > 0 {
			before = running / totalValue * 100
		}
		running += classifications[i].AnnualValue
		pct := 0.0
		if totalValue > 0 {
			pct = running / totalValue * 100
		}
		classifications[i].CumulativePercentage = pct

		// The item that crosses a threshold belongs to the higher class,
		// so the top-ranked item is always A no matter how concentrated
		// the catalog is.
		switch {
		case before < abcThresholdA:
			classifications[i].Category = domain.CategoryA
		case before < abcThresholdB:
			classifications[i].Category = domain.CategoryB
		default:
			classifications[i].Category = domain.CategoryC
		}
	}

	return classifications
}
