package forecast

import (
	"context"
	"fmt"
	"sort"

	"github.com/invensight/backend-go/internal/domain"
)

var priorityRank = map[domain.RecommendationPriority]int{
	domain.PriorityHigh:   0,
	domain.PriorityMedium: 1,
	domain.PriorityLow:    2,
}

// OptimizeInventory models carrying, ordering and stockout costs across the
// catalog and derives one increase/decrease/maintain recommendation per
// item. Recommendations come back sorted by descending priority; ties keep
// the item snapshot order, so identical input yields identical output.
func (e *Engine) OptimizeInventory(ctx context.Context) (domain.InventoryOptimization, error) {
	predictions, err := e.GeneratePredictions(ctx)
	if err != nil {
		return domain.InventoryOptimization{}, err
	}

	opt := domain.InventoryOptimization{
		Recommendations: make([]domain.Recommendation, 0, len(e.items)),
	}

	for i, item := range e.items {
		pred := predictions[i]

		opt.TotalCarryingCost += float64(item.Quantity) * item.Price * e.params.CarryingRate
		if pred.OrderQuantity > 0 {
			ordersPerYear := pred.PredictedDemand * 12 / float64(pred.OrderQuantity)
			opt.TotalOrderingCost += ordersPerYear * e.params.OrderingCost
		}
		opt.TotalStockoutCost += pred.StockoutRisk * item.Price * e.params.StockoutCostRate

		rec := recommendFor(item, pred)
		opt.OptimizedInventoryValue += float64(rec.RecommendedLevel) * item.Price
		opt.Recommendations = append(opt.Recommendations, rec)
	}

	// Stable: ties preserve per-item iteration order.
	sort.SliceStable(opt.Recommendations, func(a, b int) bool {
		return priorityRank[opt.Recommendations[a].Priority] < priorityRank[opt.Recommendations[b].Priority]
	})

	return opt, nil
}

// recommendFor applies the restocking policy, first match wins.
func recommendFor(item domain.Item, pred domain.PredictionResult) domain.Recommendation {
	switch {
	case item.Quantity < pred.ReorderPoint:
		priority := domain.PriorityMedium
		if pred.StockoutRisk > 50 {
			priority = domain.PriorityHigh
		}
		return domain.Recommendation{
			ItemID:           item.ID,
			Action:           domain.ActionIncrease,
			CurrentLevel:     item.Quantity,
			RecommendedLevel: pred.ReorderPoint + pred.OrderQuantity,
			Reasoning:        fmt.Sprintf("Stock %d is below the reorder point %d", item.Quantity, pred.ReorderPoint),
			Priority:         priority,
		}
	case item.Quantity > 2*pred.OrderQuantity:
		return domain.Recommendation{
			ItemID:           item.ID,
			Action:           domain.ActionDecrease,
			CurrentLevel:     item.Quantity,
			RecommendedLevel: pred.OrderQuantity,
			Reasoning:        fmt.Sprintf("Stock %d exceeds twice the economic order quantity %d", item.Quantity, pred.OrderQuantity),
			Priority:         domain.PriorityMedium,
		}
	default:
		return domain.Recommendation{
			ItemID:           item.ID,
			Action:           domain.ActionMaintain,
			CurrentLevel:     item.Quantity,
			RecommendedLevel: item.Quantity,
			Reasoning:        "Stock level is within the optimal range",
			Priority:         domain.PriorityLow,
		}
	}
}
