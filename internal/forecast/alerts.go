package forecast

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/invensight/backend-go/internal/domain"
)

// Alert rule thresholds.
const (
	alertStockoutRiskThreshold = 70
	alertConfidenceThreshold   = 70
)

// GeneratePredictiveAlerts evaluates each prediction against the alert
// rules. The rules are independent: one item can produce several alerts.
func (e *Engine) GeneratePredictiveAlerts(predictions []domain.PredictionResult) []domain.Alert {
	alerts := make([]domain.Alert, 0)

	for _, pred := range predictions {
		if pred.StockoutRisk > alertStockoutRiskThreshold {
			alerts = append(alerts, domain.Alert{
				ID:       uuid.NewString(),
				Type:     "prediction",
				Severity: domain.SeverityHigh,
				Title:    "High stockout risk",
				Message: fmt.Sprintf("%s has a %.0f%% stockout risk within %.0f days",
					pred.ItemName, pred.StockoutRisk, pred.DaysUntilStockout),
				ItemID:         pred.ItemID,
				ActionRequired: true,
			})
		}

		if pred.Confidence < alertConfidenceThreshold {
			alerts = append(alerts, domain.Alert{
				ID:       uuid.NewString(),
				Type:     "prediction",
				Severity: domain.SeverityMedium,
				Title:    "Low forecast confidence",
				Message: fmt.Sprintf("Demand forecast for %s has only %.0f%% confidence",
					pred.ItemName, pred.Confidence),
				ItemID:         pred.ItemID,
				ActionRequired: false,
			})
		}

		if pred.CurrentStock <= pred.ReorderPoint {
			alerts = append(alerts, domain.Alert{
				ID:       uuid.NewString(),
				Type:     "prediction",
				Severity: domain.SeverityCritical,
				Title:    "Stock at reorder point",
				Message: fmt.Sprintf("%s is at %d units, at or below its reorder point of %d",
					pred.ItemName, pred.CurrentStock, pred.ReorderPoint),
				ItemID:         pred.ItemID,
				ActionRequired: true,
			})
		}
	}

	return alerts
}
