package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/invensight/backend-go/internal/domain"
)

// writePredictionsCSV writes predictions as a flat CSV for spreadsheet
// review, one row per item.
func writePredictionsCSV(path string, predictions []domain.PredictionResult) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	headers := []string{
		"item_id",
		"item_name",
		"current_stock",
		"predicted_demand",
		"reorder_point",
		"order_quantity",
		"stockout_risk",
		"days_until_stockout",
		"confidence",
		"seasonal_factor",
		"trend_factor",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, p := range predictions {
		rec := []string{
			fmt.Sprintf("%d", p.ItemID),
			p.ItemName,
			fmt.Sprintf("%d", p.CurrentStock),
			fmt.Sprintf("%.2f", p.PredictedDemand),
			fmt.Sprintf("%d", p.ReorderPoint),
			fmt.Sprintf("%d", p.OrderQuantity),
			fmt.Sprintf("%.2f", p.StockoutRisk),
			fmt.Sprintf("%.2f", p.DaysUntilStockout),
			fmt.Sprintf("%.2f", p.Confidence),
			fmt.Sprintf("%.4f", p.SeasonalFactor),
			fmt.Sprintf("%.4f", p.TrendFactor),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return nil
}
