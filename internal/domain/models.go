// backend-go/internal/domain/models.go
package domain

// TransactionType distinguishes stock receipts from stock issues.
type TransactionType string

const (
	TransactionInbound  TransactionType = "Inbound"
	TransactionOutbound TransactionType = "Outbound"
)

// Item is an inventory item as maintained by the CRUD layer. The analytics
// engine treats it as read-only input.
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	MinStock int     `json:"min_stock"`
}

// StockMovement is an opaque pass-through record. The engine accepts it in
// its constructor for interface parity with the CRUD layer but does not read
// it during any computation.
type StockMovement struct {
	ID       int64  `json:"id"`
	ItemName string `json:"item_name"`
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// Transaction is a dated stock movement in or out of inventory. ItemName is
// free text, not a foreign key; matching against items is by case-insensitive
// substring (see the forecast package).
type Transaction struct {
	ID       int64           `json:"id"`
	Date     string          `json:"date"` // ISO-8601 date
	ItemName string          `json:"item_name"`
	Type     TransactionType `json:"type"`
	Quantity int             `json:"quantity"`
}

// DemandForecast is a single future period of a demand forecast.
type DemandForecast struct {
	Period          int     `json:"period"` // 1-based forecast horizon
	PredictedDemand int     `json:"predicted_demand"`
	Confidence      float64 `json:"confidence"` // 0 or [60,95]
	SeasonalIndex   float64 `json:"seasonal_index"`
	TrendComponent  float64 `json:"trend_component"`
}

// PredictionResult is the canonical per-item analytics output.
type PredictionResult struct {
	ItemID            int64   `json:"item_id"`
	ItemName          string  `json:"item_name"`
	CurrentStock      int     `json:"current_stock"`
	PredictedDemand   float64 `json:"predicted_demand"`
	ReorderPoint      int     `json:"recommended_reorder_point"`
	OrderQuantity     int     `json:"recommended_order_quantity"`
	StockoutRisk      float64 `json:"stockout_risk"` // 0-100
	DaysUntilStockout float64 `json:"days_until_stockout"`
	Confidence        float64 `json:"confidence"`
	SeasonalFactor    float64 `json:"seasonal_factor"`
	TrendFactor       float64 `json:"trend_factor"`
}

// RecommendationAction is the restocking action for an item.
type RecommendationAction string

const (
	ActionIncrease RecommendationAction = "increase"
	ActionDecrease RecommendationAction = "decrease"
	ActionMaintain RecommendationAction = "maintain"
)

// RecommendationPriority orders recommendations for review.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Recommendation is a single restocking recommendation.
type Recommendation struct {
	ItemID           int64                  `json:"item_id"`
	Action           RecommendationAction   `json:"action"`
	CurrentLevel     int                    `json:"current_level"`
	RecommendedLevel int                    `json:"recommended_level"`
	Reasoning        string                 `json:"reasoning"`
	Priority         RecommendationPriority `json:"priority"`
}

// InventoryOptimization aggregates cost modeling across the whole catalog.
type InventoryOptimization struct {
	TotalCarryingCost       float64          `json:"total_carrying_cost"`
	TotalOrderingCost       float64          `json:"total_ordering_cost"`
	TotalStockoutCost       float64          `json:"total_stockout_cost"`
	OptimizedInventoryValue float64          `json:"optimized_inventory_value"`
	Recommendations         []Recommendation `json:"recommendations"`
}

// ABCCategory is a Pareto value tier.
type ABCCategory string

const (
	CategoryA ABCCategory = "A"
	CategoryB ABCCategory = "B"
	CategoryC ABCCategory = "C"
)

// ABCClassification places one item in a value tier.
type ABCClassification struct {
	ItemID               int64       `json:"item_id"`
	ItemName             string      `json:"item_name"`
	AnnualValue          float64     `json:"annual_value"`
	Category             ABCCategory `json:"category"`
	CumulativePercentage float64     `json:"cumulative_percentage"`
}

// AlertSeverity ranks predictive alerts.
type AlertSeverity string

const (
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Snapshot is a consistent copy of every record collection, taken at one
// point in time. The forecast engine is constructed from a Snapshot.
type Snapshot struct {
	Items        []Item          `json:"items"`
	Movements    []StockMovement `json:"movements"`
	Transactions []Transaction   `json:"transactions"`
}

// Alert is a derived notification produced from prediction results.
type Alert struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"` // always "prediction"
	Severity       AlertSeverity `json:"severity"`
	Title          string        `json:"title"`
	Message        string        `json:"message"`
	ItemID         int64         `json:"item_id"`
	ActionRequired bool          `json:"action_required"`
}
