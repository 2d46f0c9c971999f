package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/invensight/backend-go/internal/cache"
	"github.com/invensight/backend-go/internal/config"
	"github.com/invensight/backend-go/internal/domain"
	"github.com/invensight/backend-go/internal/forecast"
	"github.com/invensight/backend-go/internal/repository/memory"
)

// AnalyticsService runs the forecast engine over the current store contents.
// A fresh engine is built from a snapshot on every call; prediction results
// are cached per snapshot so repeated dashboard reads stay cheap.
type AnalyticsService struct {
	store  *memory.Store
	cache  cache.PredictionCache
	params forecast.Params
}

func NewAnalyticsService(store *memory.Store, cacheImpl cache.PredictionCache, params forecast.Params) *AnalyticsService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPredictionCache()
	}
	return &AnalyticsService{store: store, cache: cacheImpl, params: params}
}

// ParamsFromConfig maps the environment-driven engine configuration onto
// forecast parameters, keeping the engine defaults for anything unset.
func ParamsFromConfig(cfg config.EngineConfig) forecast.Params {
	params := forecast.DefaultParams()
	if cfg.ServiceLevel > 0 {
		params.ServiceLevel = cfg.ServiceLevel
	}
	if cfg.ForecastPeriods > 0 {
		params.ForecastPeriods = cfg.ForecastPeriods
	}
	if cfg.OrderingCost > 0 {
		params.OrderingCost = cfg.OrderingCost
	}
	if cfg.CarryingRate > 0 {
		params.CarryingRate = cfg.CarryingRate
	}
	if cfg.StockoutCostRate > 0 {
		params.StockoutCostRate = cfg.StockoutCostRate
	}
	if cfg.LeadTimePeriods > 0 {
		params.LeadTimePeriods = cfg.LeadTimePeriods
	}
	if cfg.WorkerCount > 0 {
		params.WorkerCount = cfg.WorkerCount
	}
	return params
}

func (s *AnalyticsService) engine(snap domain.Snapshot) *forecast.Engine {
	return forecast.NewEngine(snap.Items, snap.Movements, snap.Transactions, forecast.WithParams(s.params))
}

// GetPredictions returns one PredictionResult per item, serving from the
// snapshot cache when possible.
func (s *AnalyticsService) GetPredictions(ctx context.Context) ([]domain.PredictionResult, error) {
	snap := s.store.Snapshot()

	if predictions, ok, err := s.cache.GetPredictions(ctx, snap); err == nil && ok {
		return predictions, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("analytics: cache get predictions failed")
	}

	predictions, err := s.engine(snap).GeneratePredictions(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetPredictions(ctx, snap, predictions); err != nil {
		log.Warn().Err(err).Msg("analytics: cache set predictions failed")
	}

	return predictions, nil
}

// GetOptimization returns the catalog-wide cost model and recommendations.
func (s *AnalyticsService) GetOptimization(ctx context.Context) (domain.InventoryOptimization, error) {
	return s.engine(s.store.Snapshot()).OptimizeInventory(ctx)
}

// GetABCAnalysis returns the value-tier classification for every item.
func (s *AnalyticsService) GetABCAnalysis(ctx context.Context) ([]domain.ABCClassification, error) {
	return s.engine(s.store.Snapshot()).GenerateABCAnalysis(), nil
}

// GetAlerts evaluates the alert rules against the current predictions.
func (s *AnalyticsService) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	snap := s.store.Snapshot()
	engine := s.engine(snap)

	predictions, err := s.GetPredictions(ctx)
	if err != nil {
		return nil, err
	}

	return engine.GeneratePredictiveAlerts(predictions), nil
}
