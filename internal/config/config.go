// backend-go/internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	Engine EngineConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type CacheConfig struct {
	Enabled              bool
	RedisURL             string
	RedisHost            string
	RedisPort            string
	RedisPassword        string
	RedisDB              int
	PredictionTTLSeconds int
}

// EngineConfig exposes the forecast engine tunables through the environment
// so deployments can vary cost assumptions without a rebuild.
type EngineConfig struct {
	ServiceLevel     float64
	ForecastPeriods  int
	OrderingCost     float64
	CarryingRate     float64
	StockoutCostRate float64
	LeadTimePeriods  float64
	WorkerCount      int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_PREDICTION_TTL_SECONDS", 60)
		viper.SetDefault("ENGINE_SERVICE_LEVEL", 0.95)
		viper.SetDefault("ENGINE_FORECAST_PERIODS", 3)
		viper.SetDefault("ENGINE_ORDERING_COST", 50.0)
		viper.SetDefault("ENGINE_CARRYING_RATE", 0.25)
		viper.SetDefault("ENGINE_STOCKOUT_COST_RATE", 0.1)
		viper.SetDefault("ENGINE_LEAD_TIME_PERIODS", 1.0)
		viper.SetDefault("ENGINE_WORKER_COUNT", 4)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Cache: CacheConfig{
				Enabled:              viper.GetBool("CACHE_ENABLED"),
				RedisURL:             viper.GetString("REDIS_URL"),
				RedisHost:            viper.GetString("REDIS_HOST"),
				RedisPort:            viper.GetString("REDIS_PORT"),
				RedisPassword:        viper.GetString("REDIS_PASSWORD"),
				RedisDB:              viper.GetInt("REDIS_DB"),
				PredictionTTLSeconds: viper.GetInt("CACHE_PREDICTION_TTL_SECONDS"),
			},
			Engine: EngineConfig{
				ServiceLevel:     viper.GetFloat64("ENGINE_SERVICE_LEVEL"),
				ForecastPeriods:  viper.GetInt("ENGINE_FORECAST_PERIODS"),
				OrderingCost:     viper.GetFloat64("ENGINE_ORDERING_COST"),
				CarryingRate:     viper.GetFloat64("ENGINE_CARRYING_RATE"),
				StockoutCostRate: viper.GetFloat64("ENGINE_STOCKOUT_COST_RATE"),
				LeadTimePeriods:  viper.GetFloat64("ENGINE_LEAD_TIME_PERIODS"),
				WorkerCount:      viper.GetInt("ENGINE_WORKER_COUNT"),
			},
		}
	})

	return instance
}
