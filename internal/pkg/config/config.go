package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file (local environment only) and then resolves
// every setting from the process environment with defaults.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "local")

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	setDefaults(v)
	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "campusride-rides")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "campusride")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NSQD_ADDRESS", "localhost:4150")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("NOTIFIER_DRIVER", "nats")

	v.SetDefault("JWT_ISSUER", "campusride-auth")

	v.SetDefault("FARE_BASE", 30.0)
	v.SetDefault("FARE_PER_KM", 15.0)
	v.SetDefault("FARE_PER_MINUTE", 2.0)
	v.SetDefault("FARE_SURGE_MULTIPLIER", 1.5)
	v.SetDefault("FARE_SURGE_WINDOWS", "7-9,17-19")
	v.SetDefault("FARE_TIMEZONE", "Asia/Dhaka")
	v.SetDefault("FARE_CURRENCY", "BDT")

	v.SetDefault("RIDES_OFFER_WINDOW", "5m")
	v.SetDefault("RIDES_DEFAULT_MAX_WAIT", 10)
	v.SetDefault("RIDES_SWEEP_INTERVAL", "30s")
	v.SetDefault("RIDES_SWEEP_BATCH_SIZE", 500)
	v.SetDefault("RIDES_NEARBY_RADIUS_KM", 5.0)
	v.SetDefault("RIDES_NEARBY_MAX_RESULTS", 20)
	v.SetDefault("RIDES_TRACKING_RATE_LIMIT", 60)

	v.SetDefault("PROFILE_SERVICE_URL", "http://localhost:8001")
	v.SetDefault("PROFILE_TIMEOUT", "3s")
	v.SetDefault("PROFILE_CACHE_TTL", "15s")
	v.SetDefault("PROFILE_BREAKER_FAILURES", 5)
	v.SetDefault("PROFILE_BREAKER_TIMEOUT", "30s")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_LOGS_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.ConnMaxLifetime = v.GetDuration("DB_CONN_MAX_LIFETIME")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Messaging config
	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NSQ.NSQDAddress = v.GetString("NSQD_ADDRESS")
	configs.Kafka.Brokers = splitList(v.GetString("KAFKA_BROKERS"))
	configs.Notifier.Driver = strings.ToLower(v.GetString("NOTIFIER_DRIVER"))

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Fare config
	configs.Fare.BaseFare = v.GetFloat64("FARE_BASE")
	configs.Fare.PerKmRate = v.GetFloat64("FARE_PER_KM")
	configs.Fare.PerMinuteRate = v.GetFloat64("FARE_PER_MINUTE")
	configs.Fare.SurgeMultiplier = v.GetFloat64("FARE_SURGE_MULTIPLIER")
	configs.Fare.SurgeWindows = v.GetString("FARE_SURGE_WINDOWS")
	configs.Fare.Timezone = v.GetString("FARE_TIMEZONE")
	configs.Fare.Currency = v.GetString("FARE_CURRENCY")

	// Rides config
	configs.Rides.OfferWindow = durationOr(v.GetDuration("RIDES_OFFER_WINDOW"), 5*time.Minute)
	configs.Rides.DefaultMaxWait = v.GetInt("RIDES_DEFAULT_MAX_WAIT")
	configs.Rides.SweepInterval = durationOr(v.GetDuration("RIDES_SWEEP_INTERVAL"), 30*time.Second)
	configs.Rides.SweepBatchSize = v.GetInt("RIDES_SWEEP_BATCH_SIZE")
	configs.Rides.NearbyRadiusKm = v.GetFloat64("RIDES_NEARBY_RADIUS_KM")
	configs.Rides.NearbyMaxResult = v.GetInt("RIDES_NEARBY_MAX_RESULTS")
	configs.Rides.TrackingRateLimit = v.GetInt("RIDES_TRACKING_RATE_LIMIT")

	// Profile collaborator
	configs.Profile.ServiceURL = strings.TrimRight(v.GetString("PROFILE_SERVICE_URL"), "/")
	configs.Profile.APIKey = v.GetString("PROFILE_API_KEY")
	configs.Profile.Timeout = durationOr(v.GetDuration("PROFILE_TIMEOUT"), 3*time.Second)
	configs.Profile.CacheTTL = v.GetDuration("PROFILE_CACHE_TTL")
	configs.Profile.BreakerFailures = v.GetInt("PROFILE_BREAKER_FAILURES")
	configs.Profile.BreakerTimeout = durationOr(v.GetDuration("PROFILE_BREAKER_TIMEOUT"), 30*time.Second)

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Metrics config
	configs.Metrics.Enabled = v.GetBool("METRICS_ENABLED")
	configs.Metrics.Path = v.GetString("METRICS_PATH")

	return configs
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
