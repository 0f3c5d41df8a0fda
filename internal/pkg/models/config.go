package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	Kafka    KafkaConfig
	Notifier NotifierConfig
	JWT      JWTConfig
	Fare     FareConfig
	Rides    RidesConfig
	Profile  ProfileConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Metrics  MetricsConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxConns        int
	IdleConns       int
	ConnMaxLifetime time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address used by the nsq notifier driver
type NSQConfig struct {
	NSQDAddress string
}

// KafkaConfig contains the brokers used by the kafka notifier driver
type KafkaConfig struct {
	Brokers []string
}

// NotifierConfig selects the ride event transport: nats, nsq, kafka or none
type NotifierConfig struct {
	Driver string
}

// JWTConfig contains JWT validation configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// FareConfig holds the tariff used by the fare estimator
type FareConfig struct {
	BaseFare        float64
	PerKmRate       float64
	PerMinuteRate   float64
	SurgeMultiplier float64
	// SurgeWindows is a list of "start-end" hour ranges, e.g. "7-9,17-19"
	SurgeWindows string
	Timezone     string
	Currency     string
}

// RidesConfig contains ride matching configuration
type RidesConfig struct {
	OfferWindow     time.Duration
	DefaultMaxWait  int
	SweepInterval   time.Duration
	SweepBatchSize  int
	NearbyRadiusKm  float64
	NearbyMaxResult int
	// TrackingRateLimit caps tracking samples per driver per minute
	TrackingRateLimit int
}

// ProfileConfig points at the profile collaborator used for nearby drivers
type ProfileConfig struct {
	ServiceURL string
	APIKey     string
	Timeout    time.Duration
	CacheTTL   time.Duration

	// consecutive failed lookups that open the breaker, and how long it stays open
	BreakerFailures int
	BreakerTimeout  time.Duration
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool
	Path    string
}
