package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ServiceDataIngestion = "data_ingestion"
	ServiceQC            = "qc"
	ServicePipeline      = "pipeline"
	ServiceExecution     = "execution"
	ServiceResults       = "results"
	ServiceMonitoring    = "monitoring"
	ServiceAuth          = "auth"
)

type AppConfig struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Registry  RegistryConfig
	Kafka     KafkaConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8000"`
	MetricsPort     string        `envconfig:"METRICS_PORT" default:"9090"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile         string        `envconfig:"LOG_FILE" default:"./log/api-gateway.log"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	Version         string        `envconfig:"APP_VERSION" default:"1.0.0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

type RedisConfig struct {
	Host           string `envconfig:"REDIS_HOST" default:"localhost"`
	Port           int    `envconfig:"REDIS_PORT" default:"6379"`
	Password       string `envconfig:"REDIS_PASSWORD"`
	DB             int    `envconfig:"REDIS_DB" default:"0"`
	MaxConnections int    `envconfig:"REDIS_MAX_CONNECTIONS" default:"20"`
}

type JWTConfig struct {
	SecretKey       string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"60m"`
	RefreshTokenTTL time.Duration `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"720h"`
}

type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	// Backend is "redis" or "memory". The memory backend is per process.
	Backend string `envconfig:"RATE_LIMIT_BACKEND" default:"redis"`
}

type RegistryConfig struct {
	DataIngestionURLs   []string      `envconfig:"DATA_INGESTION_SERVICE_URLS" default:"http://localhost:8001"`
	QCURLs              []string      `envconfig:"QC_SERVICE_URLS" default:"http://localhost:8002"`
	PipelineURLs        []string      `envconfig:"PIPELINE_SERVICE_URLS" default:"http://localhost:8003"`
	ExecutionURLs       []string      `envconfig:"EXECUTION_SERVICE_URLS" default:"http://localhost:8004"`
	ResultsURLs         []string      `envconfig:"RESULTS_SERVICE_URLS" default:"http://localhost:8005"`
	MonitoringURLs      []string      `envconfig:"MONITORING_SERVICE_URLS" default:"http://localhost:8006"`
	AuthURLs            []string      `envconfig:"AUTH_SERVICE_URLS" default:"http://localhost:8007"`
	HealthCheckTimeout  time.Duration `envconfig:"HEALTH_CHECK_TIMEOUT" default:"5s"`
	HealthCheckInterval time.Duration `envconfig:"HEALTH_CHECK_INTERVAL" default:"30s"`
	ForwardTimeout      time.Duration `envconfig:"FORWARD_TIMEOUT" default:"30s"`
	UploadTimeout       time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"300s"`
	MaxForwardAttempts  int           `envconfig:"MAX_FORWARD_ATTEMPTS" default:"1"`
	ServiceRecordTTL    time.Duration `envconfig:"SERVICE_RECORD_TTL" default:"1h"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	HealthTopic string   `envconfig:"KAFKA_HEALTH_TOPIC" default:"gateway.instance-health"`
}

// ServiceURLs returns the configured instance list of every backend service, keyed by service name.
func (r RegistryConfig) ServiceURLs() map[string][]string {
	return map[string][]string{
		ServiceDataIngestion: r.DataIngestionURLs,
		ServiceQC:            r.QCURLs,
		ServicePipeline:      r.PipelineURLs,
		ServiceExecution:     r.ExecutionURLs,
		ServiceResults:       r.ResultsURLs,
		ServiceMonitoring:    r.MonitoringURLs,
		ServiceAuth:          r.AuthURLs,
	}
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
