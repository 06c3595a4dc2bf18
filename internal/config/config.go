// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment selects the logger setup ("development" or "production").
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps request bodies.
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the portals allowed to call the API cross-origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://127.0.0.1:3000" env-separator:"," yaml:"allowedOrigins"` //nolint: lll
		// RiverUI mounts the job dashboard under /riverui/ when enabled.
		RiverUI bool `env:"HTTP_RIVER_UI" env-default:"true" yaml:"riverUI"`
	} `yaml:"http"`

	RateLimit struct {
		// RPS is the sustained number of requests per second allowed per client IP. Zero disables limiting.
		RPS float64 `env:"RATE_LIMIT_RPS" env-default:"20" yaml:"rps"`
		// Burst is the number of requests a client may send at once.
		Burst int `env:"RATE_LIMIT_BURST" env-default:"40" yaml:"burst"`
		// IdleTTL is how long an idle client's bucket is kept.
		IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" env-default:"10m" yaml:"idleTTL"`
	} `yaml:"rateLimit"`

	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"foodtrace" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	JWT struct {
		// PrivateKey is the PEM encoded RSA key used to sign access tokens.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify access tokens.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is the lifetime of issued access tokens.
		TTL time.Duration `env:"JWT_TTL" env-default:"30m" yaml:"ttl"`
	} `yaml:"jwt"`

	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"100" yaml:"maxWorkers"`
		// RecallNoticeMaxAttempts bounds the retries of a recall notice job.
		RecallNoticeMaxAttempts int `env:"WORKER_RECALL_NOTICE_MAX_ATTEMPTS" env-default:"10" yaml:"recallNoticeMaxAttempts"` //nolint: lll
	} `yaml:"worker"`

	Kafka struct {
		// Brokers to publish events to. When empty, events are written to the log.
		Brokers []string `env:"KAFKA_BROKERS" env-separator:"," yaml:"brokers"`
		// RecallTopic receives product.recalled events.
		RecallTopic string `env:"KAFKA_RECALL_TOPIC" env-default:"foodtrace.recalls" yaml:"recallTopic"`
		// WriteTimeout bounds a single publish.
		WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" env-default:"10s" yaml:"writeTimeout"`
	} `yaml:"kafka"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
