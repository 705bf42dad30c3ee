package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Worker    WorkerConfig    `yaml:"worker"`
	Fraud     FraudConfig     `yaml:"fraud"`
	Oracle    OracleConfig    `yaml:"oracle"`
	Notify    NotifyConfig    `yaml:"notify"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token validation settings. Tokens are issued by
// the identity service; this backend only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"claims"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// WorkerConfig holds background task queue settings.
type WorkerConfig struct {
	Workers     int           `yaml:"workers"      env:"WORKER_COUNT"        env-default:"4"`
	QueueSize   int           `yaml:"queue_size"   env:"WORKER_QUEUE_SIZE"   env-default:"256"`
	TaskTimeout time.Duration `yaml:"task_timeout" env:"WORKER_TASK_TIMEOUT" env-default:"60s"`
}

// FraudConfig selects and configures the fraud screener.
//
// Mode "rules" uses the built-in keyword screener; "http" calls a remote
// scoring service at BaseURL.
type FraudConfig struct {
	Mode         string        `yaml:"mode"          env:"FRAUD_MODE"          env-default:"rules"`
	BaseURL      string        `yaml:"base_url"      env:"FRAUD_BASE_URL"`
	Timeout      time.Duration `yaml:"timeout"       env:"FRAUD_TIMEOUT"       env-default:"15s"`
	Threshold    float64       `yaml:"threshold"     env:"FRAUD_THRESHOLD"     env-default:"0.7"`
	ModelVersion string        `yaml:"model_version" env:"FRAUD_MODEL_VERSION" env-default:"rules-v1"`
}

// OracleConfig selects and configures the verdict oracle.
//
// Mode "static" always answers StaticVerdict; "http" calls a remote oracle.
type OracleConfig struct {
	Mode          string        `yaml:"mode"           env:"ORACLE_MODE"           env-default:"static"`
	BaseURL       string        `yaml:"base_url"       env:"ORACLE_BASE_URL"`
	Timeout       time.Duration `yaml:"timeout"        env:"ORACLE_TIMEOUT"        env-default:"15s"`
	StaticVerdict string        `yaml:"static_verdict" env:"ORACLE_STATIC_VERDICT" env-default:"pending_review"`
}

// NotifyConfig selects and configures the notifier.
type NotifyConfig struct {
	Mode       string        `yaml:"mode"        env:"NOTIFY_MODE"        env-default:"log"`
	WebhookURL string        `yaml:"webhook_url" env:"NOTIFY_WEBHOOK_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"NOTIFY_TIMEOUT"     env-default:"5s"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled   bool `yaml:"enabled"    env:"RATELIMIT_ENABLED"    env-default:"true"`
	PerMinute int  `yaml:"per_minute" env:"RATELIMIT_PER_MINUTE" env-default:"120"`
	Burst     int  `yaml:"burst"      env:"RATELIMIT_BURST"      env-default:"20"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
