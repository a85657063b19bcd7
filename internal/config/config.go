package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Fetcher  FetcherConfig  `yaml:"fetcher"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
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

// AuthConfig holds JWT validation settings. Tokens are minted by the external
// identity service; this application only validates them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"tweetsight"`
}

// DispatchConfig holds worker pool settings for fetch jobs.
type DispatchConfig struct {
	Workers   int `yaml:"workers"    env:"DISPATCH_WORKERS"    env-default:"4"`
	QueueSize int `yaml:"queue_size" env:"DISPATCH_QUEUE_SIZE" env-default:"64"`
}

// FetcherConfig holds tweet search API client settings.
type FetcherConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"FETCHER_BASE_URL"        env-default:"https://api.twitter.example/2/tweets/search"`
	BearerToken    string        `yaml:"bearer_token"    env:"FETCHER_BEARER_TOKEN"`
	PageSize       int           `yaml:"page_size"       env:"FETCHER_PAGE_SIZE"       env-default:"100"`
	MaxPages       int           `yaml:"max_pages"       env:"FETCHER_MAX_PAGES"       env-default:"50"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"FETCHER_REQUEST_TIMEOUT" env-default:"15s"`
}

// SweepConfig holds the finished-job reconciliation sweep settings.
// Disabled, the registry never clears entries on natural completion and users
// clear them with an explicit stop.
type SweepConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"SWEEP_ENABLED"  env-default:"true"`
	Schedule string `yaml:"schedule" env:"SWEEP_SCHEDULE" env-default:"@every 30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
