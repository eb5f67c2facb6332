package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Store     StoreConfig
	Messaging MessagingConfig
	Metrics   MetricsConfig
	Sentry    SentryConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
	Enabled  bool
}

type AuthConfig struct {
	TokenSecret     string
	Issuer          string
	BootstrapAdmins []string
}

type StoreConfig struct {
	Driver string
}

type MessagingConfig struct {
	PollInterval time.Duration
}

type MetricsConfig struct {
	Prefix         string
	ReportInterval time.Duration
}

type SentryConfig struct {
	DSN string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// env names per config key; they match the variables the service has always read.
var envBindings = map[string]string{
	"app.name":                    "APP_NAME",
	"app.env":                     "APP_ENV",
	"app.http_port":               "HTTP_PORT",
	"app.log_level":               "LOG_LEVEL",
	"database.host":               "DB_HOST",
	"database.port":               "DB_PORT",
	"database.name":               "DB_NAME",
	"database.user":               "DB_USER",
	"database.password":           "DB_PASSWORD",
	"database.ssl_mode":           "DB_SSL_MODE",
	"database.connect_timeout":    "DB_CONNECT_TIMEOUT",
	"database.pool_max_conns":     "DB_POOL_MAX_CONNS",
	"database.pool_min_conns":     "DB_POOL_MIN_CONNS",
	"database.pool_max_lifetime":  "DB_POOL_MAX_CONN_LIFETIME",
	"database.pool_max_idle_time": "DB_POOL_MAX_CONN_IDLE_TIME",
	"database.pool_health_check":  "DB_POOL_HEALTH_CHECK_PERIOD",
	"redis.enabled":               "REDIS_ENABLED",
	"redis.host":                  "REDIS_HOST",
	"redis.port":                  "REDIS_PORT",
	"redis.password":              "REDIS_PASSWORD",
	"redis.db":                    "REDIS_DB",
	"redis.ttl":                   "REDIS_TTL",
	"auth.token_secret":           "AUTH_TOKEN_SECRET",
	"auth.issuer":                 "AUTH_ISSUER",
	"auth.bootstrap_admins":       "AUTH_BOOTSTRAP_ADMINS",
	"store.driver":                "STORE_DRIVER",
	"messaging.poll_interval":     "MESSAGE_POLL_INTERVAL",
	"metrics.prefix":              "METRICS_PREFIX",
	"metrics.report_interval":     "METRICS_REPORT_INTERVAL",
	"sentry.dsn":                  "SENTRY_DSN",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "info")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.ttl", 600*time.Second)
	v.SetDefault("store.driver", StoreDriverPostgres)
	v.SetDefault("messaging.poll_interval", 10*time.Second)
	v.SetDefault("metrics.prefix", "skillswap")
	v.SetDefault("metrics.report_interval", time.Second)
}

// Load reads an optional YAML file (CONFIG_FILE, or configs/config.yaml) and
// lets environment variables override it.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetConfigType("yaml")
	if file := strings.TrimSpace(os.Getenv("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, envBindings[key])
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := Config{}
	cfg.App = AppConfig{
		AppName:     req("app.name"),
		Environment: req("app.env"),
		HTTPPort:    req("app.http_port"),
		LogLevel:    opt("app.log_level"),
	}

	cfg.Store = StoreConfig{Driver: strings.ToLower(opt("store.driver"))}
	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}

	dbField := opt
	if cfg.Store.Driver == StoreDriverPostgres {
		dbField = req
	}
	cfg.Database = DatabaseConfig{
		DBHost:                dbField("database.host"),
		DBPort:                dbField("database.port"),
		DBName:                dbField("database.name"),
		DBUser:                dbField("database.user"),
		DBPassword:            v.GetString("database.password"),
		DBSSLMode:             opt("database.ssl_mode"),
		ConnectTimeout:        v.GetDuration("database.connect_timeout"),
		PoolMaxConns:          v.GetInt32("database.pool_max_conns"),
		PoolMinConns:          v.GetInt32("database.pool_min_conns"),
		PoolMaxConnLifetime:   v.GetDuration("database.pool_max_lifetime"),
		PoolMaxConnIdleTime:   v.GetDuration("database.pool_max_idle_time"),
		PoolHealthCheckPeriod: v.GetDuration("database.pool_health_check"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("redis.enabled"),
		Host:     opt("redis.host"),
		Port:     opt("redis.port"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		TTL:      v.GetDuration("redis.ttl"),
	}

	cfg.Auth = AuthConfig{
		TokenSecret:     req("auth.token_secret"),
		Issuer:          opt("auth.issuer"),
		BootstrapAdmins: splitList(v.GetString("auth.bootstrap_admins")),
	}

	cfg.Messaging = MessagingConfig{PollInterval: v.GetDuration("messaging.poll_interval")}
	cfg.Metrics = MetricsConfig{
		Prefix:         opt("metrics.prefix"),
		ReportInterval: v.GetDuration("metrics.report_interval"),
	}
	cfg.Sentry = SentryConfig{DSN: opt("sentry.dsn")}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if cfg.Messaging.PollInterval <= 0 {
		return Config{}, fmt.Errorf("MESSAGE_POLL_INTERVAL must be positive")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, p := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
