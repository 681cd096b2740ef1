package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"db"`
	CoffeeDB  CoffeeDBConfig  `mapstructure:"coffee_db"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	CoffeePort   int           `mapstructure:"coffee_port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	BodyLimit    int           `mapstructure:"body_limit"`
}

// DBConfig holds the Oracle connection used by the trivia service.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
}

// CoffeeDBConfig holds the PostgreSQL connection used by the coffee-shop service.
type CoffeeDBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type LoggerConfig struct {
	Env        string `mapstructure:"env"`
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// AuthConfig describes the identity provider that signs coffee-shop tokens.
type AuthConfig struct {
	Domain     string   `mapstructure:"domain"`
	Audience   string   `mapstructure:"audience"`
	Algorithms []string `mapstructure:"algorithms"`
}

type CORSConfig struct {
	AllowOrigins string `mapstructure:"allow_origins"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.coffee_port", 5001)
	v.SetDefault("server.read_timeout", 20*time.Second)
	v.SetDefault("server.write_timeout", 20*time.Second)
	v.SetDefault("server.idle_timeout", 20*time.Second)
	v.SetDefault("server.body_limit", 4*1024*1024)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.name", "TRIVIA")

	v.SetDefault("coffee_db.host", "localhost")
	v.SetDefault("coffee_db.port", 5432)
	v.SetDefault("coffee_db.name", "coffee")
	v.SetDefault("coffee_db.sslmode", "disable")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)

	v.SetDefault("auth.domain", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("auth.algorithms", []string{"RS256"})

	v.SetDefault("cors.allow_origins", "*")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 20)
	v.SetDefault("rate_limit.burst", 40)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.collector_endpoint", "http://localhost:14268/api/traces")

	v.SetDefault("metrics.enabled", true)

	// AutomaticEnv only reaches keys viper already knows about.
	for _, key := range []string{"db.user", "db.password", "coffee_db.user", "coffee_db.password", "logger.file"} {
		v.SetDefault(key, "")
	}
}

// LoadConfig reads config.yaml (if any), a .env file (if any) and the
// environment. Environment variables win, with dots mapped to underscores:
// DB_HOST overrides db.host.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// TriviaDSN returns the go-ora connection URL for the trivia database.
func (c *Config) TriviaDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		url.PathEscape(c.DB.User),
		url.PathEscape(c.DB.Password),
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// CoffeeDSN returns the libpq-style keyword DSN for the coffee-shop database.
func (c *Config) CoffeeDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.CoffeeDB.Host,
		c.CoffeeDB.Port,
		c.CoffeeDB.User,
		c.CoffeeDB.Password,
		c.CoffeeDB.DBName,
		c.CoffeeDB.SSLMode,
	)
}

// Issuer is the token issuer expected from the identity provider.
func (a AuthConfig) Issuer() string {
	return fmt.Sprintf("https://%s/", a.Domain)
}

// JWKSURL is where the identity provider publishes its signing keys.
func (a AuthConfig) JWKSURL() string {
	return fmt.Sprintf("https://%s/.well-known/jwks.json", a.Domain)
}
