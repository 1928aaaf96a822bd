package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAdminToken is used when ADMIN_TOKEN is not set. It is not a secret.
const DefaultAdminToken = "insecure-dev-admin-token"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
	Logger   LoggerConfig   `yaml:"logger"`
	Redis    RedisConfig    `yaml:"redis"`
	S3       S3Config       `yaml:"s3"`
	Backup   BackupConfig   `yaml:"backup"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	Mode     string `yaml:"mode"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	Driver          string `yaml:"driver"`
	DSN             string `yaml:"dsn"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime_minutes"`
}

type AdminConfig struct {
	Token string `yaml:"token"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type RedisConfig struct {
	URL     string `yaml:"url"`
	Channel string `yaml:"channel"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type BackupConfig struct {
	Schedule string `yaml:"schedule"`
}

type MetricsConfig struct {
	Schedule string `yaml:"schedule"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     3001,
			Mode:     "debug",
			BasePath: "/api",
		},
		Database: DatabaseConfig{
			Driver:          "sqlite",
			DSN:             "file:feedback.db?_busy_timeout=5000&_foreign_keys=1",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 60,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Redis: RedisConfig{
			Channel: "feedback:events",
		},
		S3: S3Config{
			Region: "ap-northeast-2",
		},
		Metrics: MetricsConfig{
			Schedule: "@every 1m",
		},
	}
}

// Load builds the configuration from defaults, an optional yaml file, an optional
// .env file and the process environment, in that order of precedence (lowest first).
func Load(path string) (*Config, error) {
	cfg := Default()

	// Load from yaml file if exists
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// .env never overrides variables that are already set
	_ = godotenv.Load()

	cfg.applyEnv()

	if cfg.Admin.Token == "" {
		cfg.Admin.Token = DefaultAdminToken
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		c.Admin.Token = token
	}
	if driver := os.Getenv("DATABASE_DRIVER"); driver != "" {
		c.Database.Driver = strings.ToLower(driver)
		if c.Database.Driver == "postgres" && os.Getenv("DATABASE_URL") == "" {
			c.Database.DSN = ""
		}
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		c.Database.DSN = dsn
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logger.Level = level
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		c.S3.Bucket = bucket
	}
	if region := os.Getenv("S3_REGION"); region != "" {
		c.S3.Region = region
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		c.S3.Endpoint = endpoint
	}
	if accessKey := os.Getenv("S3_ACCESS_KEY"); accessKey != "" {
		c.S3.AccessKey = accessKey
	}
	if secretKey := os.Getenv("S3_SECRET_KEY"); secretKey != "" {
		c.S3.SecretKey = secretKey
	}
	if schedule := os.Getenv("BACKUP_SCHEDULE"); schedule != "" {
		c.Backup.Schedule = schedule
	}
	if schedule := os.Getenv("METRICS_SCHEDULE"); schedule != "" {
		c.Metrics.Schedule = schedule
	}
}

// Validate checks values that would otherwise fail much later at startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	return nil
}

// UsesDefaultAdminToken reports whether the insecure development token is active.
func (c *Config) UsesDefaultAdminToken() bool {
	return c.Admin.Token == DefaultAdminToken
}

// BackupEnabled reports whether both a bucket and a schedule are configured.
func (c *Config) BackupEnabled() bool {
	return c.S3.Bucket != "" && c.Backup.Schedule != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
