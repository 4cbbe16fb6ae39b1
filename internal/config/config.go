package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided. A missing file is not an error.
	DefaultConfigPath = "config.yml"

	defaultPort            = 8080
	defaultEnv             = "development"
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "nc_games"
	defaultDBSSLMode       = "disable"
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 100
	defaultConnMaxLifetime = time.Hour
)

type Config struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "test" | "production"
	LogLevel       string         `yaml:"log_level"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Database       DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"sslmode"`
	Migrate         bool          `yaml:"migrate"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

func defaults() *Config {
	return &Config{
		Port:           defaultPort,
		Env:            defaultEnv,
		AllowedOrigins: []string{"*"},
		Database: DatabaseConfig{
			Host:            defaultDBHost,
			Port:            defaultDBPort,
			User:            defaultDBUser,
			Name:            defaultDBName,
			SSLMode:         defaultDBSSLMode,
			MaxIdleConns:    defaultMaxIdleConns,
			MaxOpenConns:    defaultMaxOpenConns,
			ConnMaxLifetime: defaultConnMaxLifetime,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides (a .env file in the working directory is loaded first).
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		c.Env = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = splitList(v)
	}

	db := &c.Database
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		db.URL = v
	}
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		db.Host = v
	}
	if v, ok := os.LookupEnv("DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		db.Port = port
	}
	if v, ok := os.LookupEnv("DB_USER"); ok {
		db.User = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		db.Password = v
	}
	if v, ok := os.LookupEnv("DB_NAME"); ok {
		db.Name = v
	}
	if v, ok := os.LookupEnv("DB_SSLMODE"); ok {
		db.SSLMode = v
	}
	if v, ok := os.LookupEnv("DB_MIGRATE"); ok {
		db.Migrate = v == "true" || v == "1"
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.Database.URL != "" {
		if _, err := url.Parse(c.Database.URL); err != nil {
			return fmt.Errorf("invalid database url: %w", err)
		}
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// DSN returns the connection string, preferring an explicit URL.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
