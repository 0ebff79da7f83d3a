package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Record source types selectable via [record_source]
const (
	RecordSourceHTTP     = "http"
	RecordSourcePostgres = "postgres"
)

// Config is the full service configuration loaded from config.toml
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	RecordSource RecordSourceConfig `toml:"record_source"`
	RecordStore  RecordStoreConfig  `toml:"recordstore"`
	Database     DatabaseConfig     `toml:"database"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RecordSourceConfig selects where business/employee/appointment records
// are read from: the json-server style HTTP store or Postgres
type RecordSourceConfig struct {
	Type string `toml:"type"`
}

// RecordStoreConfig configures the HTTP record store client
type RecordStoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load reads the configuration file and applies environment overrides.
// A .env file next to the binary is loaded first (best effort) so local
// runs can override database credentials without touching config.toml.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("RECORDSTORE_URL"); v != "" {
		cfg.RecordStore.URL = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return errors.New("config: server.http_port must be positive")
	}

	switch c.RecordSource.Type {
	case RecordSourceHTTP:
		if c.RecordStore.URL == "" {
			return errors.New("config: recordstore.url is required for record_source.type=http")
		}
	case RecordSourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("config: database.host and database.dbname are required for record_source.type=postgres")
		}
	default:
		return fmt.Errorf("config: unknown record_source.type %q", c.RecordSource.Type)
	}

	return nil
}
