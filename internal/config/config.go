package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownSinkBackend          = errors.New("unknown sink backend")
)

// Sink backends for completed applications.
const (
	SinkBackendSheets   = "sheets"
	SinkBackendPostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`   // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`     // Telegram API token loaded from environment
	Sink             Sink   `mapstructure:"sink"`  // record sink configuration section
	DB               DB     `mapstructure:"database"`
}

// Sink selects and configures the store receiving application rows.
type Sink struct {
	Backend         string `mapstructure:"backend"`     // "sheets" or "postgres"
	SheetRange      string `mapstructure:"sheet_range"` // A1 range rows are appended after
	SpreadsheetID   string `mapstructure:"-"`           // loaded from environment
	CredentialsFile string `mapstructure:"-"`           // service account key path, loaded from environment
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("sink.backend", SinkBackendSheets)
	v.SetDefault("sink.sheet_range", "Sheet1!A1")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("spreadsheet_id", "SPREADSHEET_ID")
	_ = v.BindEnv("google_credentials_file", "GOOGLE_APPLICATION_CREDENTIALS")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.Sink.SpreadsheetID = v.GetString("spreadsheet_id")
	cfg.Sink.CredentialsFile = v.GetString("google_credentials_file")
	cfg.DB.URL = v.GetString("database_url")

	// Only the configured backend's settings are required.
	switch cfg.Sink.Backend {
	case SinkBackendSheets:
		if cfg.Sink.SpreadsheetID == "" || cfg.Sink.CredentialsFile == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	case SinkBackendPostgres:
		if cfg.DB.URL == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSinkBackend, cfg.Sink.Backend)
	}

	return &cfg, nil
}
