package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Ledger LedgerConfig `yaml:"ledger" mapstructure:"ledger"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the upload server.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	MaxUploadMB int      `yaml:"max_upload_mb" mapstructure:"max_upload_mb"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per second
	RateBurst   int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// LedgerConfig describes the bank ledger export layout.
type LedgerConfig struct {
	SkipRows    int    `yaml:"skip_rows" mapstructure:"skip_rows"`
	CSVEncoding string `yaml:"csv_encoding" mapstructure:"csv_encoding"`
}

// StoreConfig configures the report download cache.
type StoreConfig struct {
	DSN              string `yaml:"dsn" mapstructure:"dsn"`
	ReportTTLMinutes int    `yaml:"report_ttl_minutes" mapstructure:"report_ttl_minutes"`
}

// ReportConfig configures CLI report output.
type ReportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_upload_mb", 20)
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("ledger.skip_rows", 9)
	v.SetDefault("ledger.csv_encoding", "euc-kr")
	v.SetDefault("store.dsn", "file::memory:")
	v.SetDefault("store.report_ttl_minutes", 60)
	v.SetDefault("report.dir", ".")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

// Validate checks the settings a command needs. mode is "reconcile" or "serve".
func (c *Config) Validate(mode string) error {
	var problems []string

	if c.Ledger.SkipRows < 0 {
		problems = append(problems, "ledger.skip_rows must not be negative")
	}
	switch strings.ToLower(c.Ledger.CSVEncoding) {
	case "", "utf-8", "utf8", "euc-kr", "euckr", "cp949", "uhc":
	default:
		problems = append(problems, "ledger.csv_encoding must be utf-8 or euc-kr")
	}

	if mode == "serve" {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be between 1 and 65535")
		}
		if c.Server.MaxUploadMB <= 0 {
			problems = append(problems, "server.max_upload_mb must be positive")
		}
		if c.Server.RateLimit <= 0 || c.Server.RateBurst <= 0 {
			problems = append(problems, "server.rate_limit and server.rate_burst must be positive")
		}
		if c.Store.DSN == "" {
			problems = append(problems, "store.dsn is required")
		}
		if c.Store.ReportTTLMinutes <= 0 {
			problems = append(problems, "store.report_ttl_minutes must be positive")
		}
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}
