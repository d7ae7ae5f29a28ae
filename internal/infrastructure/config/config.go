package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Shell    ShellConfig    `mapstructure:"shell"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/supplychain")
	}

	v.SetEnvPrefix("SC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// DATABASE_URL without the SC_ prefix is honoured for hosted postgres
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
		if v.GetString("database.type") == "" {
			v.Set("database.type", "postgres")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// AutomaticEnv only resolves keys viper already knows about, so keys with
// no config-file entry are bound explicitly.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"database.type", "database.url", "database.host", "database.port",
		"database.user", "database.password", "database.name", "database.sslmode",
		"database.path",
		"logging.level", "logging.format", "logging.output", "logging.file_path",
		"metrics.enabled", "metrics.host", "metrics.port", "metrics.path",
		"metrics.balance_interval",
		"seed.path", "seed.disabled",
		"shell.prompt", "shell.echo",
	} {
		_ = v.BindEnv(key)
	}
}

// LoadConfigOrDefault loads configuration or returns a default config on error
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns a config with every default applied
func Default() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	return cfg
}

// MustLoadConfig loads configuration and panics on error (for use in main.go)
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
