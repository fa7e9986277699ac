// Package config provides Viper-based configuration loading for the den server.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Enabled turns den persistence on. When false dens live only in memory.
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	// SQLitePath, used only when Enabled is false, persists dens to a single
	// SQLite file instead of keeping them in memory.
	SQLitePath string `mapstructure:"sqlite_path"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Name is the logger name attached to every entry. Optional.
	Name string `mapstructure:"name"`
}

// DenServerConfig holds the den service gRPC and turn settings.
type DenServerConfig struct {
	// GRPCHost is the bind/connect address for the den gRPC service.
	GRPCHost string `mapstructure:"grpc_host"`
	// GRPCPort is the TCP port for the den gRPC service.
	GRPCPort int `mapstructure:"grpc_port"`
	// TurnInterval is the wall-clock length of one game turn. 0 disables the
	// turn clock; turns then only advance through the EndTurn RPC.
	TurnInterval time.Duration `mapstructure:"turn_interval"`
	// HealthInterval is how often the database connection is pinged.
	HealthInterval time.Duration `mapstructure:"health_interval"`
	// MetricsAddr is the "host:port" of the /metrics and /healthz endpoint.
	// Empty disables it.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Addr returns the "host:port" gRPC address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (g DenServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.GRPCHost, g.GRPCPort)
}

// ContentConfig locates the static game content.
type ContentConfig struct {
	// CatalogDir holds the building catalog YAML files.
	CatalogDir string `mapstructure:"catalog_dir"`
	// LayoutFile is the slot layout used for newly created dens.
	LayoutFile string `mapstructure:"layout_file"`
	// UnlockScriptDir holds Lua unlock override scripts. Empty disables scripting.
	UnlockScriptDir string `mapstructure:"unlock_script_dir"`
	// ScriptInstructionLimit bounds each Lua call. 0 uses the scripting default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// EconomyConfig holds the opening stockpile of a new den.
type EconomyConfig struct {
	StartingGold int `mapstructure:"starting_gold"`
	StartingFood int `mapstructure:"starting_food"`
}

// Config is the top-level application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	DenServer DenServerConfig `mapstructure:"denserver"`
	Content   ContentConfig   `mapstructure:"content"`
	Economy   EconomyConfig   `mapstructure:"economy"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Database.Enabled {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDenServer(c.DenServer); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Economy.StartingGold < 0 || c.Economy.StartingFood < 0 {
		errs = append(errs, fmt.Sprintf("economy starting stock must not be negative, got gold=%d food=%d",
			c.Economy.StartingGold, c.Economy.StartingFood))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateDenServer(g DenServerConfig) error {
	var errs []string
	if g.GRPCHost == "" {
		errs = append(errs, "denserver.grpc_host must not be empty")
	}
	if g.GRPCPort < 1 || g.GRPCPort > 65535 {
		errs = append(errs, fmt.Sprintf("denserver.grpc_port must be 1-65535, got %d", g.GRPCPort))
	}
	if g.TurnInterval < 0 {
		errs = append(errs, fmt.Sprintf("denserver.turn_interval must not be negative, got %s", g.TurnInterval))
	}
	if g.MetricsAddr != "" {
		if _, port, err := net.SplitHostPort(g.MetricsAddr); err != nil || port == "" {
			errs = append(errs, fmt.Sprintf("denserver.metrics_addr must be host:port, got %q", g.MetricsAddr))
		}
	}
	if g.HealthInterval < 0 {
		errs = append(errs, fmt.Sprintf("denserver.health_interval must not be negative, got %s", g.HealthInterval))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.CatalogDir == "" {
		errs = append(errs, "content.catalog_dir must not be empty")
	}
	if c.LayoutFile == "" {
		errs = append(errs, "content.layout_file must not be empty")
	}
	if c.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("content.script_instruction_limit must be >= 0, got %d", c.ScriptInstructionLimit))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with GOBLINDEN_ prefix
	v.SetEnvPrefix("GOBLINDEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "goblinden")
	v.SetDefault("database.password", "goblinden")
	v.SetDefault("database.name", "goblinden")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.sqlite_path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("denserver.grpc_host", "127.0.0.1")
	v.SetDefault("denserver.grpc_port", 50061)
	v.SetDefault("denserver.turn_interval", "30s")
	v.SetDefault("denserver.health_interval", "30s")
	v.SetDefault("denserver.metrics_addr", "127.0.0.1:9161")

	v.SetDefault("content.catalog_dir", "content/buildings")
	v.SetDefault("content.layout_file", "content/dens/default.yaml")
	v.SetDefault("content.unlock_script_dir", "content/scripts/unlocks")

	v.SetDefault("economy.starting_gold", 200)
	v.SetDefault("economy.starting_food", 50)
}
