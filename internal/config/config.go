package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Log    LogConfig
	Seed   SeedConfig
	Report ReportConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds employee session token settings.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// LogConfig holds logger settings. Format is "console" or "json".
type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig points at an optional seed file. Empty means the embedded seed.
type SeedConfig struct {
	Path string
}

// ReportConfig holds dashboard thresholds.
type ReportConfig struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

// Load reads configuration from an optional file and env. The file is named by
// VENDORHUB_CONFIG; env overrides use prefix VENDORHUB_ (e.g. VENDORHUB_SERVER_PORT).
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	v.SetDefault("auth.jwt_secret", "change-me-vendor-hub-secret")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("seed.path", "")
	v.SetDefault("report.low_stock_threshold", 10)

	v.SetEnvPrefix("VENDORHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath := os.Getenv("VENDORHUB_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// A comma separated env value arrives as a single element.
	if len(c.Server.CORSAllowedOrigins) == 1 && strings.Contains(c.Server.CORSAllowedOrigins[0], ",") {
		c.Server.CORSAllowedOrigins = strings.Split(c.Server.CORSAllowedOrigins[0], ",")
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must be set")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must be set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Report.LowStockThreshold < 0 {
		return fmt.Errorf("report.low_stock_threshold must not be negative")
	}
	return nil
}
