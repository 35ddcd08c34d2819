package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Operating modes. Prototype serves every request from the generated
// in-memory dataset; development and production go through the HTTP client.
const (
	ModePrototype   = "prototype"
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config represents the complete application configuration
type Config struct {
	Mode     string         `mapstructure:"mode"`
	Server   ServerConfig   `mapstructure:"server"`
	API      APIConfig      `mapstructure:"api"`
	Client   ClientConfig   `mapstructure:"client"`
	Mock     MockConfig     `mapstructure:"mock"`
	Geofence GeofenceConfig `mapstructure:"geofence"`
	Security SecurityConfig `mapstructure:"security"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Features FeaturesConfig `mapstructure:"features"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	GinMode      string        `mapstructure:"gin_mode"` // debug, release, test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// APIConfig holds the outward API surface configuration
type APIConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	WebSocketURL    string        `mapstructure:"websocket_url"`
	MapsKey         string        `mapstructure:"maps_key"`
	RateLimit       int           `mapstructure:"rate_limit"` // requests per minute
	BurstLimit      int           `mapstructure:"burst_limit"`
	PollingInterval time.Duration `mapstructure:"polling_interval"`
	CORS            CORSConfig    `mapstructure:"cors"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ClientConfig tunes the shared HTTP client used in live modes
type ClientConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxAttempts   int           `mapstructure:"max_attempts"`
	RetryBaseWait time.Duration `mapstructure:"retry_base_wait"`
	RetryMaxWait  time.Duration `mapstructure:"retry_max_wait"`
	RetryFactor   float64       `mapstructure:"retry_factor"`
}

// MockConfig sizes the generated dataset
type MockConfig struct {
	UnitsPerLGA       int `mapstructure:"units_per_lga"`
	LocationsPerAgent int `mapstructure:"locations_per_agent"`
	ReportsPerAgent   int `mapstructure:"reports_per_agent"`
	Notifications     int `mapstructure:"notifications"`
	AuditEntries      int `mapstructure:"audit_entries"`
}

// FeaturesConfig toggles optional subsystems
type FeaturesConfig struct {
	WebSocket  bool `mapstructure:"websocket"`
	Simulation bool `mapstructure:"simulation"`
}

// GeofenceConfig holds geofence classification thresholds
type GeofenceConfig struct {
	RadiusMeters float64 `mapstructure:"radius_meters"`
}

// SecurityConfig holds auth-related configuration
type SecurityConfig struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	AccessTokenTTL    time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL   time.Duration `mapstructure:"refresh_token_ttl"`
	PasswordMinLength int           `mapstructure:"password_min_length"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, text
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// Per-mode fallbacks used when neither config file nor environment
// provides base URLs.
var modeDefaults = map[string]struct{ api, ws string }{
	ModePrototype:   {"http://localhost:8080/v1", "ws://localhost:8080/v1/ws"},
	ModeDevelopment: {"http://localhost:4000/v1", "ws://localhost:4000/v1/ws"},
	ModeProduction:  {"https://api.electionmonitor.ng/v1", "wss://api.electionmonitor.ng/v1/ws"},
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	setDefaults()

	viper.SetConfigFile(configPath)

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("MONITOR")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
		// Config file not found; defaults and env vars carry the load
	}

	overrideWithEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	applyModeDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("mode", ModePrototype)

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.gin_mode", "debug")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "60s")

	// API defaults
	viper.SetDefault("api.rate_limit", 100)
	viper.SetDefault("api.burst_limit", 200)
	viper.SetDefault("api.polling_interval", "30s")
	viper.SetDefault("api.cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:8080"})

	// HTTP client defaults
	viper.SetDefault("client.timeout", "30s")
	viper.SetDefault("client.max_attempts", 3)
	viper.SetDefault("client.retry_base_wait", "500ms")
	viper.SetDefault("client.retry_max_wait", "10s")
	viper.SetDefault("client.retry_factor", 2.0)

	// Mock dataset defaults
	viper.SetDefault("mock.units_per_lga", 5)
	viper.SetDefault("mock.locations_per_agent", 10)
	viper.SetDefault("mock.reports_per_agent", 2)
	viper.SetDefault("mock.notifications", 40)
	viper.SetDefault("mock.audit_entries", 60)

	// Geofence defaults
	viper.SetDefault("geofence.radius_meters", 200.0)

	// Feature defaults
	viper.SetDefault("features.websocket", true)
	viper.SetDefault("features.simulation", true)

	// Security defaults
	viper.SetDefault("security.access_token_ttl", "1h")
	viper.SetDefault("security.refresh_token_ttl", "168h")
	viper.SetDefault("security.password_min_length", 8)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.file", "./logs/app.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 28)
	viper.SetDefault("logging.compress", true)
}

// overrideWithEnvVars overrides config with specific environment variables
func overrideWithEnvVars() {
	// Critical environment variables that should always override config
	envMappings := map[string]string{
		"APP_MODE":       "mode",
		"API_BASE_URL":   "api.base_url",
		"WS_BASE_URL":    "api.websocket_url",
		"MAPS_API_KEY":   "api.maps_key",
		"JWT_SECRET":     "security.jwt_secret",
		"SERVER_PORT":    "server.port",
		"LOG_LEVEL":      "logging.level",
		"CLIENT_TIMEOUT": "client.timeout",
	}

	for envVar, configKey := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			viper.Set(configKey, value)
		}
	}
}

// applyModeDefaults fills base URLs from the per-mode fallback table
func applyModeDefaults(config *Config) {
	defaults, ok := modeDefaults[config.Mode]
	if !ok {
		return
	}
	if config.API.BaseURL == "" {
		config.API.BaseURL = defaults.api
	}
	if config.API.WebSocketURL == "" {
		config.API.WebSocketURL = defaults.ws
	}
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	switch config.Mode {
	case ModePrototype, ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("mode must be one of prototype, development, production (got %q)", config.Mode)
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Security.JWTSecret == "" {
		if config.Mode == ModeProduction {
			return fmt.Errorf("JWT secret is required in production mode")
		}
		config.Security.JWTSecret = "prototype-insecure-secret"
	}

	if !config.IsPrototype() && config.API.BaseURL == "" {
		return fmt.Errorf("api base URL is required outside prototype mode")
	}

	if config.Client.MaxAttempts < 1 {
		return fmt.Errorf("client max attempts must be at least 1")
	}

	if config.Geofence.RadiusMeters <= 0 {
		return fmt.Errorf("geofence radius must be positive")
	}

	if config.Mock.UnitsPerLGA < 1 {
		config.Mock.UnitsPerLGA = 1
	}

	return nil
}

// IsPrototype returns true if the mock store backs all services
func (c *Config) IsPrototype() bool {
	return c.Mode == ModePrototype
}

// IsProduction returns true if running against the production backend
func (c *Config) IsProduction() bool {
	return c.Mode == ModeProduction
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// SanitizeForLogging returns a copy of the config with sensitive data redacted
func (c *Config) SanitizeForLogging() *Config {
	sanitized := *c

	if sanitized.Security.JWTSecret != "" {
		sanitized.Security.JWTSecret = "[REDACTED]"
	}

	if sanitized.API.MapsKey != "" {
		sanitized.API.MapsKey = "[REDACTED]"
	}

	return &sanitized
}
