package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingClientCredentials is returned by LoadAuthHelper when the OAuth
// client id or secret is absent.
var ErrMissingClientCredentials = errors.New("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar service specifics
	Google          GoogleConfig
	CalendarID      string
	DefaultTimezone string
	Upstream        UpstreamConfig
	RateLimit       RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	OAuthPort    int
	AuthURL      string // empty means Google's
	TokenURL     string // empty means Google's
	// CalendarEndpoint overrides the Calendar API base URL.
	CalendarEndpoint string
}

type UpstreamConfig struct {
	Timeout time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// Load loads the event service configuration.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// Environment variables win, e.g. GOOGLE_CLIENT_ID for google.client_id.
// Missing Google credentials are not an error here; requests fail instead.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = getString(v, "environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = getString(v, "http_server.mode")
	cfg.Logger.Level = getString(v, "logger.level")
	cfg.Logger.Mode = getString(v, "logger.mode")
	cfg.Logger.Encoding = getString(v, "logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Google
	cfg.Google = loadGoogle(v)
	cfg.CalendarID = getString(v, "calendar_id")
	cfg.DefaultTimezone = getString(v, "default_timezone")
	cfg.Upstream.Timeout = v.GetDuration("upstream.timeout")

	// Rate limit
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	if cfg.HTTPServer.Port <= 0 {
		return nil, fmt.Errorf("invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	if cfg.Upstream.Timeout <= 0 {
		return nil, fmt.Errorf("invalid upstream.timeout %s", cfg.Upstream.Timeout)
	}

	return cfg, nil
}

// LoadAuthHelper loads the configuration of the one-time OAuth helper. Client
// id and secret are mandatory.
func LoadAuthHelper() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	cfg.Logger.Level = getString(v, "logger.level")
	cfg.Logger.Mode = getString(v, "logger.mode")
	cfg.Logger.Encoding = getString(v, "logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Google = loadGoogle(v)
	cfg.Upstream.Timeout = v.GetDuration("upstream.timeout")

	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		return nil, ErrMissingClientCredentials
	}
	if cfg.Google.OAuthPort <= 0 {
		return nil, fmt.Errorf("invalid google.oauth_port %d", cfg.Google.OAuthPort)
	}

	return cfg, nil
}

func newViper() (*viper.Viper, error) {
	// A .env next to the binary is optional.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

func loadGoogle(v *viper.Viper) GoogleConfig {
	return GoogleConfig{
		ClientID:         getString(v, "google.client_id"),
		ClientSecret:     getString(v, "google.client_secret"),
		RefreshToken:     getString(v, "google.refresh_token"),
		OAuthPort:        v.GetInt("google.oauth_port"),
		AuthURL:          getString(v, "google.auth_url"),
		TokenURL:         getString(v, "google.token_url"),
		CalendarEndpoint: getString(v, "google.calendar_endpoint"),
	}
}

func getString(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Registered so AutomaticEnv picks them up even without a config file.
	v.SetDefault("google.client_id", "")
	v.SetDefault("google.client_secret", "")
	v.SetDefault("google.refresh_token", "")
	v.SetDefault("google.auth_url", "")
	v.SetDefault("google.token_url", "")
	v.SetDefault("google.calendar_endpoint", "")
	v.SetDefault("google.oauth_port", 8787)

	v.SetDefault("calendar_id", "primary")
	v.SetDefault("default_timezone", "America/Los_Angeles")
	v.SetDefault("upstream.timeout", "20s")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.per_min", 60)
}
