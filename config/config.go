package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Meeting scheduler specifics
	GoogleOAuth GoogleOAuthConfig
	Calendar    CalendarConfig
	Scheduler   SchedulerConfig

	// Local development tunnel
	Ngrok NgrokConfig
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

// GoogleOAuthConfig is the OAuth client registration. Endpoint URLs are
// normally left empty (Google's endpoints apply) and only overridden in
// local setups.
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string

	AuthURL   string
	TokenURL  string
	RevokeURL string
}

// CalendarConfig tunes the Calendar API client.
type CalendarConfig struct {
	RatePerSecond float64
	RateBurst     int
}

// NgrokConfig enables deriving the OAuth redirect URI from an ngrok tunnel
// in local development, where Google rejects plain-localhost redirects.
type NgrokConfig struct {
	Enabled bool
	APIBase string
}

// SchedulerConfig tunes the slot finder and orchestrator.
type SchedulerConfig struct {
	Timezone            string
	StepMinutes         int
	MaxSlotAttempts     int
	SummaryTemplate     string
	DescriptionTemplate string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google OAuth client
	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.RedirectURI = viper.GetString("google_oauth.redirect_uri")
	cfg.GoogleOAuth.AuthURL = viper.GetString("google_oauth.auth_url")
	cfg.GoogleOAuth.TokenURL = viper.GetString("google_oauth.token_url")
	cfg.GoogleOAuth.RevokeURL = viper.GetString("google_oauth.revoke_url")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.GoogleOAuth.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.GoogleOAuth.ClientSecret = clientSecret
	}
	if redirectURI := viper.GetString("google_redirect_uri"); redirectURI != "" {
		cfg.GoogleOAuth.RedirectURI = redirectURI
	}

	var scopes []string
	if rawScopes := viper.GetString("google_oauth.scopes"); rawScopes != "" {
		for _, scope := range strings.Split(rawScopes, ",") {
			scope = strings.TrimSpace(scope)
			if scope != "" {
				scopes = append(scopes, scope)
			}
		}
	}
	cfg.GoogleOAuth.Scopes = scopes

	// Calendar API client
	cfg.Calendar.RatePerSecond = viper.GetFloat64("calendar.rate_per_second")
	cfg.Calendar.RateBurst = viper.GetInt("calendar.rate_burst")

	// Ngrok tunnel
	cfg.Ngrok.Enabled = viper.GetBool("ngrok.enabled")
	cfg.Ngrok.APIBase = viper.GetString("ngrok.api_base")

	// Scheduler
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.StepMinutes = viper.GetInt("scheduler.step_minutes")
	cfg.Scheduler.MaxSlotAttempts = viper.GetInt("scheduler.max_slot_attempts")
	cfg.Scheduler.SummaryTemplate = viper.GetString("scheduler.summary_template")
	cfg.Scheduler.DescriptionTemplate = viper.GetString("scheduler.description_template")
	if timezone := viper.GetString("scheduler_timezone"); timezone != "" {
		cfg.Scheduler.Timezone = timezone
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_oauth.scopes", "https://www.googleapis.com/auth/calendar")

	viper.SetDefault("ngrok.enabled", false)
	viper.SetDefault("ngrok.api_base", "http://127.0.0.1:4040")

	viper.SetDefault("calendar.rate_per_second", 5)
	viper.SetDefault("calendar.rate_burst", 10)

	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.step_minutes", 15)
	viper.SetDefault("scheduler.max_slot_attempts", 50)
	viper.SetDefault("scheduler.summary_template", "Intro call with {name}")
	viper.SetDefault("scheduler.description_template", "Scheduled meeting with {name}.")
}
