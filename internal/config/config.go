package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	BaseURL        string   `mapstructure:"BASE_URL"`
	ResendAPIKey   string   `mapstructure:"RESEND_API_KEY"`
	EmailFrom      string   `mapstructure:"EMAIL_FROM"`
	EmailReplyTo   string   `mapstructure:"EMAIL_REPLY_TO"`
	SalonName      string   `mapstructure:"SALON_NAME"`
	SalonAddress   string   `mapstructure:"SALON_ADDRESS"`
	SalonPhone     string   `mapstructure:"SALON_PHONE"`
	CalendarHost   string   `mapstructure:"CALENDAR_HOST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("EMAIL_FROM", "Peluqueria Blass <onboarding@resend.dev>")
	v.SetDefault("EMAIL_REPLY_TO", "turnos@blassbarberia.com.ar")
	v.SetDefault("SALON_NAME", "Peluqueria Blass")
	v.SetDefault("SALON_ADDRESS", "Av. San Martin 1709, Adrogue")
	v.SetDefault("SALON_PHONE", "(11) 5126-7846")
	v.SetDefault("CALENDAR_HOST", "blass.com.ar")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("BASE_URL")
	v.BindEnv("RESEND_API_KEY")
	v.BindEnv("EMAIL_FROM")
	v.BindEnv("EMAIL_REPLY_TO")
	v.BindEnv("SALON_NAME")
	v.BindEnv("SALON_ADDRESS")
	v.BindEnv("SALON_PHONE")
	v.BindEnv("CALENDAR_HOST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// EmailEnabled reports whether confirmation email delivery is configured.
func (c *Config) EmailEnabled() bool {
	return c.ResendAPIKey != ""
}
