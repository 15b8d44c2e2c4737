package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	DBAutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	AIConfig `mapstructure:",squash"`

	AIRatePerMinute  int `mapstructure:"AI_RATE_PER_MINUTE"`
	AIRateBurst      int `mapstructure:"AI_RATE_BURST"`
	HotCandidatePool int `mapstructure:"HOT_CANDIDATE_POOL"`
}

// AIConfig is the itinerary generation provider setup.
type AIConfig struct {
	Enabled               bool   `mapstructure:"AI_ENABLED"`
	Provider              string `mapstructure:"AI_PROVIDER"`
	APIKey                string `mapstructure:"AI_API_KEY"`
	BaseURL               string `mapstructure:"AI_BASE_URL"`
	Model                 string `mapstructure:"AI_MODEL"`
	ConnectTimeoutSeconds int    `mapstructure:"AI_CONNECT_TIMEOUT_SECONDS"`
	TimeoutSeconds        int    `mapstructure:"AI_TIMEOUT_SECONDS"`
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel           string `mapstructure:"GEMINI_MODEL"`
}

const defaultReadTimeout = 180 * time.Second

// HasAPIKey reports whether a non-blank credential is configured for the active provider.
func (a AIConfig) HasAPIKey() bool {
	return strings.TrimSpace(a.ActiveAPIKey()) != ""
}

func (a AIConfig) ActiveAPIKey() string {
	if strings.EqualFold(a.Provider, "gemini") {
		return a.GeminiAPIKey
	}
	return a.APIKey
}

func (a AIConfig) ConnectTimeout() time.Duration {
	if a.ConnectTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(a.ConnectTimeoutSeconds) * time.Second
}

// ReadTimeout falls back to 180s when no positive timeout is configured.
func (a AIConfig) ReadTimeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return defaultReadTimeout
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c *Config) JWTTTL() time.Duration {
	if c.JWTTTLMinutes <= 0 {
		return 60 * time.Minute
	}
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// Load reads .env (if present), an optional config.yaml and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.AIConfig.APIKey == "" {
		cfg.AIConfig.APIKey = v.GetString("OPENAI_API_KEY")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL_MINUTES", 60)

	v.SetDefault("AI_ENABLED", true)
	v.SetDefault("AI_PROVIDER", "openai")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("AI_BASE_URL", "https://api.openai.com")
	v.SetDefault("AI_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_CONNECT_TIMEOUT_SECONDS", 15)
	v.SetDefault("AI_TIMEOUT_SECONDS", 0)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	v.SetDefault("AI_RATE_PER_MINUTE", 6)
	v.SetDefault("AI_RATE_BURST", 3)
	v.SetDefault("HOT_CANDIDATE_POOL", 50)
}
