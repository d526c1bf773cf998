package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	PosthogAPIKey  string
	LoginRateLimit string // ulule formatted rate, e.g. "5-M"

	// Ledger
	DefaultPrimaryCurrency string
	DisplayLocale          string
	LedgerCacheSize        int
	LedgerCacheTTL         time.Duration // how long a loaded household ledger is trusted
	StrictConversion       bool
}

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "household-ledger"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:4321")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("DEFAULT_PRIMARY_CURRENCY", "ARS")
	v.SetDefault("DISPLAY_LOCALE", "es-AR")
	v.SetDefault("LEDGER_CACHE_SIZE", 256)
	v.SetDefault("LEDGER_CACHE_TTL", "1m")
	v.SetDefault("STRICT_CONVERSION", false)

	// Values from .env are already in the process environment; real env vars override them.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}

	cfg.GoogleClientID = v.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = v.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = v.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth is not fully configured. Google sign-in will not function.")
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")

	cfg.DefaultPrimaryCurrency = v.GetString("DEFAULT_PRIMARY_CURRENCY")
	if cfg.DefaultPrimaryCurrency == "" {
		cfg.DefaultPrimaryCurrency = "ARS"
	}
	cfg.DisplayLocale = v.GetString("DISPLAY_LOCALE")
	cfg.LedgerCacheSize = v.GetInt("LEDGER_CACHE_SIZE")
	if cfg.LedgerCacheSize <= 0 {
		log.Printf("Warning: Invalid LEDGER_CACHE_SIZE (%d). Defaulting to 256.\n", cfg.LedgerCacheSize)
		cfg.LedgerCacheSize = 256
	}
	ttlStr := v.GetString("LEDGER_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = time.Minute
		log.Printf("Warning: Invalid value for LEDGER_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.LedgerCacheTTL = ttl
	cfg.StrictConversion = v.GetBool("STRICT_CONVERSION")

	return cfg, nil
}
