package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	RateSourceFixed = "fixed"
	RateSourceLive  = "live"

	DefaultNBPAPIURL = "https://api.nbp.pl/api/exchangerates/tables/A?format=json"

	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	StorageDriver  string
	MigrationsPath string

	DefaultEventBalance  decimal.Decimal
	DefaultEventCurrency string
	BoxDeletePolicy      string

	RateSource       string
	NBPAPIURL        string
	RateFetchTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RateCacheTTL  time.Duration

	AuthEnabled bool
	JWTSecret   string

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DEFAULT_EVENT_BALANCE", "0")
	viper.SetDefault("DEFAULT_EVENT_CURRENCY", "PLN")
	viper.SetDefault("BOX_DELETE_POLICY", "discard")
	viper.SetDefault("RATE_SOURCE", RateSourceLive)
	viper.SetDefault("NBP_API_URL", DefaultNBPAPIURL)
	viper.SetDefault("RATE_FETCH_TIMEOUT", "5s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_CACHE_TTL", "0s")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER")))
	if cfg.StorageDriver != StorageDriverPostgres && cfg.StorageDriver != StorageDriverMemory {
		log.Printf("Warning: Invalid value for STORAGE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StorageDriver, StorageDriverPostgres)
		cfg.StorageDriver = StorageDriverPostgres
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.StorageDriver == StorageDriverPostgres {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	balanceStr := viper.GetString("DEFAULT_EVENT_BALANCE")
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		log.Printf("Warning: Invalid value for DEFAULT_EVENT_BALANCE ('%s'). Defaulting to 0.\n", balanceStr)
		balance = decimal.Zero
	}
	cfg.DefaultEventBalance = balance

	cfg.DefaultEventCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("DEFAULT_EVENT_CURRENCY")))
	switch cfg.DefaultEventCurrency {
	case "PLN", "EUR", "USD", "GBP":
	default:
		log.Printf("Warning: Invalid value for DEFAULT_EVENT_CURRENCY ('%s'). Defaulting to PLN.\n", cfg.DefaultEventCurrency)
		cfg.DefaultEventCurrency = "PLN"
	}

	cfg.BoxDeletePolicy = strings.ToLower(strings.TrimSpace(viper.GetString("BOX_DELETE_POLICY")))
	if cfg.BoxDeletePolicy != "discard" && cfg.BoxDeletePolicy != "require_empty" {
		log.Printf("Warning: Invalid value for BOX_DELETE_POLICY ('%s'). Defaulting to discard.\n", cfg.BoxDeletePolicy)
		cfg.BoxDeletePolicy = "discard"
	}

	cfg.RateSource = strings.ToLower(strings.TrimSpace(viper.GetString("RATE_SOURCE")))
	if cfg.RateSource != RateSourceFixed && cfg.RateSource != RateSourceLive {
		log.Printf("Warning: Invalid value for RATE_SOURCE ('%s'). Defaulting to %s.\n", cfg.RateSource, RateSourceLive)
		cfg.RateSource = RateSourceLive
	}

	cfg.NBPAPIURL = viper.GetString("NBP_API_URL")
	if cfg.NBPAPIURL == "" {
		cfg.NBPAPIURL = DefaultNBPAPIURL
	}

	cfg.RateFetchTimeout = durationOrDefault("RATE_FETCH_TIMEOUT", 5*time.Second)
	if cfg.RateFetchTimeout <= 0 {
		log.Println("Warning: RATE_FETCH_TIMEOUT must be positive. Defaulting to 5s.")
		cfg.RateFetchTimeout = 5 * time.Second
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.RateCacheTTL = durationOrDefault("RATE_CACHE_TTL", 0)

	cfg.AuthEnabled = viper.GetBool("AUTH_ENABLED")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// RateCacheEnabled reports whether rate tables should be cached in redis.
func (c *Config) RateCacheEnabled() bool {
	return c.RedisAddr != "" && c.RateCacheTTL > 0
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
