package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// API modes. In direct mode every request goes to the production API; in fallback
// mode a local mirror is tried first.
const (
	APIModeDirect   = "direct"
	APIModeFallback = "fallback"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Storefront API
	APIBaseURL      string
	APILocalURL     string
	APIMode         string
	APILocalTimeout time.Duration
	APIRateLimit    float64 // outbound requests per second, 0 = unlimited
	APIRateBurst    int

	// Gateway
	AllowedOrigin  string
	CookieDomain   string
	CookieSecure   bool
	RateLimitRPS   float64
	RateLimitBurst int

	// Cache
	CacheCategoryTTL time.Duration
	CacheProductTTL  time.Duration

	// Third-party endpoints
	NominatimURL       string
	NominatimUserAgent string
	PackzyURL          string
	PackzyAPIKey       string
	PackzySecretKey    string

	// Upload Configuration
	MaxUploadSizeMB int64

	// Business Rules
	MaxCartQuantity int
}

func LoadConfig() (*Config, error) {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env for local dev, system env vars otherwise
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8090"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIBaseURL:      getEnv("API_BASE_URL", ""),
		APILocalURL:     getEnv("API_LOCAL_URL", "http://localhost:8000/api"),
		APIMode:         getEnv("API_MODE", APIModeDirect),
		APILocalTimeout: getDurationEnv("API_LOCAL_TIMEOUT", 3*time.Second),
		APIRateLimit:    getFloatEnv("API_RATE_LIMIT", 0),
		APIRateBurst:    getIntEnv("API_RATE_BURST", 20),

		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:   getBoolEnv("COOKIE_SECURE", false),
		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),

		// Cache defaults: 30m Category, 10m Product
		CacheCategoryTTL: getDurationEnv("CACHE_CATEGORY_TTL", 30*time.Minute),
		CacheProductTTL:  getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),

		NominatimURL:       getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", "hometex-storefront/1.0"),
		PackzyURL:          getEnv("PACKZY_URL", "https://portal.packzy.com/api/v1"),
		PackzyAPIKey:       getEnv("PACKZY_API_KEY", ""),
		PackzySecretKey:    getEnv("PACKZY_SECRET_KEY", ""),

		MaxUploadSizeMB: getInt64Env("MAX_UPLOAD_SIZE_MB", 10),
		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("API_BASE_URL environment variable is required")
	}
	if c.APIMode != APIModeDirect && c.APIMode != APIModeFallback {
		return fmt.Errorf("API_MODE must be %q or %q, got %q", APIModeDirect, APIModeFallback, c.APIMode)
	}
	if c.APIMode == APIModeFallback && c.APILocalURL == "" {
		return errors.New("API_LOCAL_URL is required when API_MODE=fallback")
	}
	if c.MaxCartQuantity <= 0 {
		return errors.New("MAX_CART_QUANTITY must be positive")
	}
	if c.PackzyAPIKey == "" {
		log.Println("WARNING: PACKZY_API_KEY not set, courier tracking will be rejected upstream")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
		log.Printf("Invalid int64 for %s, using fallback", key)
	}
	return fallback
}
