package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourcePostgres = "postgres"
	CatalogSourceRemote   = "remote"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	// Admin auth
	JWTSecret         string
	AccessTokenExpiry time.Duration
	AdminEmail        string
	AdminPassword     string
	// Catalog source: "postgres" (default) or "remote" (one-shot HTTP fetch)
	CatalogSource string
	CatalogURL    string
	// DB Config
	DBUrl             string
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration
	// R2 Storage (product images)
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2PublicURL       string
	R2UploadTimeout   time.Duration
	// Cache
	CacheProductTTL time.Duration
	// Upload Configuration
	MaxUploadSizeMB int64
	// Business Rules
	MaxCartQuantity int
	CartTTL         time.Duration
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: Try loading .env (standard local dev).
		// In docker/prod envs .env might not exist and we rely on system env vars.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		JWTSecret:         getEnv("JWT_SECRET", "default_secret_CHANGE_ME"),
		AccessTokenExpiry: getDurationEnv("ACCESS_TOKEN_EXPIRY", time.Hour*24),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),

		CatalogSource: getEnv("CATALOG_SOURCE", CatalogSourcePostgres),
		CatalogURL:    getEnv("CATALOG_URL", ""),

		DBUrl:             getEnv("DB_DSN", ""),
		DBMaxConns:        getInt32Env("DB_MAX_CONNS", 50),
		DBMinConns:        getInt32Env("DB_MIN_CONNS", 10),
		DBMaxConnIdleTime: getDurationEnv("DB_MAX_CONN_IDLE_TIME", time.Minute*15),

		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret: getEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
		R2UploadTimeout:   getDurationEnv("R2_UPLOAD_TIMEOUT", 30*time.Second),

		CacheProductTTL: getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),

		MaxUploadSizeMB: getInt64Env("MAX_UPLOAD_SIZE_MB", 10),

		// Business rules: 1000 max quantity per line, 24h cart sessions
		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),
		CartTTL:         getDurationEnv("CART_TTL", 24*time.Hour),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	switch c.CatalogSource {
	case CatalogSourcePostgres:
		if c.DBUrl == "" {
			log.Fatal("CRITICAL: DB_DSN is required when CATALOG_SOURCE=postgres")
		}
	case CatalogSourceRemote:
		if c.CatalogURL == "" {
			log.Fatal("CRITICAL: CATALOG_URL is required when CATALOG_SOURCE=remote")
		}
	default:
		log.Fatalf("CRITICAL: Unknown CATALOG_SOURCE '%s' (want postgres or remote)", c.CatalogSource)
	}
	if c.JWTSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default JWT secret. Setting up for failure in production.")
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		log.Println("WARNING: ADMIN_EMAIL/ADMIN_PASSWORD not set, admin endpoints are unusable")
	}
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
