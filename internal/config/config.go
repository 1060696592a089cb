package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend names accepted by STORE_BACKEND.
const (
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port         string
	StoreBackend string
	MongoURI     string
	MongoDB      string
	SQLitePath   string
	RedisAddr    string

	JWTSecret       string
	TokenTTL        time.Duration
	WizardTTL       time.Duration
	HistoryCacheTTL time.Duration

	CORSAllowedOrigins string
	CORSAllowedMethods string
	CORSAllowedHeaders string
}

// Load reads .env when present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read .env: %v", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendMongo)),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "mmgp"),
		SQLitePath:   getEnv("SQLITE_PATH", "mmgp.db"),
		RedisAddr:    strings.TrimPrefix(getEnv("REDIS_URI", "localhost:6379"), "redis://"),

		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		TokenTTL:        getDuration("TOKEN_TTL", 24*time.Hour),
		WizardTTL:       getDuration("WIZARD_TTL", 24*time.Hour),
		HistoryCacheTTL: getDuration("HISTORY_CACHE_TTL", 5*time.Minute),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CORSAllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
		CORSAllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
	}
	if cfg.StoreBackend != BackendMongo && cfg.StoreBackend != BackendSQLite {
		log.Printf("Warning: unknown STORE_BACKEND %q, using %s", cfg.StoreBackend, BackendMongo)
		cfg.StoreBackend = BackendMongo
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, val, defaultVal)
		return defaultVal
	}
	return d
}
