package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage and session drivers.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

type Config struct {
	Port            string
	StorageDriver   string
	SessionDriver   string
	SessionTTL      time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	MongoURI        string
	MongoDB         string
	CORSOrigins     []string
	EntryPage       string
	LoginRatePerMin int
	Seed            bool
	LogLevel        slog.Level
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Load reads configuration from the environment, after an optional .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	ttl, err := time.ParseDuration(envOrDefault("SESSION_TTL", "8h"))
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, err
	}

	return &Config{
		Port:            envOrDefault("PORT", "8080"),
		StorageDriver:   strings.ToLower(envOrDefault("STORAGE_DRIVER", DriverMySQL)),
		SessionDriver:   strings.ToLower(envOrDefault("SESSION_DRIVER", DriverMemory)),
		SessionTTL:      ttl,
		RedisAddr:       envOrDefault("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		MongoURI:        envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         envOrDefault("MONGO_DB", "hotel_console"),
		CORSOrigins:     parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		EntryPage:       envOrDefault("ENTRY_PAGE", "/index.html"),
		LoginRatePerMin: envInt("LOGIN_RATE_PER_MIN", 10),
		Seed:            envBool("SEED", true),
		LogLevel:        level,
	}, nil
}

func NewLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
