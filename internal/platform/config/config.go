package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// State backends understood by the server and CLI.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// State persistence
	StateBackend       string
	DatabaseURL        string
	EnableDBCheck      bool
	MigrationsPath     string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	MongoURI           string
	MongoDatabase      string
	StateKeyPrefix     string
	PersistenceTimeout time.Duration

	// Circuit breaker around the state store
	BreakerMaxRequests   uint32
	BreakerInterval      time.Duration
	BreakerTimeout       time.Duration
	BreakerFailThreshold uint32

	// Change notifications
	RabbitMQURL     string
	RabbitMQQueue   string
	EventBufferSize int

	// Organizer auth
	JWTSecret             string
	JWTExpiryDuration     time.Duration
	JWTIssuer             string
	OrganizerPasswordHash string

	// HTTP
	CORSAllowedOrigins []string
	JoinRateLimit      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STATE_BACKEND", BackendMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "event_split")
	v.SetDefault("STATE_KEY_PREFIX", "event_split")
	v.SetDefault("PERSISTENCE_TIMEOUT", "5s")
	v.SetDefault("BREAKER_MAX_REQUESTS", 1)
	v.SetDefault("BREAKER_INTERVAL", "60s")
	v.SetDefault("BREAKER_TIMEOUT", "30s")
	v.SetDefault("BREAKER_FAIL_THRESHOLD", 5)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "event_split.changes")
	v.SetDefault("EVENT_BUFFER_SIZE", 256)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "event-split-app")
	v.SetDefault("ORGANIZER_PASSWORD_HASH", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("JOIN_RATE_LIMIT", "10-M")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		StateBackend:          strings.ToLower(strings.TrimSpace(v.GetString("STATE_BACKEND"))),
		DatabaseURL:           v.GetString("PGSQL_URL"),
		EnableDBCheck:         v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:        v.GetString("MIGRATIONS_PATH"),
		RedisAddr:             v.GetString("REDIS_ADDR"),
		RedisPassword:         v.GetString("REDIS_PASSWORD"),
		RedisDB:               v.GetInt("REDIS_DB"),
		MongoURI:              v.GetString("MONGO_URI"),
		MongoDatabase:         v.GetString("MONGO_DATABASE"),
		StateKeyPrefix:        v.GetString("STATE_KEY_PREFIX"),
		BreakerMaxRequests:    v.GetUint32("BREAKER_MAX_REQUESTS"),
		BreakerFailThreshold:  v.GetUint32("BREAKER_FAIL_THRESHOLD"),
		RabbitMQURL:           v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:         v.GetString("RABBITMQ_QUEUE"),
		EventBufferSize:       v.GetInt("EVENT_BUFFER_SIZE"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		OrganizerPasswordHash: v.GetString("ORGANIZER_PASSWORD_HASH"),
		JoinRateLimit:         v.GetString("JOIN_RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StateBackend {
	case BackendMemory:
		log.Println("Warning: STATE_BACKEND is memory. State will be lost on restart.")
	case BackendRedis, BackendMongo:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STATE_BACKEND is %s", BackendPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STATE_BACKEND %q", cfg.StateBackend)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.OrganizerPasswordHash == "" {
		log.Println("Warning: ORGANIZER_PASSWORD_HASH not set. Organizer login is disabled.")
	}

	cfg.JWTExpiryDuration = durationOr(v, "JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.PersistenceTimeout = durationOr(v, "PERSISTENCE_TIMEOUT", 5*time.Second)
	cfg.BreakerInterval = durationOr(v, "BREAKER_INTERVAL", time.Minute)
	cfg.BreakerTimeout = durationOr(v, "BREAKER_TIMEOUT", 30*time.Second)

	if cfg.EventBufferSize <= 0 {
		cfg.EventBufferSize = 256
	}
	if cfg.BreakerFailThreshold == 0 {
		cfg.BreakerFailThreshold = 5
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// durationOr parses key as a duration, falling back to def with a warning when invalid.
func durationOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
