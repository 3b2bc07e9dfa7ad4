package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds both the issued token lifetime and the Redis
	// session expiry.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Storage    StorageConfig
	Escalation EscalationConfig
	Notify     NotifyConfig
	Mongo      MongoConfig
	Redis      RedisConfig
}

type StorageConfig struct {
	// Backend selects where collections live: "file" (default) or "mongo".
	Backend string `env:"STORAGE_BACKEND, default=file"`
	// DataDir is the jsonstore root when Backend is "file".
	DataDir string `env:"DATA_DIR, default=./data"`
	// SessionBackend selects the current-user store: "file" or "redis".
	SessionBackend string `env:"SESSION_BACKEND, default=file"`
}

type EscalationConfig struct {
	// Window is how long a complaint may stay pending before escalation.
	Window time.Duration `env:"ESCALATION_WINDOW, default=168h"`
}

type NotifyConfig struct {
	Recipient string `env:"NOTIFY_RECIPIENT, default=kumar@gov.in"`
	Workers   int    `env:"NOTIFY_WORKERS,   default=2"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cleanvillage"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
