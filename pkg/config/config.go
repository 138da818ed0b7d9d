package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Log      LogConfig
	Auction  AuctionConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" env-default:"8080"`
	Environment     string        `env:"ENVIRONMENT" env-default:"development"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

type FirebaseConfig struct {
	ProjectID          string `env:"FIREBASE_PROJECT_ID"`
	APIKey             string `env:"FIREBASE_API_KEY"`
	ServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
}

type StorageConfig struct {
	Bucket string `env:"STORAGE_BUCKET"`
}

type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN"`
	MaxConns        int32         `env:"DATABASE_MAX_CONNS" env-default:"10"`
	MinConns        int32         `env:"DATABASE_MIN_CONNS" env-default:"2"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

type AuctionConfig struct {
	TickInterval time.Duration `env:"AUCTION_TICK_INTERVAL" env-default:"1s"`
}

type UploadConfig struct {
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES" env-default:"5242880"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Firebase.ProjectID == "" {
		errs = append(errs, errors.New("FIREBASE_PROJECT_ID is required"))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("STORAGE_BUCKET is required"))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN is required"))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, errors.New("DATABASE_MIN_CONNS must not exceed DATABASE_MAX_CONNS"))
	}
	if c.Auction.TickInterval <= 0 {
		errs = append(errs, errors.New("AUCTION_TICK_INTERVAL must be positive"))
	}
	if c.Upload.MaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
