package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL      string        `envconfig:"DATABASE_URL"      required:"true"`
	HTTPPort         string        `envconfig:"HTTP_PORT"         default:":8080"`
	GrpcPort         string        `envconfig:"GRPC_PORT"         default:":50051"` // gRPC health endpoint
	LogLevel         string        `envconfig:"LOG_LEVEL"         default:"info"`
	LogFormat        string        `envconfig:"LOG_FORMAT"        default:"json"`
	JWTSecret        string        `envconfig:"JWT_SECRET"        required:"true"`
	TokenTTL         time.Duration `envconfig:"TOKEN_TTL"         default:"24h"`
	DefaultLanguage  string        `envconfig:"DEFAULT_LANGUAGE"  default:"es"`
	FallbackLanguage string        `envconfig:"FALLBACK_LANGUAGE" default:"en"`
	CORSOrigins      []string      `envconfig:"CORS_ORIGINS"      default:"http://localhost:3000"`
	KafkaBrokers     []string      `envconfig:"KAFKA_BROKERS"`
	KafkaTopic       string        `envconfig:"KAFKA_TOPIC"       default:"safeon.entity-changes"`
	HealthInterval   time.Duration `envconfig:"HEALTH_INTERVAL"   default:"15s"`
}

var supportedLanguages = map[string]bool{"en": true, "es": true}

var (
	config Config
	once   sync.Once
)

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if !supportedLanguages[c.DefaultLanguage] {
		return fmt.Errorf("unsupported DEFAULT_LANGUAGE %q", c.DefaultLanguage)
	}
	if !supportedLanguages[c.FallbackLanguage] {
		return fmt.Errorf("unsupported FALLBACK_LANGUAGE %q", c.FallbackLanguage)
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.HealthInterval <= 0 {
		return errors.New("HEALTH_INTERVAL must be positive")
	}
	return nil
}

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logger.Fatalf("Configuration error: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", config.HTTPPort, config.GrpcPort, config.LogLevel)
		if len(config.KafkaBrokers) > 0 {
			logger.Infof("Configuration loaded: publishing entity changes to topic %s", config.KafkaTopic)
		}
	})
	return &config
}
