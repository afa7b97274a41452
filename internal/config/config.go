package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the tool reads from the environment, once,
// at startup.
type Config struct {
	MySQLDSN   string
	BcryptCost int
	LogLevel   string

	// Optional collaborators. Empty means "not configured" and the
	// corresponding side effect is skipped.
	Redis RedisConfig
	SMTP  SMTPConfig
	Kafka KafkaConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// Enabled reports whether SMTP delivery was configured.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

// Enabled reports whether an event topic was configured.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 && c.Topic != "" }

// Load builds Config from environment variables. A .env file in the
// working directory is honored but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		return nil, errors.New("MYSQL_DSN is required")
	}

	cfg := &Config{
		MySQLDSN:   dsn,
		BcryptCost: getEnvInt("BCRYPT_COST", 12),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   os.Getenv("KAFKA_TOPIC"),
		},
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, errors.New("BCRYPT_COST out of range")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
