package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go-leave/internal/shared/connection"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	JWT      JWTConfig      `yaml:"jwt"`
	Mail     MailConfig     `yaml:"mail"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type AppConfig struct {
	Env      string `yaml:"env"`
	Port     string `yaml:"port"`
	Timezone string `yaml:"timezone"`
}

type DatabaseConfig struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SSLMode    string `yaml:"ssl_mode"`
	MaxRetries int    `yaml:"max_retries"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type KafkaConfig struct {
	Broker        string `yaml:"broker"`
	ConsumerGroup string `yaml:"consumer_group"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// MailConfig configures SendGrid. An empty APIKey switches notifications to the log sender.
type MailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
}

type WorkerConfig struct {
	OutboxPollInterval time.Duration `yaml:"outbox_poll_interval"`
	OutboxBatchSize    int           `yaml:"outbox_batch_size"`
	AccrualSchedule    string        `yaml:"accrual_schedule"`
}

func defaults() Config {
	return Config{
		App: AppConfig{
			Env:      "development",
			Port:     "3000",
			Timezone: "UTC",
		},
		Database: DatabaseConfig{
			Host:       "localhost",
			Port:       "5432",
			User:       "postgres",
			Name:       "go_leave",
			SSLMode:    "disable",
			MaxRetries: 10,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			Broker:        "localhost:9092",
			ConsumerGroup: "go-leave-notifications",
		},
		Mail: MailConfig{
			FromEmail: "no-reply@go-leave.local",
			FromName:  "Leave Management",
		},
		Worker: WorkerConfig{
			OutboxPollInterval: 3 * time.Second,
			OutboxBatchSize:    50,
			AccrualSchedule:    "0 0 1 * *",
		},
	}
}

// Load builds the configuration from defaults, then the optional YAML file at path,
// then environment variables.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.overrideWithEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) overrideWithEnv() error {
	setString(&c.App.Env, "APP_ENV")
	setString(&c.App.Port, "PORT")
	setString(&c.App.Timezone, "APP_TIMEZONE")

	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Kafka.Broker, "KAFKA_BROKER")
	setString(&c.Kafka.ConsumerGroup, "KAFKA_CONSUMER_GROUP")
	setString(&c.JWT.Secret, "JWT_SECRET")

	setString(&c.Mail.SendGridAPIKey, "SENDGRID_API_KEY")
	setString(&c.Mail.FromEmail, "MAIL_FROM_EMAIL")
	setString(&c.Mail.FromName, "MAIL_FROM_NAME")

	setString(&c.Worker.AccrualSchedule, "ACCRUAL_SCHEDULE")

	if val := os.Getenv("OUTBOX_POLL_INTERVAL"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("OUTBOX_POLL_INTERVAL: %w", err)
		}
		c.Worker.OutboxPollInterval = d
	}
	if val := os.Getenv("OUTBOX_BATCH_SIZE"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
		}
		c.Worker.OutboxBatchSize = n
	}
	return nil
}

func setString(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", c.App.Timezone, err)
	}
	if c.Worker.OutboxPollInterval <= 0 {
		return errors.New("outbox poll interval must be positive")
	}
	if c.Worker.OutboxBatchSize <= 0 {
		return errors.New("outbox batch size must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Location is the zone used to decide what "today" means for leave dates.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) DB() connection.DBConfig {
	return connection.DBConfig{
		Host:     c.Database.Host,
		User:     c.Database.User,
		Password: c.Database.Password,
		Name:     c.Database.Name,
		Port:     c.Database.Port,
		SSLMode:  c.Database.SSLMode,
	}
}
