package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	// KafkaHost is a comma separated broker list. Empty disables publishing.
	KafkaHost              string `mapstructure:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `mapstructure:"KAFKA_ORDER_CHANGED_TOPIC"`

	// RedisAddr empty disables the dashboard cache.
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
	DashboardCacheTTL time.Duration `mapstructure:"DASHBOARD_CACHE_TTL"`

	StockAlertSchedule string `mapstructure:"STOCK_ALERT_SCHEDULE"`
	UploadDir          string `mapstructure:"UPLOAD_DIR"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"HTTP_PORT":                 "8080",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_PASSWORD":               "",
	"DB_NAME":                   "icetube",
	"DB_SSLMODE":                "disable",
	"KAFKA_HOST":                "",
	"KAFKA_ORDER_CHANGED_TOPIC": "order.status.changed",
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"REDIS_DB":                  0,
	"DASHBOARD_CACHE_TTL":       "30s",
	"STOCK_ALERT_SCHEDULE":      "0 */5 * * * *",
	"UPLOAD_DIR":                "./uploads",
	"LOG_LEVEL":                 "info",
}

// LoadConfig reads envFile when it exists, then the process environment,
// which wins over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DashboardCacheTTL <= 0 {
		return Config{}, fmt.Errorf("DASHBOARD_CACHE_TTL must be positive, got %s", cfg.DashboardCacheTTL)
	}
	return cfg, nil
}

// KafkaBrokers splits KafkaHost on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// SlogLevel maps LogLevel onto slog, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
