package config

import (
	"errors"
	"fmt"
	"io/fs"

	"appointment-data-proxy/pkg/validator"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Streaming StreamingConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Log       LogConfig
}

type AppConfig struct {
	Port string `validate:"required"`
	Env  string
}

// DatabaseConfig holds both logical databases. Central stores patients,
// practices and fixed remedies; company stores therapists, individual
// remedies and appointments.
type DatabaseConfig struct {
	CentralURL   string `validate:"required"`
	CompanyURL   string `validate:"required"`
	MaxIdleConns int    `validate:"gte=0"`
	MaxOpenConns int    `validate:"gte=0"`
	LogQueries   bool
}

type StreamingConfig struct {
	BatchSize int `validate:"gt=0"`
}

type AuthConfig struct {
	Secret   string `validate:"required"`
	Issuer   string
	Audience string
}

// RedisConfig configures the optional token revocation list.
type RedisConfig struct {
	Enabled  bool
	Host     string `validate:"required_if=Enabled true"`
	Port     string `validate:"required_if=Enabled true"`
	Password string
	DB       int
}

type LogConfig struct {
	Level string `validate:"oneof=panic fatal error warn warning info debug trace"`
}

// LoadConfig reads .env when present and lets the environment override it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("STREAMING_BATCH_SIZE", 100)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("LOG_LEVEL", "info")
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			CentralURL:   v.GetString("CENTRAL_DATABASE_URL"),
			CompanyURL:   v.GetString("COMPANY_DATABASE_URL"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			LogQueries:   v.GetBool("DB_LOG_QUERIES"),
		},
		Streaming: StreamingConfig{
			BatchSize: v.GetInt("STREAMING_BATCH_SIZE"),
		},
		Auth: AuthConfig{
			Secret:   v.GetString("JWT_SECRET"),
			Issuer:   v.GetString("JWT_ISSUER"),
			Audience: v.GetString("JWT_AUDIENCE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	cv := validator.NewValidator()
	if err := cv.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", cv.FormatValidationErrors(err))
	}

	return config, nil
}
