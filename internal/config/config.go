package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the process configuration, read from environment variables.
type Config struct {
	AppPort     string `validate:"required"`
	MongoURI    string `validate:"required"`
	MongoDB     string `validate:"required"`
	UploadDir   string `validate:"required"`
	RabbitMQURL string
}

// Load reads configuration from the environment and validates it. MONGODB_URI
// has no default: the service refuses to start without a reachable store, so
// a missing URI is a fatal misconfiguration. RABBITMQ_URL is optional; when
// unset the service runs without product event publishing.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("MONGODB_DB", "yolomy")
	viper.SetDefault("UPLOAD_DIR", "./images")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:     viper.GetString("APP_PORT"),
		MongoURI:    viper.GetString("MONGODB_URI"),
		MongoDB:     viper.GetString("MONGODB_DB"),
		UploadDir:   viper.GetString("UPLOAD_DIR"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
