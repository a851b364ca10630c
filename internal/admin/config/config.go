package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	MongoURI     string        `mapstructure:"mongo_uri"`
	DBName       string        `mapstructure:"db_name"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	LogLevel     string        `mapstructure:"log_level"`
}

// LoadConfig reads configuration from environment variables with sane local
// defaults. MONGO_URI, DB_NAME, PORT, READ_TIMEOUT, WRITE_TIMEOUT, LOG_LEVEL.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("db_name", "planadmin_db")
	v.SetDefault("port", "8080")
	v.SetDefault("read_timeout", 10*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("log_level", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
