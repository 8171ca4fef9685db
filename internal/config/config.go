package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config — конфигурация сидера. Источники (по приоритету): env, YAML, дефолты.
type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// GetDefaultConfig возвращает конфигурацию по умолчанию
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.Name = "travelguard"
	cfg.Database.SSLMode = "disable"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	return cfg
}

// LoadConfig загружает конфигурацию из YAML файла и применяет env поверх
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}

// LoadConfigFromEnv собирает конфиг только из переменных окружения (для работы без YAML)
func LoadConfigFromEnv() *Config {
	cfg := GetDefaultConfig()
	ApplyEnvOverrides(cfg)
	return cfg
}

// ApplyEnvOverrides применяет переменные окружения поверх конфига (env переопределяет YAML)
func ApplyEnvOverrides(cfg *Config) {
	if v := getEnv("DB_HOST", ""); v != "" {
		cfg.Database.Host = v
	}
	if p := getEnvInt("DB_PORT", 0); p != 0 {
		cfg.Database.Port = p
	}
	if v := getEnv("DB_USER", ""); v != "" {
		cfg.Database.User = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		cfg.Database.Password = v
	}
	if v := getEnv("DB_DATABASE", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_SSLMODE", ""); v != "" {
		cfg.Database.SSLMode = v
	}

	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv("LOG_FORMAT", ""); v != "" {
		cfg.Logging.Format = v
	}
}

// DSN возвращает connection string для lib/pq
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
