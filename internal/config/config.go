package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port       int
	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string
	Seed       bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is picked up by the godotenv autoload import.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       8080,
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUsername: os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBDatabase: os.Getenv("DB_DATABASE"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("DB_SEED"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	required := map[string]string{
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USERNAME": cfg.DBUsername,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_DATABASE": cfg.DBDatabase,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	return cfg, nil
}
