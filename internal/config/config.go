package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port                     string
	DatabaseURL              string
	SessionSecretKey         string
	FamilyPassword           string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
	OpenAIAPIKey             string
	OpenAIModel              string
}

func Default() Config {
	return Config{
		Port:                     "8080",
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
		OpenAIModel:              "gpt-4o-mini",
	}
}

// Load builds the configuration from the process environment. It is called
// once at startup; nothing re-reads the environment afterwards. A missing
// session secret or family password is a startup error, not a runtime one.
func Load() (Config, error) {
	cfg := Default()
	if raw := os.Getenv("PORT"); raw != "" {
		cfg.Port = raw
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.SessionSecretKey = os.Getenv("SESSION_SECRET_KEY")
	cfg.FamilyPassword = os.Getenv("FAMILY_PASSWORD")
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	if raw := os.Getenv("OPENAI_API_KEY"); raw != "" {
		cfg.OpenAIAPIKey = raw
	}
	if raw := os.Getenv("OPENAI_MODEL"); raw != "" {
		cfg.OpenAIModel = raw
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings the server cannot run without.
func (c Config) Validate() error {
	if c.SessionSecretKey == "" {
		return errors.New("SESSION_SECRET_KEY must be set and non-empty")
	}
	if c.FamilyPassword == "" {
		return errors.New("FAMILY_PASSWORD must be set and non-empty")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must be set and non-empty")
	}
	return nil
}
