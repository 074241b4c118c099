package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours  int
	CookieSecure bool
}

// AdminConfig holds the account seeded on first start.
type AdminConfig struct {
	Username string
	Password string
}

type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "renovation-tracker")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "adminpass")
	viper.SetDefault("LOGIN_RATE_PER_SECOND", 2)
	viper.SetDefault("LOGIN_BURST", 10)

	// .env is optional, plain environment variables are enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours:  viper.GetInt("SESSION_EXPIRY_HOURS"),
			CookieSecure: viper.GetBool("COOKIE_SECURE"),
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: viper.GetFloat64("LOGIN_RATE_PER_SECOND"),
			LoginBurst:     viper.GetInt("LOGIN_BURST"),
		},
	}

	return config, nil
}
