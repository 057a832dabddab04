package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Roster   RosterConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type RosterConfig struct {
	// Timezone определяет, какое воскресенье считается "следующим"
	Timezone        string
	RoleCatalogPath string
	MembersPerWeek  int
	DefaultWeeks    int
	MaxWeeks        int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "church"),
			Password: getEnv("DB_PASSWORD", "church"),
			DBName:   getEnv("DB_NAME", "church_roster"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Roster: RosterConfig{
			Timezone:        getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
			RoleCatalogPath: getEnv("ROLE_CATALOG_PATH", ""),
			MembersPerWeek:  getEnvInt("ROSTER_SIZE", 3),
			DefaultWeeks:    getEnvInt("ROSTER_DEFAULT_WEEKS", 4),
			MaxWeeks:        getEnvInt("ROSTER_MAX_WEEKS", 52),
		},
	}
}

// Location возвращает часовой пояс приложения.
// Если имя не распознано, возвращает UTC вместе с ошибкой
func (c RosterConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
