package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPPort    string
	LogLevel    string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_SERVICE", "cotiza")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_TYPE", "sqlite")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_NAME", "cotiza")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_IDLE_CONN", 5)
	v.SetDefault("DATABASE_MAX_OPEN_CONN", 20)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", 300)

	return Config{
		AppName:           v.GetString("APP_SERVICE"),
		AppVersion:        v.GetString("APP_VERSION"),
		Environment:       v.GetString("ENVIRONMENT"),
		HTTPPort:          v.GetString("HTTP_PORT"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		DBType:            v.GetString("DATABASE_TYPE"),
		DBHost:            v.GetString("DATABASE_HOST"),
		DBPort:            v.GetString("DATABASE_PORT"),
		DBName:            v.GetString("DATABASE_NAME"),
		DBUser:            v.GetString("DATABASE_USER"),
		DBPassword:        v.GetString("DATABASE_PASSWORD"),
		DBSSLMode:         v.GetString("DATABASE_SSLMODE"),
		DBMaxIdleConn:     v.GetInt("DATABASE_MAX_IDLE_CONN"),
		DBMaxOpenConn:     v.GetInt("DATABASE_MAX_OPEN_CONN"),
		DBConnMaxLifetime: v.GetInt("DATABASE_CONN_MAX_LIFETIME"),
	}
}
