package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process configuration, read once at startup.
type Config struct {
	AppPort      string
	DatabaseURL  string
	DBSSLRequire bool
	FrontendURL  string
	RabbitMQURL  string
}

// Load reads configuration from a .env file (when present) and the
// environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("DB_SSL_REQUIRE", true)
	viper.AutomaticEnv()

	return Config{
		AppPort:      viper.GetString("APP_PORT"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		DBSSLRequire: viper.GetBool("DB_SSL_REQUIRE"),
		FrontendURL:  viper.GetString("FRONTEND_URL"),
		RabbitMQURL:  viper.GetString("RABBITMQ_URL"),
	}
}

// DSN returns the Postgres connection string. SSL is enforced unless
// the URL already carries an explicit sslmode.
func (c Config) DSN() string {
	dsn := c.DatabaseURL
	if c.DBSSLRequire && !strings.Contains(dsn, "sslmode=") {
		if strings.Contains(dsn, "?") {
			dsn += "&sslmode=require"
		} else {
			dsn += "?sslmode=require"
		}
	}
	return dsn
}
