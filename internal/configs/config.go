package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/joho/godotenv"
)

// ScraperConfig holds everything the extraction pipeline needs.
type ScraperConfig struct {
	DealerURL string
	MaxPages  int
	BatchSize int
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	HTTPPort     string
	Scraper      ScraperConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads configuration from the environment, optionally seeded from
// a .env file. A missing .env file is not an error: in production everything
// comes from real environment variables.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded (path: %v): %v\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "aanbod-parser-service")
	cfg.HTTPPort = getEnvAsString("HTTP_PORT", "8080")

	cfg.Scraper.DealerURL = getEnvAsString("DEALER_URL", constants.DealerURL)
	cfg.Scraper.MaxPages = getEnvAsInt("MAX_PAGES", constants.DefaultMaxPages)
	cfg.Scraper.BatchSize = getEnvAsInt("BATCH_SIZE", constants.DefaultBatchSize)

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			log.Println("WARNING: RABBITMQ_ENABLED is true, but RABBITMQ_URL is not set. Disabling RabbitMQ.")
			cfg.RabbitMQ.Enabled = false
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// getEnvAsString reads an environment variable or returns the default.
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as int or returns the default.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as int: %v. Using default: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool reads an environment variable as bool or returns the default.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as bool: %v. Using default: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
