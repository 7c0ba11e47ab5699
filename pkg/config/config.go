package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// DatabaseName is the Mongo database every record is written to
	DatabaseName = "json-data-db"
	// RecordCollection is the collection backing the datasave model
	RecordCollection = "datasaves"

	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port        string `validate:"required,numeric"`
	Env         string
	MongoURI    string `validate:"required"`
	StoreDriver string `validate:"oneof=mongo memory"`
	BodyLimit   string `validate:"required"`
	LogLevel    string
	LogFormat   string `validate:"oneof=json console"`
}

// Load reads configuration from the environment, after loading a .env file if one exists
func Load() *Config {
	// A missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017/"+DatabaseName),
		StoreDriver: getEnv("STORE_DRIVER", StoreMongo),
		BodyLimit:   getEnv("BODY_LIMIT", "10M"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate rejects values that would otherwise be silently misread, such as
// a misspelled STORE_DRIVER
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
