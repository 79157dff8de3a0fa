package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	MongoURI        string `mapstructure:"MONGO_URI"`
	MongoDBName     string `mapstructure:"MONGO_DB_NAME"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION_NAME"`

	// Timeout in seconds for the slots query.
	FetchTimeoutSec int `mapstructure:"FETCH_TIMEOUT_SEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB_NAME", "roombooking")
	viper.SetDefault("MONGO_COLLECTION_NAME", "slots")
	viper.SetDefault("FETCH_TIMEOUT_SEC", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Validate rejects configurations that cannot possibly reach the database,
// most notably connection strings still carrying credential placeholders.
func Validate() error {
	if AppConfig.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is not set")
	}
	if strings.Contains(AppConfig.MongoURI, "<username>") || strings.Contains(AppConfig.MongoURI, "<password>") {
		return fmt.Errorf("MONGO_URI still contains credential placeholders; set real credentials before running")
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
