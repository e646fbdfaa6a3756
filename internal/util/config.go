package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey       string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	SeedOnStartup        bool          `mapstructure:"SEED_ON_STARTUP"`
	AuctionCloseInterval time.Duration `mapstructure:"AUCTION_CLOSE_INTERVAL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:3001")
	viper.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	viper.SetDefault("SEED_ON_STARTUP", true)
	viper.SetDefault("AUCTION_CLOSE_INTERVAL", "5s")

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if config.AuctionCloseInterval <= 0 {
		return fmt.Errorf("AUCTION_CLOSE_INTERVAL must be positive")
	}

	return nil
}
