package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"10"` // seconds
	RequestsPerSec int    `env:"REQUESTS_PER_SEC" envDefault:"5"`
	MaxRetries     int    `env:"MAX_RETRIES" envDefault:"0"`

	CoinGeckoBaseURL string `env:"COINGECKO_BASE_URL" envDefault:"https://api.coingecko.com/api/v3"`
	CoinGeckoAPIKey  string `env:"COINGECKO_API_KEY" envDefault:""`

	TradingEconomicsBaseURL string `env:"TRADINGECONOMICS_BASE_URL" envDefault:"https://api.tradingeconomics.com"`
	TradingEconomicsAPIKey  string `env:"TRADINGECONOMICS_API_KEY" envDefault:"guest:guest"`

	SportsDBBaseURL string `env:"THESPORTSDB_BASE_URL" envDefault:"https://www.thesportsdb.com/api/v1/json"`
	SportsDBAPIKey  string `env:"THESPORTSDB_API_KEY" envDefault:"3"`
	SportsLeague    string `env:"SPORTS_LEAGUE" envDefault:"English Premier League"`

	WikipediaAPIURL string `env:"WIKIPEDIA_API_URL" envDefault:"https://en.wikipedia.org/w/api.php"`

	OpenAIAPIKey      string  `env:"OPENAI_API_KEY" envDefault:""`
	OpenAIBaseURL     string  `env:"OPENAI_BASE_URL" envDefault:""`
	OpenAIModel       string  `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAITemperature float64 `env:"OPENAI_TEMPERATURE" envDefault:"0.2"`
	OpenAIMaxTokens   int     `env:"OPENAI_MAX_TOKENS" envDefault:"512"`

	HTTPAddr         string `env:"HTTP_ADDR" envDefault:":8080"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	BatchConcurrency int    `env:"BATCH_CONCURRENCY" envDefault:"4"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	return FromEnv(), nil
}

// FromEnv reads configuration from the current process environment only
func FromEnv() *Config {
	var cfg Config

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 10)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", 5)
	cfg.MaxRetries = getEnvIntWithDefault("MAX_RETRIES", 0)

	cfg.CoinGeckoBaseURL = getEnvWithDefault("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3")
	cfg.CoinGeckoAPIKey = os.Getenv("COINGECKO_API_KEY")

	cfg.TradingEconomicsBaseURL = getEnvWithDefault("TRADINGECONOMICS_BASE_URL", "https://api.tradingeconomics.com")
	cfg.TradingEconomicsAPIKey = getEnvWithDefault("TRADINGECONOMICS_API_KEY", "guest:guest")

	cfg.SportsDBBaseURL = getEnvWithDefault("THESPORTSDB_BASE_URL", "https://www.thesportsdb.com/api/v1/json")
	cfg.SportsDBAPIKey = getEnvWithDefault("THESPORTSDB_API_KEY", "3")
	cfg.SportsLeague = getEnvWithDefault("SPORTS_LEAGUE", "English Premier League")

	cfg.WikipediaAPIURL = getEnvWithDefault("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php")

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
	cfg.OpenAITemperature = getEnvFloatWithDefault("OPENAI_TEMPERATURE", 0.2)
	cfg.OpenAIMaxTokens = getEnvIntWithDefault("OPENAI_MAX_TOKENS", 512)

	cfg.HTTPAddr = getEnvWithDefault("HTTP_ADDR", ":8080")
	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.BatchConcurrency = getEnvIntWithDefault("BATCH_CONCURRENCY", 4)

	return &cfg
}

// Timeout returns the fixed per-request network timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
