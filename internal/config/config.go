// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSaiEndpoint - endpoint SAI keeper по умолчанию (testnet)
const DefaultSaiEndpoint = "https://sai-keeper.testnet-2.nibiru.fi/query"

// Config - структура конфигурации приложения
type Config struct {
	// Telegram
	TelegramBotToken string

	// SAI keeper (GraphQL)
	SaiEndpoint    string
	RequestTimeout time.Duration

	// Пагинация и лимиты выборки
	TradesPageSize   int
	PricesPageSize   int
	TradesFetchLimit int
	PricesFetchLimit int

	// Хранилище сессий
	SessionCacheSize int

	// Logging
	LogLevel string
	LogFile  string
	Debug    bool

	// Redis (опционально, кэш ленты цен)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PriceCacheTTL time.Duration

	// PostgreSQL (опционально, журнал активности)
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// LoadConfig загружает конфигурацию из .env файла
func LoadConfig(envPath string) (*Config, error) {
	// Загружаем .env файл
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
	}

	// Проверяем обязательные поля
	token := getEnvString("TELEGRAM_BOT_TOKEN", "")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required. Please set it in .env file")
	}

	config := &Config{
		// Telegram
		TelegramBotToken: token,

		// SAI keeper
		SaiEndpoint:    getEnvString("SAI_GRAPHQL_ENDPOINT", DefaultSaiEndpoint),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT", 20)) * time.Second,

		// Пагинация
		TradesPageSize:   getEnvInt("TRADES_PAGE_SIZE", 5),
		PricesPageSize:   getEnvInt("PRICES_PAGE_SIZE", 10),
		TradesFetchLimit: getEnvInt("TRADES_FETCH_LIMIT", 100),
		PricesFetchLimit: getEnvInt("PRICES_FETCH_LIMIT", 200),

		// Сессии
		SessionCacheSize: getEnvInt("SESSION_CACHE_SIZE", 50),

		// Logging
		LogLevel: getEnvString("LOG_LEVEL", "info"),
		LogFile:  getEnvString("LOG_FILE", "logs/bot.log"),
		Debug:    getEnvBool("DEBUG", false),

		// Redis
		RedisAddr:     getEnvString("REDIS_ADDR", ""),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		PriceCacheTTL: time.Duration(getEnvInt("PRICE_CACHE_TTL", 30)) * time.Second,

		// PostgreSQL
		DBHost:     getEnvString("DB_HOST", ""),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnvString("DB_USER", "saibot"),
		DBPassword: getEnvString("DB_PASSWORD", ""),
		DBName:     getEnvString("DB_NAME", "saibot_db"),
		DBSSLMode:  getEnvString("DB_SSLMODE", "disable"),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
