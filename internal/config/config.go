package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Telegram TelegramConfig
	Content  ContentConfig
	Game     GameConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	PositionStore      string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type TelegramConfig struct {
	BotToken string
}

type ContentConfig struct {
	FilePath        string
	MediaDir        string
	CacheTTLSeconds int // 0 disables caching, file re-read each lookup
}

type GameConfig struct {
	ArrivalThresholdKm    float64
	PositionMaxAgeSeconds int
	HelpPenaltyMinutes    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			PositionStore:      getEnv("POSITION_STORE", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		},
		Content: ContentConfig{
			FilePath:        getEnv("CONTENT_FILE_PATH", "content.json"),
			MediaDir:        getEnv("MEDIA_DIR", "media"),
			CacheTTLSeconds: getEnvAsInt("CONTENT_CACHE_TTL_SECONDS", 0),
		},
		Game: GameConfig{
			ArrivalThresholdKm:    getEnvAsFloat("ARRIVAL_THRESHOLD_KM", 0.01),
			PositionMaxAgeSeconds: getEnvAsInt("POSITION_MAX_AGE_SECONDS", 40),
			HelpPenaltyMinutes:    getEnvAsInt("HELP_PENALTY_MINUTES", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
