package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	JWTSecret  string
	BotAPIKey  string
	ServerPort string

	BotToken       string
	WebhookBaseURL string
	WebhookSecret  string

	SchedulerTickSec  int
	RoundCountdownSec int
}

func Load() *Config {
	// env vars win over .env
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "challenges"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-me"),
		BotAPIKey:  getEnv("BOT_API_KEY", "bot-api-key-change-me"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		BotToken:       getEnv("BOT_TOKEN", ""),
		WebhookBaseURL: getEnv("WEBHOOK_BASE_URL", ""),
		WebhookSecret:  getEnv("WEBHOOK_SECRET", ""),

		SchedulerTickSec:  getEnvInt("SCHEDULER_TICK_SEC", 60),
		RoundCountdownSec: getEnvInt("ROUND_COUNTDOWN_SEC", 10),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
