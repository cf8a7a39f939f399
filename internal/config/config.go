package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	// RandomSeed seeds the board's generator when non-zero.
	RandomSeed int64

	ArchiveEnabled bool
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RandomSeed:     getEnvInt64("RANDOM_SEED", 0),
		ArchiveEnabled: getEnvBool("ARCHIVE_ENABLED", false),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "brainstorm"),
		DBPassword:     getEnv("DB_PASSWORD", "brainstorm"),
		DBName:         getEnv("DB_NAME", "brainstorm"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("⚠️  %s=%q is not an integer, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a boolean, using %t", key, value, defaultVal)
		return defaultVal
	}
	return b
}
