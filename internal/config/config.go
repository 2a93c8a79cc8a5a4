package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the service configuration, loaded from the environment.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	StorageBucket string
	Language      string
	FFmpegBinary  string
}

// Load reads configuration from a .env file (when present) and the process
// environment, falling back to development defaults.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "speechtotext"),
		StorageBucket: getEnv("STORAGE_BUCKET", ""),
		Language:      getEnv("RECOGNITION_LANGUAGE", "en-US"),
		FFmpegBinary:  getEnv("FFMPEG_BINARY", "ffmpeg"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
