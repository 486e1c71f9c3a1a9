package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	Port           string
	YouTubeAPIKey  string
	YouTubeAPIBase string
	NATSUrl        string
}

// Load reads configuration from the environment. A missing YOUTUBE_API_KEY is
// not fatal here: it is a deployment error reported per request so the health
// endpoints keep working.
func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		YouTubeAPIKey:  strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		YouTubeAPIBase: getEnv("YOUTUBE_API_BASE", "https://www.googleapis.com/youtube/v3"),
		NATSUrl:        os.Getenv("NATS_URL"),
	}

	if cfg.YouTubeAPIKey == "" {
		log.Printf("[WARN] YOUTUBE_API_KEY not set - comment requests will fail with 500")
	}
	if cfg.NATSUrl == "" {
		log.Printf("[INFO] NATS_URL not set - fetch events disabled")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
