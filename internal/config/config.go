package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DataDir              string
	StaticDir            string
	SessionTTLSeconds    int64
	CookieSecure         bool
	EmailPrefix          string
	EmailDomain          string
	ChatAPIURL           string
	ChatTimeoutSeconds   int
	MetricsDiskPath      string
	MetricsSampleSeconds int
	CorsOrigins          []string
}

func Load() Config {
	dataDir := envOr("DATA_DIR", "data")
	return Config{
		DataDir:              dataDir,
		StaticDir:            envOr("STATIC_DIR", "public"),
		SessionTTLSeconds:    int64(envOrInt("SESSION_TTL_SECONDS", 604800)),
		CookieSecure:         envOrBool("COOKIE_SECURE", false),
		EmailPrefix:          envOr("EMAIL_PREFIX", "UG"),
		EmailDomain:          envOr("EMAIL_DOMAIN", "@f-eng.tanta.edu.eg"),
		ChatAPIURL:           envOr("CHAT_API_URL", ""),
		ChatTimeoutSeconds:   envOrInt("CHAT_TIMEOUT_SECONDS", 30),
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", dataDir),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
