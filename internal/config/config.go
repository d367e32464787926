package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr     string
	PostgresDSN  string
	DBMaxConns   int32
	Environment  string
	CORSOrigins  []string
	KafkaBrokers []string
	ServiceName  string
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		PostgresDSN:  postgresDSN(),
		DBMaxConns:   int32(atoi(getenv("DB_MAX_CONNS", "5"))),
		Environment:  getenv("ENVIRONMENT", "development"),
		CORSOrigins:  splitCSV(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		ServiceName:  getenv("SERVICE_NAME", "bakery-api"),
	}
}

func (c Config) IsDevelopment() bool { return c.Environment == "development" }

// EventsEnabled reports whether order events should be published.
// An empty broker list disables the producer entirely.
func (c Config) EventsEnabled() bool { return len(c.KafkaBrokers) > 0 }

// postgresDSN prefers a full POSTGRES_DSN and otherwise assembles one
// from the discrete DB_* variables.
func postgresDSN() string {
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		return v
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_NAME", "bakery"),
		getenv("DB_SSLMODE", "disable"),
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return 5
	}
	return i
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
