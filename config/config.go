package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the shop service.
type Config struct {
	AppEnv   string
	Port     string
	RedisURL string
	CartTTL  time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	// DiscountsFile optionally replaces the built-in discount codes.
	DiscountsFile string

	ProductsSeed  uint64
	ProductsCount int

	LoginRatePerMinute int

	// CORSOrigins may call the JSON API from another origin.
	CORSOrigins []string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		RedisURL:           getEnv("REDIS_URL", ""),
		CartTTL:            getEnvDuration("CART_TTL", 7*24*time.Hour),
		JWTSecret:          getEnv("JWT_SECRET", "classroom-secret-key"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 24*time.Hour),
		DiscountsFile:      getEnv("DISCOUNTS_FILE", ""),
		ProductsSeed:       uint64(getEnvInt("PRODUCTS_SEED", 42)),
		ProductsCount:      getEnvInt("PRODUCTS_COUNT", 10),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 60),
		CORSOrigins:        getEnvList("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("Invalid %s=%q, using %d", key, v, defaultVal)
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, v, defaultVal)
		return defaultVal
	}
	return d
}

// getEnvList splits a comma separated value, dropping blank entries.
func getEnvList(key, defaultVal string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, defaultVal), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
