package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dataset sources
const (
	SourceSQLite = "sqlite"
	SourceJSON   = "json"
)

// Config 应用配置
type Config struct {
	Port          string
	GinMode       string
	DBPath        string
	DatasetSource string // sqlite | json
	AirportsFile  string
	CouponsFile   string
	OffersFile    string // 录制的 flight-offers 响应，为空时使用 mock
	Currency      string
	RateLimit     int
	RateWindow    time.Duration
}

// Load 加载配置
// .env 不覆盖已有环境变量，.env.local 覆盖
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}
	if err := godotenv.Overload(".env.local"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env.local: %v", err)
	}

	port := getEnv("PORT", ":8080")
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		port = ":" + port
	}

	return &Config{
		Port:          port,
		GinMode:       getEnv("GIN_MODE", "release"),
		DBPath:        getEnv("DB_PATH", "./data/flightnet.db"),
		DatasetSource: strings.ToLower(getEnv("DATASET_SOURCE", SourceJSON)),
		AirportsFile:  getEnv("AIRPORTS_FILE", "./data/airports.json"),
		CouponsFile:   getEnv("COUPONS_FILE", "./data/coupons.csv"),
		OffersFile:    getEnv("OFFERS_FILE", ""),
		Currency:      getEnv("CURRENCY", "TRY"),
		RateLimit:     getEnvInt("RATE_LIMIT", 120),
		RateWindow:    time.Duration(getEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
