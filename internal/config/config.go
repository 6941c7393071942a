// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 服務啟動所需的所有設定，來源為環境變數 (可由 .env 載入)
type Config struct {
	Port        string
	AppEnv      string
	LogLevel    string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MongoURL string
	MongoDB  string

	JWTSecret string
	JWTTTL    time.Duration

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	MailFrom    string
	MailWorkers int

	Locale   string
	Timezone string
	FilesURL string

	RateLimitRPS   float64
	RateLimitBurst int

	// MinioEndpoint 為空時停用頭像上傳
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

var loadDotEnv = func() { _ = godotenv.Load() }

// Load 讀取 .env (若存在) 後解析環境變數
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		AppEnv:        getenv("APP_ENV", "production"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MongoDB:       getenv("MONGO_DB", "gobarber"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		MailFrom:      getenv("MAIL_FROM", "Equipe GoBarber <noreply@gobarber.com>"),
		Locale:        getenv("APP_LOCALE", "pt_BR"),
		Timezone:      getenv("APP_TIMEZONE", "America/Sao_Paulo"),
		FilesURL:      getenv("FILES_URL", "http://localhost:8080"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getenv("MINIO_BUCKET", "gobarber"),
	}

	var err error
	if cfg.DatabaseURL, err = required("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisAddr, err = required("REDIS_ADDR"); err != nil {
		return nil, err
	}
	redisDB, err := required("REDIS_DB")
	if err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(redisDB); err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	if cfg.MongoURL, err = required("MONGO_URL"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = required("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.SMTPHost, err = required("SMTP_HOST"); err != nil {
		return nil, err
	}

	if cfg.JWTTTL, err = time.ParseDuration(getenv("JWT_TTL", "168h")); err != nil || cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("無效的 JWT_TTL: %v", err)
	}
	if cfg.SMTPPort, err = positiveInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.MailWorkers, err = positiveInt("MAIL_WORKERS", 1); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = positiveInt("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getenv("RATE_LIMIT_RPS", "10"), 64); err != nil || cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("無效的 RATE_LIMIT_RPS: %v", err)
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		if cfg.MinioUseSSL, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("無效的 MINIO_USE_SSL: %q", v)
		}
	}
	return cfg, nil
}

// Location 解析 APP_TIMEZONE
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("無效的 APP_TIMEZONE: %v", err)
	}
	return loc, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func required(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("環境變數 %s 未設定", key)
	}
	return v, nil
}

func positiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return n, nil
}
