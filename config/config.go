package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
// All values come from environment variables (optionally via a .env file).
type Config struct {
	// Plex服务器配置
	BaseURL    string        // Plex服务器地址，例如 http://127.0.0.1:32400
	Token      string        // X-Plex-Token 访问令牌
	ClientID   string        // 客户端标识，留空时自动生成
	Timeout    time.Duration // 单次请求超时时间
	Product    string        // X-Plex-Product 标识
	Version    string        // X-Plex-Version 标识
	AccountURL string        // plex.tv 账号服务地址

	// 日志配置
	LogLevel   string
	LogPath    string
	LogMaxSize int // 单个日志文件上限（MB）
	LogMaxAge  int // 日志保留天数
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// Attempt to load .env file. godotenv.Load() will not override existing env vars.
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	return &Config{
		BaseURL:    getEnv("PLEX_BASEURL", "http://127.0.0.1:32400"),
		Token:      os.Getenv("PLEX_TOKEN"), // 令牌不提供默认值
		ClientID:   os.Getenv("PLEX_CLIENT_ID"),
		Timeout:    time.Duration(getEnvInt("PLEX_TIMEOUT", 30)) * time.Second,
		Product:    getEnv("PLEX_PRODUCT", "PlexFM"),
		Version:    getEnv("PLEX_VERSION", "1.0.0"),
		AccountURL: getEnv("PLEX_ACCOUNT_URL", "https://plex.tv"),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogPath:    getEnv("LOG_PATH", ""),
		LogMaxSize: getEnvInt("LOG_MAX_SIZE", 50),
		LogMaxAge:  getEnvInt("LOG_MAX_AGE", 7),
	}
}
