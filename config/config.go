package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
)

type Config struct {
	API     APIConfig
	Logger  LoggerConfig
	Storage StorageConfig
}

type APIConfig struct {
	BaseURL string
	Timeout int // seconds; 0 leaves requests unbounded
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
	FileEnable        bool
	Filename          string
}

type StorageConfig struct {
	Path string // bbolt file holding the persisted token
}

func LoadEnv() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("FRESHCART_API_URL", "http://10.0.2.2:8080"),
			Timeout: getEnvInt("FRESHCART_API_TIMEOUT", 0),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
			FileEnable:        getEnvBool("LOGGER_FILE_ENABLE", false),
			Filename:          getEnv("LOGGER_FILENAME", "freshcart.log"),
		},
		Storage: StorageConfig{
			Path: getEnv("FRESHCART_STATE_PATH", defaultStatePath()),
		},
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".freshcart.db"
	}
	return filepath.Join(home, ".freshcart", "state.db")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		return cast.ToInt(value)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return cast.ToBool(value)
	}
	return fallback
}
