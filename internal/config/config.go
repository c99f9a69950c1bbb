package config

import (
	"os"
	"strconv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	StorageDriver string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
}

// Load builds Config from environment with sensible defaults. The in-memory
// store is the default backend; state is lost on restart unless
// STORAGE_DRIVER=mysql is set.
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/oceansync?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
