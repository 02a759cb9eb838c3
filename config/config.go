package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port string
	// BaseURL is the externally reachable address of this server, used to
	// build absolute URLs for uploaded images.
	BaseURL string
}

type AuthConfig struct {
	AdminUser     string
	AdminPassword string
	JWTSecret     string
}

type UploadConfig struct {
	Dir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "5000"),
			BaseURL: getEnv("BASE_URL", "http://localhost:5000"),
		},
		Auth: AuthConfig{
			AdminUser:     getEnv("ADMIN_USER", "admin"),
			AdminPassword: getEnv("ADMIN_PASS", "admin"),
			JWTSecret:     getEnv("JWT_SECRET", "secret"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
	}
}

func LoadTestConfig() *Config {
	cfg := LoadConfig()

	cfg.Database = DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // test DB runs on 5433
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	cfg.Redis = RedisConfig{
		Host:     "localhost",
		Port:     "6380", // test Redis runs on 6380
		Password: "",
		DB:       1,
	}

	return cfg
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "events_admin"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
