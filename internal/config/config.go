package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServiceName string

	ServerPort int

	MongoURI string
	DBName   string

	JWTSecret []byte

	CORSOrigin string

	LogLevel string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "shopapi"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		MongoURI: os.Getenv("MONGO_URI"),
		DBName:   EnvDefault("DB_NAME", "shop"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		CORSOrigin: EnvDefault("CORS_ORIGIN", "http://localhost:3000"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
