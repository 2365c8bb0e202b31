package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Media    MediaConfig
	Keys     APIKeys
	Tutor    TutorConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type MediaConfig struct {
	Backend        string // "local" or "minio"
	UploadDir      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioURLPrefix string
}

type APIKeys struct {
	GoogleGemini string
}

type TutorConfig struct {
	Model          string
	AnalysisTopic  string
	GenerateWithin time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "default_secret"),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		Media: MediaConfig{
			Backend:        getEnv("MEDIA_STORAGE", "local"),
			UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
			MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
			MinioBucket:    getEnv("MINIO_BUCKET", "aissam-uploads"),
			MinioUseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			MinioURLPrefix: getEnv("MINIO_URL_PREFIX", "http://localhost:9000"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
		},
		Tutor: TutorConfig{
			Model:          getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			AnalysisTopic:  getEnv("ANALYSIS_TOPIC_NAME", "QUESTION_ASKED"),
			GenerateWithin: getEnvAsDuration("GENERATION_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
