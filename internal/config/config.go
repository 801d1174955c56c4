package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Photo    PhotoConfig
	Pump     PumpConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type PhotoConfig struct {
	// BaseDir anchors the photo blob store; image locations in the database
	// are stored relative to it (so the whole tree can move between hosts).
	// StorageDir is the subdirectory under BaseDir that holds the files.
	BaseDir      string
	StorageDir   string
	TargetSizeKB int
}

type PumpConfig struct {
	Enabled     bool
	ForwardPin  int
	BackwardPin int
	PulseMs     int
	CooldownSec int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/plant-hub.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Photo: PhotoConfig{
			BaseDir:      getEnv("PHOTO_BASE_DIR", "."),
			StorageDir:   getEnv("PHOTO_STORAGE_DIR", "histories"),
			TargetSizeKB: getEnvAsInt("PHOTO_TARGET_SIZE_KB", 100),
		},
		Pump: PumpConfig{
			Enabled:     getEnvAsBool("PUMP_ENABLED", false),
			ForwardPin:  getEnvAsInt("PUMP_FORWARD_PIN", 17),
			BackwardPin: getEnvAsInt("PUMP_BACKWARD_PIN", 27),
			PulseMs:     getEnvAsInt("PUMP_PULSE_MS", 5000),
			CooldownSec: getEnvAsInt("PUMP_COOLDOWN_S", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
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
