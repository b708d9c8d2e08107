package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Engine     EngineConfig
	Vocabulary VocabularyConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type EngineConfig struct {
	EligibilityThreshold int
	GatePassMultiplier   float64
	GateFailMultiplier   float64
	MaxDocumentSize      int64
	ExtractionTimeout    time.Duration
	MatcherConcurrency   int
}

type VocabularyConfig struct {
	Path string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "eligibility_engine"),
		},
		Engine: EngineConfig{
			EligibilityThreshold: getEnvAsInt("ELIGIBILITY_THRESHOLD", 50),
			GatePassMultiplier:   getEnvAsFloat("GATE_PASS_MULTIPLIER", 0.9),
			GateFailMultiplier:   getEnvAsFloat("GATE_FAIL_MULTIPLIER", 0.6),
			MaxDocumentSize:      getEnvAsInt64("MAX_DOCUMENT_SIZE", 5242880),
			ExtractionTimeout:    getEnvAsDuration("EXTRACTION_TIMEOUT", "5s"),
			MatcherConcurrency:   getEnvAsInt("MATCHER_CONCURRENCY", 4),
		},
		Vocabulary: VocabularyConfig{
			Path: getEnv("VOCABULARY_PATH", "./configs/skills.yaml"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
